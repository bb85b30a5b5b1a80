package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	// Verify the logger can be retrieved from the context
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := context.Background()
		logger := slog.Default()
		ctx = logging.With(ctx, logger)

		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		// Should return default logger, verify it's the same instance when called again
		retrieved2 := logging.From(ctx)
		gt.V(t, retrieved).Equal(retrieved2)
		// Verify it's actually a logger instance by checking it can be used
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRequestID(t *testing.T) {
	t.Run("get new request ID from context", func(t *testing.T) {
		ctx := context.Background()

		reqID, newCtx := logging.CtxRequestID(ctx)
		gt.V(t, reqID).NotEqual("")
		// Verify the context contains the request ID
		retrievedID, _ := logging.CtxRequestID(newCtx)
		gt.V(t, retrievedID).Equal(reqID)
	})

	t.Run("get existing request ID from context", func(t *testing.T) {
		ctx := context.Background()

		reqID1, ctx1 := logging.CtxRequestID(ctx)
		reqID2, ctx2 := logging.CtxRequestID(ctx1)

		gt.V(t, reqID1).Equal(reqID2)
		// Verify both contexts return the same request ID
		retrievedID1, _ := logging.CtxRequestID(ctx1)
		retrievedID2, _ := logging.CtxRequestID(ctx2)
		gt.V(t, retrievedID1).Equal(reqID1)
		gt.V(t, retrievedID2).Equal(reqID1)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("get current time from context", func(t *testing.T) {
		ctx := context.Background()

		tm := logging.CtxTime(ctx)
		gt.V(t, tm.IsZero()).Equal(false)
	})
}

func TestCtxWithTime(t *testing.T) {
	t.Run("set and get custom time from context", func(t *testing.T) {
		ctx := context.Background()

		called := false
		ctx = logging.CtxWithTime(ctx, func() time.Time {
			called = true
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})

		tm := logging.CtxTime(ctx)
		gt.True(t, called)
		gt.V(t, tm.Year()).Equal(2024)
	})
}

func TestCtxDeliveryID(t *testing.T) {
	t.Run("empty when not set", func(t *testing.T) {
		gt.V(t, logging.CtxDeliveryID(context.Background())).Equal("")
	})

	t.Run("set and get delivery ID", func(t *testing.T) {
		ctx := logging.CtxWithDeliveryID(context.Background(), "72d3162e-cc78-11e3-81ab-4c9367dc0958")
		gt.V(t, logging.CtxDeliveryID(ctx)).Equal("72d3162e-cc78-11e3-81ab-4c9367dc0958")
	})
}

func TestInheritContextValues(t *testing.T) {
	src := context.Background()
	reqID, src := logging.CtxRequestID(src)
	src = logging.CtxWithDeliveryID(src, "delivery-1")
	fixedTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	src = logging.CtxWithTime(src, func() time.Time { return fixedTime })

	dst := logging.InheritContextValues(context.Background(), src)

	inheritedID, _ := logging.CtxRequestID(dst)
	gt.V(t, inheritedID).Equal(reqID)
	gt.V(t, logging.CtxDeliveryID(dst)).Equal("delivery-1")
	gt.V(t, logging.CtxTime(dst)).Equal(fixedTime)
}
