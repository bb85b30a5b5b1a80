package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestHookRecordRoundTrip(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name   string
		record *model.HookRecord
	}{
		{
			name:   "defaults",
			record: model.NewHookRecord(10, "abc"),
		},
		{
			name: "all fields set",
			record: &model.HookRecord{
				ID: 10, URL: "abc", Correct: true,
				LastUsed:            ptrTime(now),
				LastBranchRevisions: map[string]string{"1": "2", "3": "4"},
			},
		},
		{
			name: "incorrect",
			record: &model.HookRecord{
				ID: 10, URL: "abc", Correct: false,
				LastBranchRevisions: map[string]string{},
			},
		},
		{
			name: "incorrect with last used",
			record: &model.HookRecord{
				ID: 10, URL: "abc", Correct: false,
				LastUsed:            ptrTime(time.UnixMilli(10)),
				LastBranchRevisions: map[string]string{},
			},
		},
		{
			name: "incorrect with last used and branches",
			record: &model.HookRecord{
				ID: 10, URL: "abc", Correct: false,
				LastUsed:            ptrTime(time.UnixMilli(10)),
				LastBranchRevisions: map[string]string{"1": "2"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := gt.R1(model.EncodeHookRecord(tc.record)).NoError(t)

			decoded := gt.R1(model.DecodeHookRecord(encoded)).NoError(t)
			gt.V(t, decoded.ID).Equal(tc.record.ID)
			gt.V(t, decoded.URL).Equal(tc.record.URL)
			gt.V(t, decoded.Correct).Equal(tc.record.Correct)
			gt.V(t, decoded.LastBranchRevisions).Equal(tc.record.LastBranchRevisions)
			gt.True(t, decoded.Equal(tc.record))

			reencoded := gt.R1(model.EncodeHookRecord(decoded)).NoError(t)
			gt.V(t, reencoded).Equal(encoded)
		})
	}
}

func TestDecodeHookRecordDefaults(t *testing.T) {
	record := gt.R1(model.DecodeHookRecord(`{"id":42,"url":"https://api.github.com/repos/JetBrains/kotlin/hooks/42"}`)).NoError(t)
	gt.V(t, record.ID).Equal(int64(42))
	gt.True(t, record.Correct)
	gt.V(t, record.LastUsed).Equal((*time.Time)(nil))
	gt.V(t, len(record.LastBranchRevisions)).Equal(0)
	gt.True(t, record.Equal(model.NewHookRecord(42, "https://api.github.com/repos/JetBrains/kotlin/hooks/42")))
}

func TestDecodeHookRecordFailure(t *testing.T) {
	for _, data := range []string{"", "{", "not json", `[1,2]`, `{"id":"abc"}`} {
		t.Run(data, func(t *testing.T) {
			record, err := model.DecodeHookRecord(data)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidHookRecord))
			gt.V(t, record).Equal((*model.HookRecord)(nil))
		})
	}
}

func TestEncodeNilHookRecord(t *testing.T) {
	_, err := model.EncodeHookRecord(nil)
	gt.True(t, errors.Is(err, types.ErrInvalidHookRecord))
}

func TestHookRecordMergeBranchRevisions(t *testing.T) {
	record := model.NewHookRecord(1, "url")
	record.MergeBranchRevisions(map[string]string{"refs/heads/main": "aaa", "refs/heads/dev": "bbb"})
	record.MergeBranchRevisions(map[string]string{"refs/heads/main": "ccc"})

	gt.V(t, record.LastBranchRevisions).Equal(map[string]string{
		"refs/heads/main": "ccc",
		"refs/heads/dev":  "bbb",
	})
}

func TestHookRecordIsOutdated(t *testing.T) {
	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("never used", func(t *testing.T) {
		gt.True(t, model.NewHookRecord(1, "url").IsOutdated(deadline))
	})

	t.Run("used after deadline", func(t *testing.T) {
		record := model.NewHookRecord(1, "url")
		record.Touch(deadline.Add(time.Hour))
		gt.False(t, record.IsOutdated(deadline))
	})

	t.Run("used before deadline", func(t *testing.T) {
		record := model.NewHookRecord(1, "url")
		record.Touch(deadline.Add(-time.Hour))
		gt.True(t, record.IsOutdated(deadline))
	})

	t.Run("incorrect", func(t *testing.T) {
		record := model.NewHookRecord(1, "url")
		record.Touch(deadline.Add(time.Hour))
		record.Correct = false
		gt.True(t, record.IsOutdated(deadline))
	})
}
