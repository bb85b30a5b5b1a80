package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
)

var _ interfaces.HookRepository = (*HookRepository)(nil)

// New creates a new Firestore-based hook repository
func New(ctx context.Context, projectID, databaseID string) (*HookRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &HookRepository{
		client: client,
	}, nil
}

func (r *HookRepository) Close() error {
	return r.client.Close()
}
