package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionHook = "hook"

type HookRepository struct {
	client *firestore.Client
}

// hookDocument holds the encoded record. Key is kept because the document ID is not reversible in general.
type hookDocument struct {
	Key       string    `firestore:"key"`
	Record    string    `firestore:"record"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// ToFirestoreID converts a repository key to a Firestore-safe document ID.
// "/" is not allowed in document IDs and is replaced with ":", which can not
// appear in a host name without port, an owner or a repository name.
func ToFirestoreID(key types.RepositoryKey) (string, error) {
	if key == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "key is empty")
	}
	if strings.Contains(string(key), ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "key contains invalid character ':'",
			goerr.V("key", key),
		)
	}

	return strings.ReplaceAll(string(key), "/", ":"), nil
}

func (r *HookRepository) docRef(key types.RepositoryKey) (*firestore.DocumentRef, error) {
	id, err := ToFirestoreID(key)
	if err != nil {
		return nil, err
	}
	return r.client.Collection(collectionHook).Doc(id), nil
}

func newHookDocument(key types.RepositoryKey, hook *model.HookRecord) (*hookDocument, error) {
	data, err := model.EncodeHookRecord(hook)
	if err != nil {
		return nil, err
	}
	return &hookDocument{
		Key:       string(key),
		Record:    data,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func decodeSnapshot(snap *firestore.DocumentSnapshot) (*hookDocument, *model.HookRecord, error) {
	var doc hookDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to decode hook document", goerr.V("id", snap.Ref.ID))
	}

	hook, err := model.DecodeHookRecord(doc.Record)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "broken hook record", goerr.V("key", doc.Key))
	}

	return &doc, hook, nil
}

func (r *HookRepository) GetHook(ctx context.Context, key types.RepositoryKey) (*model.HookRecord, error) {
	ref, err := r.docRef(key)
	if err != nil {
		return nil, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "hook not found",
				goerr.V("key", key),
			)
		}
		return nil, goerr.Wrap(err, "failed to get hook",
			goerr.V("key", key),
		)
	}

	_, hook, err := decodeSnapshot(snap)
	if err != nil {
		return nil, err
	}

	return hook, nil
}

func (r *HookRepository) PutHook(ctx context.Context, key types.RepositoryKey, hook *model.HookRecord) error {
	ref, err := r.docRef(key)
	if err != nil {
		return err
	}

	doc, err := newHookDocument(key, hook)
	if err != nil {
		return err
	}

	if _, err := ref.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put hook",
			goerr.V("key", key),
		)
	}

	return nil
}

func (r *HookRepository) DeleteHook(ctx context.Context, key types.RepositoryKey) error {
	ref, err := r.docRef(key)
	if err != nil {
		return err
	}

	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "hook not found",
				goerr.V("key", key),
			)
		}
		return goerr.Wrap(err, "failed to delete hook",
			goerr.V("key", key),
		)
	}

	return nil
}

func (r *HookRepository) ListHooks(ctx context.Context) (map[types.RepositoryKey]*model.HookRecord, error) {
	iter := r.client.Collection(collectionHook).Documents(ctx)
	defer iter.Stop()

	hooks := make(map[types.RepositoryKey]*model.HookRecord)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate hooks")
		}

		doc, hook, err := decodeSnapshot(snap)
		if err != nil {
			return nil, err
		}
		hooks[types.RepositoryKey(doc.Key)] = hook
	}

	return hooks, nil
}

// UpdateHook runs fn in a Firestore transaction. fn may be called more than
// once if the transaction is retried.
func (r *HookRepository) UpdateHook(ctx context.Context, key types.RepositoryKey, fn func(hook *model.HookRecord) error) error {
	ref, err := r.docRef(key)
	if err != nil {
		return err
	}

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(repository.ErrNotFound, "hook not found",
					goerr.V("key", key),
				)
			}
			return goerr.Wrap(err, "failed to get hook in transaction",
				goerr.V("key", key),
			)
		}

		_, hook, err := decodeSnapshot(snap)
		if err != nil {
			return err
		}
		if err := fn(hook); err != nil {
			return err
		}

		doc, err := newHookDocument(key, hook)
		if err != nil {
			return err
		}
		if err := tx.Set(ref, doc); err != nil {
			return goerr.Wrap(err, "failed to update hook",
				goerr.V("key", key),
			)
		}
		return nil
	})
}
