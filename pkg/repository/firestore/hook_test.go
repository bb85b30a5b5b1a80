package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/repository/firestore"
	"github.com/m-mizutani/vcshook/pkg/repository/testhelper"
	"github.com/m-mizutani/vcshook/pkg/utils/safe"
	"github.com/m-mizutani/vcshook/pkg/utils/testutil"
)

func TestFirestoreHookRepository(t *testing.T) {
	env := testutil.FirestoreEnvOrSkip(t)

	ctx := context.Background()
	repo, err := firestore.New(ctx, env.ProjectID, env.DatabaseID)
	gt.NoError(t, err)
	defer safe.Close(repo)

	testhelper.TestAll(t, repo)
}

func TestToFirestoreID(t *testing.T) {
	id, err := firestore.ToFirestoreID("github.com/JetBrains/kotlin")
	gt.NoError(t, err)
	gt.V(t, id).Equal("github.com:JetBrains:kotlin")

	id, err = firestore.ToFirestoreID("ghe.example.com/my-org/my-repo")
	gt.NoError(t, err)
	gt.V(t, id).Equal("ghe.example.com:my-org:my-repo")

	_, err = firestore.ToFirestoreID("")
	gt.Error(t, err)

	_, err = firestore.ToFirestoreID("github.com:8080/owner/repo")
	gt.Error(t, err)
}
