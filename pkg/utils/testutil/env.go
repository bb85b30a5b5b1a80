package testutil

import (
	"os"
	"testing"
)

// FirestoreEnv points integration tests at a Firestore database.
type FirestoreEnv struct {
	ProjectID  string
	DatabaseID string
}

// FirestoreEnvOrSkip reads TEST_FIRESTORE_PROJECT_ID and
// TEST_FIRESTORE_DATABASE_ID. The test is skipped without a project and the
// database falls back to "(default)".
func FirestoreEnvOrSkip(t testing.TB) FirestoreEnv {
	t.Helper()
	env := FirestoreEnv{
		ProjectID:  os.Getenv("TEST_FIRESTORE_PROJECT_ID"),
		DatabaseID: os.Getenv("TEST_FIRESTORE_DATABASE_ID"),
	}
	if env.ProjectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID is not set")
	}
	if env.DatabaseID == "" {
		env.DatabaseID = "(default)"
	}
	return env
}
