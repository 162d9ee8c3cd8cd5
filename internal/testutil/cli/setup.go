package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/blogdb/internal/app"
	"github.com/thenoetrevino/blogdb/internal/logging"
	"github.com/thenoetrevino/blogdb/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithLogger(logging.Discard()))

	return db, appInstance
}

// CreateTestUser wraps testutil.CreateTestUser for CLI tests
func CreateTestUser(t *testing.T, db *sql.DB, name, email string) int {
	t.Helper()
	return testutil.CreateTestUser(t, db, name, email)
}

// CreateTestPost wraps testutil.CreateTestPost for CLI tests
func CreateTestPost(t *testing.T, db *sql.DB, userID int, title, content string) int {
	t.Helper()
	return testutil.CreateTestPost(t, db, userID, title, content)
}

// CountRows wraps testutil.CountRows for CLI tests
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	return testutil.CountRows(t, db, table)
}

// ParseJSON wraps testutil.ParseJSON for CLI tests
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	return testutil.ParseJSON(t, output)
}
