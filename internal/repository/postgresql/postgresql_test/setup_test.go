package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	connectErr error
	connectDB  sync.Once
)

// getTestDB connects once per test binary. Tests are skipped when
// TEST_DATABASE_URL is not set, so the suite only runs against a migrated
// test database (see migrations/0001_init.sql).
func getTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	connectDB.Do(func() {
		testDB, connectErr = database.NewPostgreSQLDB(dsn)
	})
	require.NoError(t, connectErr, "failed to connect to test database")

	return testDB
}

func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	for _, table := range []string{
		"statutory_returns",
		"payroll_calculations",
		"payroll_runs",
		"attendance",
		"org_holidays",
		"employees",
		"users",
	} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}
