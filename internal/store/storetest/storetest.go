// Package storetest opens a migrated store in a throwaway Postgres schema
// for repository tests.
package storetest

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/amcmart-api/internal/store"
)

// EnvDSN names the variable holding the test database DSN.
const EnvDSN = "POSTGRES_TEST_DSN"

// New creates a fresh schema on the database at POSTGRES_TEST_DSN, opens
// a store whose search_path points at it and migrates it. The schema is
// dropped when the test ends. The test is skipped when the variable is
// unset.
func New(t testing.TB) *store.DB {
	t.Helper()
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s not set", EnvDSN)
	}
	ctx := context.Background()

	admin, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	schema := "amcmart_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)

	db, err := store.Open(ctx, withSearchPath(t, dsn, schema), store.Options{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close(context.Background())
	})

	require.NoError(t, db.Migrate(ctx))
	return db
}

// withSearchPath adds search_path to dsn; pgx passes unknown settings on
// as runtime parameters.
func withSearchPath(t testing.TB, dsn, schema string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		require.NoError(t, err)
		q := u.Query()
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return fmt.Sprintf("%s search_path=%s", dsn, schema)
}
