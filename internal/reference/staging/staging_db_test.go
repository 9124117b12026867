package staging

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgmendoza/recaudo/internal/database"
	"github.com/hgmendoza/recaudo/internal/reffile"
)

// The loader tests below run the real COPY plus reconciliation SQL and need
// a disposable Postgres. Set TEST_DATABASE_DSN to enable them; they apply
// sql/init_schema.sql and clear the reference tables between runs.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := database.New(context.Background(), dsn, database.Options{
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ddl, err := os.ReadFile("../../../sql/init_schema.sql")
	require.NoError(t, err)

	_, err = db.ExecContext(context.Background(), string(ddl))
	require.NoError(t, err)

	_, err = db.ExecContext(context.Background(), "TRUNCATE base_general_staging")
	require.NoError(t, err)

	_, err = db.ExecContext(context.Background(), "DELETE FROM base_general")
	require.NoError(t, err)

	return db
}

func baseName(t *testing.T, db *sql.DB, key string) string {
	t.Helper()

	var name string
	err := db.QueryRowContext(context.Background(),
		"SELECT name FROM base_general WHERE upper(client_id) = upper($1)", key).Scan(&name)
	require.NoError(t, err)

	return name
}

func assertCountAlgebra(t *testing.T, s *Summary) {
	t.Helper()

	assert.LessOrEqual(t, s.NewCount, s.DedupCount)
	assert.LessOrEqual(t, s.DedupCount, s.TotalStaged)
}

func TestStore_Load_LastStagedRowWins(t *testing.T) {
	db := testDB(t)
	st := New(db)
	ctx := context.Background()

	// Three spellings of the same key; the row loaded last must be the one
	// that lands in base_general.
	ds := &reffile.Dataset{Rows: []reffile.Row{
		{ClientID: " c001 ", Name: "first"},
		{ClientID: "C001", Name: "second"},
		{ClientID: "c001  ", Name: "third"},
		{ClientID: "C002", Name: "other"},
	}}

	sum, err := st.Load(ctx, ds, ModeUpsert)
	require.NoError(t, err)

	assert.Equal(t, int64(4), sum.TotalStaged)
	assert.Equal(t, int64(2), sum.DedupCount)
	assert.Equal(t, int64(2), sum.NewCount)
	assert.Equal(t, int64(2), sum.Inserted)
	assert.Equal(t, int64(0), sum.Updated)
	assertCountAlgebra(t, sum)

	assert.Equal(t, "third", baseName(t, db, "C001"))
	assert.Equal(t, "other", baseName(t, db, "c002"))
}

func TestStore_Load_UpsertOverwritesByCaseFoldedKey(t *testing.T) {
	db := testDB(t)
	st := New(db)
	ctx := context.Background()

	_, err := st.Load(ctx, &reffile.Dataset{Rows: []reffile.Row{
		{ClientID: "c001", Name: "original"},
	}}, ModeUpsert)
	require.NoError(t, err)

	// Re-load the same key in a different case and with padding; it must
	// hit the existing row, not insert a second one.
	sum, err := st.Load(ctx, &reffile.Dataset{Rows: []reffile.Row{
		{ClientID: "  C001", Name: "replaced"},
	}}, ModeUpsert)
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.TotalStaged)
	assert.Equal(t, int64(1), sum.DedupCount)
	assert.Equal(t, int64(0), sum.NewCount)
	assert.Equal(t, int64(0), sum.Inserted)
	assert.Equal(t, int64(1), sum.Updated)
	assertCountAlgebra(t, sum)

	assert.Equal(t, "replaced", baseName(t, db, "c001"))

	var total int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT count(*) FROM base_general").Scan(&total))
	assert.Equal(t, 1, total)
}

func TestStore_Load_InsertModeKeepsExistingRows(t *testing.T) {
	db := testDB(t)
	st := New(db)
	ctx := context.Background()

	_, err := st.Load(ctx, &reffile.Dataset{Rows: []reffile.Row{
		{ClientID: "c001", Name: "original"},
	}}, ModeUpsert)
	require.NoError(t, err)

	sum, err := st.Load(ctx, &reffile.Dataset{Rows: []reffile.Row{
		{ClientID: "C001", Name: "ignored"},
		{ClientID: "c003", Name: "fresh"},
	}}, ModeInsert)
	require.NoError(t, err)

	assert.Equal(t, int64(2), sum.TotalStaged)
	assert.Equal(t, int64(2), sum.DedupCount)
	assert.Equal(t, int64(1), sum.NewCount)
	assert.Equal(t, int64(1), sum.Inserted)
	assert.Equal(t, int64(0), sum.Updated)
	assertCountAlgebra(t, sum)

	assert.Equal(t, "original", baseName(t, db, "c001"))
	assert.Equal(t, "fresh", baseName(t, db, "c003"))
}
