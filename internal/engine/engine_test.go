package engine

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_FreshDatabase(t *testing.T) {
	e, err := Open()
	require.NoError(t, err)
	defer e.Close()

	var count int
	err = e.Get(context.Background(), &count, "SELECT COUNT(*) FROM sqlite_master")
	require.NoError(t, err)
	assert.Zero(t, count, "fresh engine should have no schema objects")
}

func TestExec_AndSelect(t *testing.T) {
	e, err := Open()
	require.NoError(t, err)
	defer e.Close()

	ctx := context.Background()
	_, err = e.Exec(ctx, "CREATE TABLE notes (id INTEGER PRIMARY KEY AUTOINCREMENT, body TEXT)")
	require.NoError(t, err)

	res, err := e.Exec(ctx, "INSERT INTO notes (body) VALUES (?)", "hello")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	var bodies []string
	require.NoError(t, e.Select(ctx, &bodies, "SELECT body FROM notes ORDER BY id"))
	assert.Equal(t, []string{"hello"}, bodies)
}

func TestSingleConnection_StateSurvivesAcrossCalls(t *testing.T) {
	// An in-memory database lives on its connection. If the pool ever
	// handed out a second connection, the table created here would vanish
	// between calls.
	e, err := Open()
	require.NoError(t, err)
	defer e.Close()

	ctx := context.Background()
	_, err = e.Exec(ctx, "CREATE TABLE t (n INTEGER)")
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		_, err = e.Exec(ctx, "INSERT INTO t (n) VALUES (?)", i)
		require.NoError(t, err)
	}

	var count int
	require.NoError(t, e.Get(ctx, &count, "SELECT COUNT(*) FROM t"))
	assert.Equal(t, 25, count)
}

func TestSerialize_RoundTrip(t *testing.T) {
	ctx := context.Background()

	e1, err := Open()
	require.NoError(t, err)
	defer e1.Close()

	_, err = e1.Exec(ctx, "CREATE TABLE notes (id INTEGER PRIMARY KEY AUTOINCREMENT, body TEXT)")
	require.NoError(t, err)
	_, err = e1.Exec(ctx, "INSERT INTO notes (body) VALUES (?), (?)", "first", "second")
	require.NoError(t, err)

	image, err := e1.Serialize(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, image)

	e2, err := OpenSnapshot(image)
	require.NoError(t, err)
	defer e2.Close()

	var bodies []string
	require.NoError(t, e2.Select(ctx, &bodies, "SELECT body FROM notes ORDER BY id"))
	assert.Equal(t, []string{"first", "second"}, bodies)
}

func TestSerialize_SnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()

	e1, err := Open()
	require.NoError(t, err)
	defer e1.Close()

	_, err = e1.Exec(ctx, "CREATE TABLE t (n INTEGER)")
	require.NoError(t, err)

	image, err := e1.Serialize(ctx)
	require.NoError(t, err)

	// Mutations after the snapshot must not leak into it.
	_, err = e1.Exec(ctx, "INSERT INTO t (n) VALUES (1)")
	require.NoError(t, err)

	e2, err := OpenSnapshot(image)
	require.NoError(t, err)
	defer e2.Close()

	var count int
	require.NoError(t, e2.Get(ctx, &count, "SELECT COUNT(*) FROM t"))
	assert.Zero(t, count)
}

func TestOpenSnapshot_EmptyImage(t *testing.T) {
	_, err := OpenSnapshot(nil)
	assert.Error(t, err)

	_, err = OpenSnapshot([]byte{})
	assert.Error(t, err)
}

func TestOpenSnapshot_GarbageImage(t *testing.T) {
	e, err := OpenSnapshot([]byte("definitely not a database image"))
	if err == nil {
		// Some engine builds accept the bytes and fail on first use instead.
		defer e.Close()
		var n int
		err = e.Get(context.Background(), &n, "SELECT COUNT(*) FROM sqlite_master")
		assert.Error(t, err)
	}
}

func TestGet_NoRows(t *testing.T) {
	e, err := Open()
	require.NoError(t, err)
	defer e.Close()

	ctx := context.Background()
	_, err = e.Exec(ctx, "CREATE TABLE t (n INTEGER)")
	require.NoError(t, err)

	var n int
	err = e.Get(ctx, &n, "SELECT n FROM t WHERE n = ?", 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
