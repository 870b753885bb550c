package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/caner-cetin/amws-order/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestMemoryStagesUntilSave(t *testing.T) {
	m := NewMemory()
	m.Set("cron.status", true)

	v, ok := m.Get("cron.status")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	require.NoError(t, m.Save(context.Background()))
	m.mu.Lock()
	assert.Equal(t, map[string]any{"cron.status": true}, m.committed)
	assert.Empty(t, m.pending)
	m.mu.Unlock()

	m.Set("cron.status", nil)
	_, ok = m.Get("cron.status")
	assert.False(t, ok, "nil marks a key absent")
}

func TestMemorySaveHonoursContext(t *testing.T) {
	m := NewMemory()
	m.Set("cron.status", true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Save(ctx), context.Canceled)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yml")

	f, err := OpenFile(path)
	require.NoError(t, err)
	f.Set("general.address_convert_states", true)
	f.Set("billing_profile.source", "custom")
	f.Set("billing_profile.custom_address", map[string]any{"country_code": "US"})
	f.Set("cron.limit", 25)
	f.Set("cron.status", nil)
	require.NoError(t, f.Save(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "billing_profile:\n")
	assert.Contains(t, string(data), "    source: custom\n")

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	v, ok := reopened.Get("general.address_convert_states")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	v, ok = reopened.Get("cron.limit")
	assert.True(t, ok)
	assert.Equal(t, 25, v)
	v, ok = reopened.Get("billing_profile.custom_address")
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"country_code": "US"}, v)
	_, ok = reopened.Get("cron.status")
	assert.False(t, ok)
}

func TestFileMissingIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")
	f, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path())
	assert.Empty(t, f.committed)
}

func TestFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("cron: [unterminated"), 0644))
	_, err := OpenFile(path)
	assert.Error(t, err)
}

func TestFileFailedSaveKeepsPreviousDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yml")
	f, err := OpenFile(path)
	require.NoError(t, err)
	f.Set("cron.status", true)
	require.NoError(t, f.Save(context.Background()))

	// a directory in place of the file makes the rename fail
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0644))

	f.Set("cron.status", false)
	require.Error(t, f.Save(context.Background()))

	// the staged change survives for a retry and committed state is unchanged
	v, _ := f.Get("cron.status")
	assert.Equal(t, false, v)
	f.mu.Lock()
	assert.Equal(t, true, f.committed["cron.status"])
	f.mu.Unlock()
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	s, err := OpenSQLite(ctx, conn, "commerce_amws_order.settings")
	require.NoError(t, err)
	s.Set("billing_profile.status", true)
	s.Set("billing_profile.custom_address", map[string]any{"country_code": "US", "locality": "Reno"})
	s.Set("cron.limit", 10)
	require.NoError(t, s.Save(ctx))

	reopened, err := OpenSQLite(ctx, conn, "commerce_amws_order.settings")
	require.NoError(t, err)
	v, ok := reopened.Get("billing_profile.status")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	v, ok = reopened.Get("cron.limit")
	assert.True(t, ok)
	assert.Equal(t, json.Number("10"), v)
	v, _ = reopened.Get("billing_profile.custom_address")
	assert.Equal(t, map[string]any{"country_code": "US", "locality": "Reno"}, v)

	reopened.Set("cron.limit", nil)
	require.NoError(t, reopened.Save(ctx))
	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM settings WHERE name = 'cron.limit'`).Scan(&count))
	assert.Zero(t, count)
}

func TestSQLiteCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	a, err := OpenSQLite(ctx, conn, "a")
	require.NoError(t, err)
	a.Set("cron.status", true)
	require.NoError(t, a.Save(ctx))

	b, err := OpenSQLite(ctx, conn, "b")
	require.NoError(t, err)
	_, ok := b.Get("cron.status")
	assert.False(t, ok)
}

func TestSQLiteSaveIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	s, err := OpenSQLite(ctx, conn, "commerce_amws_order.settings")
	require.NoError(t, err)
	s.Set("cron.status", true)
	s.Set("cron.limit", func() {}) // not JSON encodable
	require.Error(t, s.Save(ctx))

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Zero(t, count, "nothing of a failed save may be visible")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, closeFn, err := Open(ctx, DriverYAML, filepath.Join(dir, "settings.yml"), "ignored")
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, DriverSQLite, filepath.Join(dir, "sub", "settings.db"), "commerce_amws_order.settings")
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	assert.NoError(t, closeFn())

	_, closeFn, err = Open(ctx, "redis", "", "")
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
