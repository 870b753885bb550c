package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "amws.db")
	conn, err := Open(path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO settings (collection, name, value) VALUES ('c', 'cron.status', 'true')`)
	require.NoError(t, err)

	// running the migrations again is a no-op
	require.NoError(t, Migrate(conn))
	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSettingsPrimaryKey(t *testing.T) {
	conn, err := Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO settings (collection, name, value) VALUES ('c', 'k', '1')`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO settings (collection, name, value) VALUES ('c', 'k', '2')`)
	assert.Error(t, err)
}
