package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cron_status": true}`), 0644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"cron_status": true}`, string(data))

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "path does not exist")
}

func TestPtr(t *testing.T) {
	p := Ptr(5)
	require.NotNil(t, p)
	assert.Equal(t, 5, *p)
}
