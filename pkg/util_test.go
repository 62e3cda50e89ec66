package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "fitgenius", BytesToString([]byte("fitgenius")))
	assert.Equal(t, "", BytesToString(nil))
}

func TestPathExists(t *testing.T) {
	tempDir := t.TempDir()

	exists, err := PathExists(tempDir, true)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(filepath.Join(tempDir, "nope"), true)
	require.NoError(t, err)
	assert.False(t, exists)

	tempFile := filepath.Join(tempDir, "somefile")
	require.NoError(t, os.WriteFile(tempFile, []byte("content"), 0o600))

	exists, err = PathExists(tempFile, false)
	require.NoError(t, err)
	assert.True(t, exists)

	// a file is not a dir
	exists, err = PathExists(tempFile, true)
	require.NoError(t, err)
	assert.False(t, exists)
}
