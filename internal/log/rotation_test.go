package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingFileWritesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p5ctl.log")

	rf, err := NewRotatingFile(path, 1024, 2)
	require.NoError(t, err)
	defer rf.Close()

	_, err = rf.Write([]byte("hello\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestRotatingFileRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p5ctl.log")

	rf, err := NewRotatingFile(path, 32, 2)
	require.NoError(t, err)
	defer rf.Close()

	line := strings.Repeat("x", 20) + "\n"
	_, err = rf.Write([]byte(line))
	require.NoError(t, err)
	// The second write would exceed 32 bytes and forces a rotation.
	_, err = rf.Write([]byte(line))
	require.NoError(t, err)

	backup, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, line, string(backup))

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, line, string(current))
}

func TestRotatingFileKeepsMaxBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p5ctl.log")

	rf, err := NewRotatingFile(path, 8, 2)
	require.NoError(t, err)
	defer rf.Close()

	for i := 0; i < 5; i++ {
		_, err = rf.Write([]byte("0123456\n"))
		require.NoError(t, err)
	}

	_, err = os.Stat(path + ".1")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".2")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".3")
	assert.True(t, os.IsNotExist(err))
}
