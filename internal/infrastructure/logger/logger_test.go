package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cpptutor.log")
	lg, closer := New(Config{File: path})
	lg.Printf("session %d started", 4)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[cpptutor] ")
	assert.Contains(t, string(data), "session 4 started")
}

func TestNewWithoutFileDiscards(t *testing.T) {
	lg, closer := New(Config{})
	lg.Printf("dropped")
	assert.NoError(t, closer.Close())
}
