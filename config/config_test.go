package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, DriverFile, cfg.StoreDriver)
	assert.Equal(t, "instructor123", cfg.InstructorPassword)
	assert.Equal(t, 25, cfg.TypingDelayMS)
	assert.Equal(t, 5, cfg.LogMaxSizeMB)
	assert.Equal(t, "progress.json", cfg.ProgressPath())
	assert.Equal(t, "notes.txt", cfg.NotesPath())
	assert.Equal(t, "progress_backup.json", cfg.BackupPath())
	assert.Equal(t, "cpptutor.log", cfg.LogPath())
	_, err = uuid.Parse(cfg.ProfileID)
	assert.NoError(t, err)
}

func TestLoadConfigProfileIsStable(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)

	a, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	b, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, a.ProfileID, b.ProfileID)
	assert.Equal(t, filepath.Join(dir, "progress.json"), a.ProgressPath())
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	body := "STORE_DRIVER=sqlite\nTYPING_DELAY_MS=0\nDATA_DIR=" + dir + "\nPROFILE_ID=7b0c9a3e-5f3d-4f0e-9a57-3d1e2c4b5a69\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(body), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, 0, cfg.TypingDelayMS)
	assert.Equal(t, filepath.Join(dir, "cpptutor.db"), cfg.DBDSN)
	assert.Equal(t, "7b0c9a3e-5f3d-4f0e-9a57-3d1e2c4b5a69", cfg.ProfileID)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("INSTRUCTOR_PASSWORD=fromfile\n"), 0o644))
	t.Setenv("INSTRUCTOR_PASSWORD", "fromenv")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.InstructorPassword)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")
	_, err = LoadConfig(t.TempDir())
	assert.Error(t, err, "postgres needs a DSN")

	clearEnv(t)
	t.Setenv("PROFILE_ID", "not-a-uuid")
	_, err = LoadConfig(t.TempDir())
	assert.Error(t, err)
}
