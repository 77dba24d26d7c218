package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")

	value := GetEnv("TEST_VAR", "default")
	assert.Equal(t, "test_value", value)

	value = GetEnv("NONEXISTENT_VAR", "default")
	assert.Equal(t, "default", value)
}

func TestIsEnvSet(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")

	assert.True(t, IsEnvSet("TEST_VAR"))
	assert.False(t, IsEnvSet("NONEXISTENT_VAR"))
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue(""))
	assert.Equal(t, "****", maskValue("secret"))
	assert.Equal(t, "po****able", maskValue("postgres://u:p@h/db?sslmode=disable"))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "DATABASE_URL", "CONSOLE_SEED", "CONSOLE_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 4, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "[bankdesk]", cfg.Log.Prefix)
	assert.True(t, cfg.Console.Seed)
	assert.Equal(t, ColorAuto, cfg.Console.Color)
	assert.Empty(t, cfg.DB.Url)
}

func TestLoadFromFile(t *testing.T) {
	for _, key := range []string{"APP_ENV", "DATABASE_URL", "CONSOLE_SEED", "CONSOLE_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "APP_ENV=test\nDATABASE_URL=postgres://localhost/shop\nCONSOLE_SEED=false\nCONSOLE_COLOR=never\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "postgres://localhost/shop", cfg.DB.Url)
	assert.False(t, cfg.Console.Seed)
	assert.Equal(t, ColorNever, cfg.Console.Color)
}

func TestLoadRejectsUnknownColor(t *testing.T) {
	t.Setenv("CONSOLE_COLOR", "purple")

	_, err := Load("does-not-exist.env")
	assert.ErrorContains(t, err, "CONSOLE_COLOR")
}

func TestFindEnvTest(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.env"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := FindEnvTest("marker.env")
	require.NoError(t, err)
	assert.Equal(t, "marker.env", filepath.Base(found))

	_, err = FindEnvTest("missing-file.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindEnvTestAbsolute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.env")
	require.NoError(t, os.WriteFile(path, []byte("X=1\n"), 0o600))

	found, err := FindEnvTest(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = FindEnvTest(filepath.Join(dir, "nope.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
