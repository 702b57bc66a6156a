package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookups(t *testing.T) {
	t.Setenv("LOGICKA_STR", "  value ")
	t.Setenv("LOGICKA_INT", "42")
	t.Setenv("LOGICKA_BAD_INT", "forty")
	t.Setenv("LOGICKA_BOOL", "true")
	t.Setenv("LOGICKA_DUR", "250ms")
	t.Setenv("LOGICKA_LIST", " a, ,b ,")

	assert.Equal(t, "value", String("LOGICKA_STR", "def"))
	assert.Equal(t, "def", String("LOGICKA_MISSING", "def"))

	n, err := Int("LOGICKA_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = Int("LOGICKA_MISSING", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = Int("LOGICKA_BAD_INT", 1)
	assert.ErrorContains(t, err, "LOGICKA_BAD_INT must be a number")

	assert.True(t, Bool("LOGICKA_BOOL"))
	assert.False(t, Bool("LOGICKA_MISSING"))

	d, err := Duration("LOGICKA_DUR", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	assert.Equal(t, []string{"a", "b"}, List("LOGICKA_LIST"))
	assert.Nil(t, List("LOGICKA_MISSING"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOGICKA_FROM_FILE=yes\n"), 0o644))
	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { _ = os.Unsetenv("LOGICKA_FROM_FILE") })

	require.NoError(t, LoadDotEnv("local", "unused"))
	assert.Equal(t, "yes", os.Getenv("LOGICKA_FROM_FILE"))

	t.Setenv("ENV_PATH", filepath.Join(dir, "missing.env"))
	assert.Error(t, LoadDotEnv("local", "unused"))
	assert.NoError(t, LoadDotEnv("production", "unused"))
}
