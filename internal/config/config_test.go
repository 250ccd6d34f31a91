package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MATHCOACH_ENV", "MATHCOACH_DB", "DATABASE_URL", "LOG_LEVEL",
		"MATHCOACH_ADDR", "MATHCOACH_CORS_ORIGINS", "MATHCOACH_LLM_RETENTION",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	c := FromEnv()

	assert.Equal(t, EnvProduction, c.Env)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, c.CORSOrigins)
	assert.Equal(t, 30*24*time.Hour, c.LLMRetention)
	assert.Empty(t, c.DSN())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATHCOACH_ENV", "development")
	t.Setenv("MATHCOACH_DB", "/tmp/m.db")
	t.Setenv("MATHCOACH_ADDR", "127.0.0.1:9000")
	t.Setenv("MATHCOACH_CORS_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("MATHCOACH_LLM_RETENTION", "72h")

	c := FromEnv()
	assert.Equal(t, EnvDevelopment, c.Env)
	assert.Equal(t, "/tmp/m.db", c.DSN())
	assert.Equal(t, "127.0.0.1:9000", c.HTTPAddr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins)
	assert.Equal(t, 72*time.Hour, c.LLMRetention)

	t.Setenv("DATABASE_URL", "postgres://localhost/mathcoach")
	assert.Equal(t, "postgres://localhost/mathcoach", FromEnv().DSN())

	t.Setenv("MATHCOACH_LLM_RETENTION", "-1h")
	assert.Equal(t, 30*24*time.Hour, FromEnv().LLMRetention)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("MATHCOACH_ADDR")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MATHCOACH_ADDR=:7070\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.Unsetenv("MATHCOACH_ADDR")
	})

	assert.Equal(t, ":7070", Load().HTTPAddr)
}
