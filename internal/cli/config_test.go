package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gridboard/internal/server"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/store"
)

func TestConfigDefaults(t *testing.T) {
	c := New(io.Discard, LogInfo)
	require.NoError(t, c.loadConfig(t.TempDir()))

	assert.Equal(t, store.BackendFile, c.cfg.Store.Backend)
	assert.Equal(t, store.DefaultRedisPrefix, c.cfg.Store.RedisPrefix)
	assert.Equal(t, store.DefaultMongoDatabase, c.cfg.Store.MongoDatabase)
	assert.Equal(t, server.DefaultAddr, c.cfg.Server.Addr)
	assert.Equal(t, "atomic", c.cfg.Engine.LinkPolicy)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `store:
  backend: sqlite
  data_dir: /srv/gridboard
server:
  addr: 0.0.0.0:9000
engine:
  link_policy: lenient
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gridboard.yaml"), []byte(yaml), 0o644))

	c := New(io.Discard, LogInfo)
	require.NoError(t, c.loadConfig(dir))
	assert.Equal(t, store.BackendSQLite, c.cfg.Store.Backend)
	assert.Equal(t, "/srv/gridboard", c.cfg.Store.DataDir)
	assert.Equal(t, "0.0.0.0:9000", c.cfg.Server.Addr)
	assert.Equal(t, "lenient", c.cfg.Engine.LinkPolicy)
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("GRIDBOARD_STORE_BACKEND", "redis")
	t.Setenv("GRIDBOARD_STORE_REDIS_ADDR", "localhost:6379")

	c := New(io.Discard, LogInfo)
	require.NoError(t, c.loadConfig(t.TempDir()))
	assert.Equal(t, store.BackendRedis, c.cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", c.cfg.Store.RedisAddr)
}

func TestConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gridboard.yaml"), []byte("store: [unclosed"), 0o644))

	c := New(io.Discard, LogInfo)
	assert.Error(t, c.loadConfig(dir))
}

func TestBadLinkPolicy(t *testing.T) {
	_, err := run(t, t.TempDir(), "list", "--link-policy", "sticky")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
}

func TestUnknownBackend(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"list", "--config-dir", t.TempDir(), "--backend", "floppy"})
	err := root.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown backend"), "got %v", err)
}

func TestConfigDir(t *testing.T) {
	t.Setenv("GRIDBOARD_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	dir, err := configDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/custom-config", appName), dir)

	t.Setenv("GRIDBOARD_CONFIG_DIR", "/etc/gridboard")
	dir, err = configDir()
	require.NoError(t, err)
	assert.Equal(t, "/etc/gridboard", dir)
}
