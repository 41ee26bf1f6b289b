// Package cli implements the gridboard command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/observability"
	"github.com/matzehuels/gridboard/pkg/store"
	"github.com/matzehuels/gridboard/pkg/workspace"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridboard"

	// envPrefix prefixes environment overrides (GRIDBOARD_STORE_BACKEND, ...).
	envPrefix = "GRIDBOARD"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configDir string
	v         *viper.Viper
	cfg       Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		v:      newViper(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Workspace Factory
// =============================================================================

// newEngine builds an engine with the configured link policy that logs
// every committed change.
func (c *CLI) newEngine() (*board.Engine, error) {
	policy, err := board.ParseLinkPolicy(c.cfg.Engine.LinkPolicy)
	if err != nil {
		return nil, err
	}
	return board.NewEngine(
		board.WithLinkPolicy(policy),
		board.WithHooks(newLogHooks(c.Logger)),
	), nil
}

// openWorkspace opens the configured store. The caller closes the workspace.
func (c *CLI) openWorkspace(ctx context.Context) (*workspace.Workspace, error) {
	e, err := c.newEngine()
	if err != nil {
		return nil, err
	}

	observability.SetStoreHooks(storeLogHooks{logger: c.Logger})

	cfg := c.cfg.Store
	var s store.Store
	if cfg.Backend == store.BackendRedis || cfg.Backend == store.BackendMongo {
		spin := newSpinner(ctx, "Connecting to "+cfg.Backend+"...")
		spin.Start()
		s, err = store.Open(ctx, cfg)
		if err != nil {
			spin.StopWithError("Could not connect to " + cfg.Backend)
		} else {
			spin.Stop()
		}
	} else {
		s, err = store.Open(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("opened store", "backend", cfg.Backend)
	return workspace.New(s, e, c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the configuration directory using the XDG standard
// (~/.config/gridboard/).
func configDir() (string, error) {
	if dir := os.Getenv(envPrefix + "_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
