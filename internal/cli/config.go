package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/gridboard/internal/server"
	"github.com/matzehuels/gridboard/pkg/store"
)

const (
	configFileName = "gridboard"
	configFileType = "yaml"

	// Config keys.
	cfgKeyBackend       = "store.backend"
	cfgKeyDataDir       = "store.data_dir"
	cfgKeyRedisAddr     = "store.redis_addr"
	cfgKeyRedisPassword = "store.redis_password"
	cfgKeyRedisDB       = "store.redis_db"
	cfgKeyRedisPrefix   = "store.redis_prefix"
	cfgKeyMongoURI      = "store.mongo_uri"
	cfgKeyMongoDatabase = "store.mongo_database"
	cfgKeyServerAddr    = "server.addr"
	cfgKeyLinkPolicy    = "engine.link_policy"

	defaultBackend = store.BackendFile
)

// Config is the resolved CLI configuration.
type Config struct {
	Store  store.Config `mapstructure:"store"`
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Engine struct {
		LinkPolicy string `mapstructure:"link_policy"`
	} `mapstructure:"engine"`
}

// newViper returns a viper instance with defaults and GRIDBOARD_* env
// overrides. Every key has a default so Unmarshal sees env values.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetDefault(cfgKeyRedisAddr, "")
	v.SetDefault(cfgKeyRedisPassword, "")
	v.SetDefault(cfgKeyRedisDB, 0)
	v.SetDefault(cfgKeyRedisPrefix, store.DefaultRedisPrefix)
	v.SetDefault(cfgKeyMongoURI, "")
	v.SetDefault(cfgKeyMongoDatabase, store.DefaultMongoDatabase)
	v.SetDefault(cfgKeyServerAddr, server.DefaultAddr)
	v.SetDefault(cfgKeyLinkPolicy, "atomic")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlags lets command-line flags override the config file.
func (c *CLI) bindFlags(flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		cfgKeyBackend:    "backend",
		cfgKeyDataDir:    "data-dir",
		cfgKeyLinkPolicy: "link-policy",
	} {
		if err := c.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// loadConfig reads gridboard.yaml from dir. A missing file is not an error.
func (c *CLI) loadConfig(dir string) error {
	c.configDir = dir
	c.v.SetConfigName(configFileName)
	c.v.SetConfigType(configFileType)
	c.v.AddConfigPath(dir)

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		c.Logger.Debug("loaded config", "file", c.v.ConfigFileUsed())
	}

	if err := c.v.Unmarshal(&c.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}
