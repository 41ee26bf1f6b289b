package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config validation errors.
var (
	ErrBackendEmpty      = errors.New("backend must not be empty")
	ErrBackendUnknown    = errors.New("unknown backend")
	ErrRedisAddrRequired = errors.New("redis backend requires an address")
	ErrMongoURIRequired  = errors.New("mongo backend requires a URI")
)

var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendFile:   true,
	BackendSQLite: true,
	BackendRedis:  true,
	BackendMongo:  true,
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendMemory, BackendFile, BackendSQLite, BackendRedis, BackendMongo}
}

// Config selects and configures a backend.
type Config struct {
	Backend string `mapstructure:"backend" json:"backend"`

	// DataDir is the directory for the file and sqlite backends. Empty uses
	// ~/.config/gridboard.
	DataDir string `mapstructure:"data_dir" json:"data_dir"`

	RedisAddr     string `mapstructure:"redis_addr" json:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password" json:"-"`
	RedisDB       int    `mapstructure:"redis_db" json:"redis_db"`
	RedisPrefix   string `mapstructure:"redis_prefix" json:"redis_prefix"`

	MongoURI      string `mapstructure:"mongo_uri" json:"-"`
	MongoDatabase string `mapstructure:"mongo_database" json:"mongo_database"`
}

// Validate returns one of the sentinel errors above on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	}
	switch c.Backend {
	case BackendRedis:
		if c.RedisAddr == "" {
			return ErrRedisAddrRequired
		}
	case BackendMongo:
		if c.MongoURI == "" {
			return ErrMongoURIRequired
		}
	}
	return nil
}

// Open validates cfg, opens the selected backend and wraps it with the
// registered store hooks.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Instrument(s, cfg.Backend), nil
}

func open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		dir := cfg.DataDir
		if dir != "" {
			dir = filepath.Join(dir, "boards")
		}
		return NewFileStore(dir)
	case BackendSQLite:
		dir := cfg.DataDir
		if dir == "" {
			d, err := DefaultDataDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return NewSQLiteStore(ctx, dir)
	case BackendRedis:
		return NewRedisStore(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case BackendMongo:
		return NewMongoStore(ctx, MongoConfig{URI: cfg.MongoURI, Database: cfg.MongoDatabase})
	default:
		return nil, fmt.Errorf("%w: %q", ErrBackendUnknown, cfg.Backend)
	}
}
