package storage

import (
	"context"
	"fmt"
	"strings"
)

// Drivers accepted by OpenStore.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config selects and configures a Store.
type Config struct {
	Driver   string
	Path     string
	RedisURL string
	Prefix   string
}

// OpenStore opens the store named by cfg.Driver. An empty driver means sqlite.
func OpenStore(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite store needs a path")
		}
		return Open(cfg.Path)
	case DriverRedis:
		return OpenRedis(ctx, cfg.RedisURL, cfg.Prefix)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q (available: sqlite, redis, memory)", cfg.Driver)
	}
}
