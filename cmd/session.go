package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nutrimind/nutrimind/internal/utils"
	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/session"
	"github.com/nutrimind/nutrimind/pkg/storage"
)

func storageConfig() (storage.Config, error) {
	cfg := storage.Config{
		Driver:   strings.ToLower(viper.GetString("storage.driver")),
		RedisURL: viper.GetString("storage.redis_url"),
		Prefix:   viper.GetString("storage.prefix"),
	}
	if cfg.Driver == "" || cfg.Driver == storage.DriverSQLite {
		path, err := utils.GetAbsDBPath(viper.GetString("storage.path"))
		if err != nil {
			return cfg, err
		}
		cfg.Path = path
	}
	return cfg, nil
}

// openSession opens the configured store and loads today's session. For
// sqlite the database lock is held until the returned close func runs.
func openSession(ctx context.Context) (*session.Session, func(), error) {
	cfg, err := storageConfig()
	if err != nil {
		return nil, nil, err
	}

	var lock *utils.DBLock
	if cfg.Path != "" {
		lock, err = utils.NewDBLock(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := lock.Lock(); err != nil {
			return nil, nil, err
		}
	}
	unlock := func() {
		if lock != nil {
			if err := lock.Unlock(); err != nil {
				utils.Log.Warn(err)
			}
		}
	}

	store, err := storage.OpenStore(ctx, cfg)
	if err != nil {
		unlock()
		return nil, nil, err
	}
	utils.Log.Debugf("Opened %s store", cfg.Driver)

	sess := session.New(ctx, store, session.WithLogger(utils.Log))
	return sess, func() {
		store.Close()
		unlock()
	}, nil
}

// withSession runs fn against a freshly opened session and closes it after.
func withSession(fn func(*session.Session) error) error {
	sess, done, err := openSession(context.Background())
	if err != nil {
		return err
	}
	defer done()
	return fn(sess)
}

func parseMealFlag(raw string) (nutrition.Meal, error) {
	m, ok := nutrition.ParseMeal(raw)
	if !ok {
		return "", fmt.Errorf("unknown meal %q (available: breakfast, lunch, dinner, snacks)", raw)
	}
	return m, nil
}
