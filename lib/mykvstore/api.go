package mykvstore

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfrontend/lib/myconfig"
	"github.com/MarcGrol/shopfrontend/lib/mystore"
)

//go:generate mockgen -source=api.go -package mykvstore -destination kvstore_mock.go KeyValueStore
type KeyValueStore interface {
	Get(c context.Context, key string) (string, bool, error)
	Put(c context.Context, key string, value string) error
}

func New(c context.Context, cfg myconfig.Config) (KeyValueStore, func(), error) {
	switch cfg.KVBackend {
	case myconfig.KVBackendMemory:
		store, cleanup, err := mystore.NewInMemoryStore[Entry](c)
		if err != nil {
			return nil, func() {}, err
		}
		return NewEntryStore(store), cleanup, nil
	case myconfig.KVBackendDatastore:
		if cfg.GoogleProject == "" {
			return nil, func() {}, fmt.Errorf("key-value backend %q requires a google cloud project", cfg.KVBackend)
		}
		store, cleanup, err := mystore.NewGcloudStore[Entry](c, cfg.GoogleProject)
		if err != nil {
			return nil, func() {}, err
		}
		return NewEntryStore(store), cleanup, nil
	case myconfig.KVBackendFile:
		return NewFileStore(cfg.KVFile), func() {}, nil
	case myconfig.KVBackendRedis:
		return NewRedisStore(cfg.RedisAddr)
	default:
		return nil, func() {}, fmt.Errorf("unsupported key-value backend %q", cfg.KVBackend)
	}
}
