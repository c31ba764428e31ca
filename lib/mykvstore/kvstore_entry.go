package mykvstore

import (
	"context"

	"github.com/MarcGrol/shopfrontend/lib/mystore"
)

// Entry is how a single key-value pair is kept in a mystore.Store.
type Entry struct {
	Key   string
	Value string `datastore:",noindex"`
}

type entryStore struct {
	store mystore.Store[Entry]
}

func NewEntryStore(store mystore.Store[Entry]) KeyValueStore {
	return &entryStore{
		store: store,
	}
}

func (s *entryStore) Get(c context.Context, key string) (string, bool, error) {
	entry, found, err := s.store.Get(c, key)
	if err != nil || !found {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *entryStore) Put(c context.Context, key string, value string) error {
	return s.store.Put(c, key, Entry{Key: key, Value: value})
}
