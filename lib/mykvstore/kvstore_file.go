package mykvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileStore keeps all pairs in a single yaml document, the on-disk
// counterpart of browser local-storage.
type fileStore struct {
	sync.Mutex
	filename string
}

func NewFileStore(filename string) KeyValueStore {
	return &fileStore{
		filename: filename,
	}
}

func (s *fileStore) Get(c context.Context, key string) (string, bool, error) {
	s.Lock()
	defer s.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, found := values[key]
	return value, found, nil
}

func (s *fileStore) Put(c context.Context, key string, value string) error {
	s.Lock()
	defer s.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error marshalling %s: %w", s.filename, err)
	}

	err = os.MkdirAll(filepath.Dir(s.filename), 0o700)
	if err != nil {
		return fmt.Errorf("error creating directory for %s: %w", s.filename, err)
	}

	// write-then-rename so a crash never leaves a half written file
	tmp := s.filename + ".tmp"
	err = os.WriteFile(tmp, data, 0o600)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", tmp, err)
	}
	err = os.Rename(tmp, s.filename)
	if err != nil {
		return fmt.Errorf("error renaming %s: %w", tmp, err)
	}

	return nil
}

func (s *fileStore) read() (map[string]string, error) {
	values := map[string]string{}

	data, err := os.ReadFile(s.filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", s.filename, err)
	}

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", s.filename, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}
