package mykvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/shopfrontend/lib/myconfig"
)

func TestKeyValueStores(t *testing.T) {
	c := context.TODO()

	memory, _, err := New(c, myconfig.Config{KVBackend: myconfig.KVBackendMemory})
	require.NoError(t, err)

	stores := map[string]KeyValueStore{
		"memory": memory,
		"file":   NewFileStore(filepath.Join(t.TempDir(), "sub", "kv.yaml")),
	}

	for name, sut := range stores {
		t.Run(name, func(t *testing.T) {
			_, found, err := sut.Get(c, "userAccessKey")
			assert.NoError(t, err)
			assert.False(t, found)

			err = sut.Put(c, "userAccessKey", "abc123")
			assert.NoError(t, err)

			err = sut.Put(c, "other", "xyz")
			assert.NoError(t, err)

			value, found, err := sut.Get(c, "userAccessKey")
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "abc123", value)
		})
	}
}

func TestNewDatastoreWithoutProject(t *testing.T) {
	_, cleanup, err := New(context.TODO(), myconfig.Config{KVBackend: myconfig.KVBackendDatastore})
	defer cleanup()
	assert.ErrorContains(t, err, "requires a google cloud project")
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	c := context.TODO()
	filename := filepath.Join(t.TempDir(), "kv.yaml")

	err := NewFileStore(filename).Put(c, "userAccessKey", "abc123")
	require.NoError(t, err)

	value, found, err := NewFileStore(filename).Get(c, "userAccessKey")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc123", value)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "userAccessKey: abc123")
}

func TestFileStoreCorrupt(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "kv.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("- not\n- a map\n"), 0o600))

	_, _, err := NewFileStore(filename).Get(context.TODO(), "userAccessKey")
	assert.Error(t, err)
}
