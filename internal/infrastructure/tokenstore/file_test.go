package tokenstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/tokenstore"
)

func TestFileStore_PersisteYRecarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)
	assert.Empty(t, s.Token(), "sin archivo no hay token")

	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var data map[string]string
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, "abc123", data[tokenstore.TokenKey])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reopened.Token(), "el token sobrevive al reinicio")
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("abc123"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Clear(), "limpiar dos veces no es error")
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	s, err := tokenstore.NewFileStore(path)
	require.NoError(t, err)
	assert.Empty(t, s.Token())
}

func TestMemoryStore(t *testing.T) {
	s := tokenstore.NewMemoryStore("t0")
	assert.Equal(t, "t0", s.Token())
	require.NoError(t, s.SetToken("t1"))
	assert.Equal(t, "t1", s.Token())
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
}
