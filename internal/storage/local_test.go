package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func abrirStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sesion.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGet(t *testing.T) {
	s := abrirStore(t)

	require.NoError(t, s.Set("token", "abc123"))
	v, err := s.Get("token")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", v)

	// Reemplazo de un valor existente
	require.NoError(t, s.Set("token", "xyz789"))
	v, err = s.Get("token")
	assert.NoError(t, err)
	assert.Equal(t, "xyz789", v)
}

func TestGetClaveInexistente(t *testing.T) {
	s := abrirStore(t)
	v, err := s.Get("no-existe")
	assert.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestRemove(t *testing.T) {
	s := abrirStore(t)
	require.NoError(t, s.Set("rol", "administrador"))
	require.NoError(t, s.Remove("rol"))
	v, err := s.Get("rol")
	assert.NoError(t, err)
	assert.Equal(t, "", v)

	// Borrar dos veces no falla
	assert.NoError(t, s.Remove("rol"))
}

func TestPersisteEntreAperturas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sesion.db")

	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Set("user", "mperez"))
	require.NoError(t, s.Close())

	s2, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer s2.Close()
	v, err := s2.Get("user")
	assert.NoError(t, err)
	assert.Equal(t, "mperez", v)
}
