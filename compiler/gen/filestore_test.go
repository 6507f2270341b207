package gen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileStore(t *testing.T) {
	t.Run("writes into existing directory", func(t *testing.T) {
		dir := t.TempDir()
		p := filepath.Join(dir, "a.go")

		require.NoError(t, OSFileStore{}.WriteFile(p, []byte("package a\n")))
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "package a\n", string(data))
	})

	t.Run("missing directory fails", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "missing", "a.go")
		err := OSFileStore{}.WriteFile(p, []byte("x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("MkdirAll creates directory", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "nested", "dir", "a.go")
		require.NoError(t, OSFileStore{MkdirAll: true}.WriteFile(p, []byte("x")))
		assert.FileExists(t, p)
	})
}

func TestMemFileStore(t *testing.T) {
	t.Run("keeps write order", func(t *testing.T) {
		s := NewMemFileStore()
		require.NoError(t, s.WriteFile("b", []byte("1")))
		require.NoError(t, s.WriteFile("a", []byte("2")))
		require.NoError(t, s.WriteFile("b", []byte("3")))

		assert.Equal(t, []string{"b", "a"}, s.Files())
		got, err := s.Read("b")
		require.NoError(t, err)
		assert.Equal(t, "3", got)
	})

	t.Run("copies data", func(t *testing.T) {
		s := NewMemFileStore()
		data := []byte("abc")
		require.NoError(t, s.WriteFile("x", data))
		data[0] = 'z'

		got, err := s.Read("x")
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	})

	t.Run("read missing", func(t *testing.T) {
		_, err := NewMemFileStore().Read("nope")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("FailOn matches pattern", func(t *testing.T) {
		s := NewMemFileStore()
		boom := errors.New("disk full")
		s.FailOn("out/*_entity_table.go", boom)

		require.NoError(t, s.WriteFile("out/1_create_x_entity_main_table.go", nil))
		assert.Equal(t, boom, s.WriteFile("out/2_create_x_entity_table.go", nil))
		assert.Len(t, s.Files(), 1)
	})
}
