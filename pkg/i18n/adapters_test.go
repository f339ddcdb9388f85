package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()
		data, err := (&i18n.MapAdapter{}).Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, data)
	})
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	t.Run("invalid inputs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFileAdapter(nil, "x.yaml"))
		assert.Nil(t, i18n.NewFileAdapter(i18n.NewYAMLParser(), ""))
	})

	t.Run("loads yaml file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "en.yaml", "en:\n  hello: Hello\n")

		data, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["hello"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "en.yaml", "")
		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "en.yaml", "en:\n  hello: Hello\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(ctx)
		require.Error(t, err)
	})
}

func TestDirectoryAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges files and skips unsupported extensions", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "en.yaml", "en:\n  hello: Hello\n")
		writeFile(t, dir, "en_extra.yml", "en:\n  bye: Bye\n")
		writeFile(t, dir, "notes.txt", "ignored")

		data, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["hello"])
		assert.Equal(t, "Bye", data["en"]["bye"])
	})

	t.Run("not a directory", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "en.yaml", "en:\n  hello: Hello\n")
		_, err := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("no translation files", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewDirectoryAdapter(i18n.NewJSONParser(), t.TempDir()).Load(context.Background())
		require.Error(t, err)
	})
}

func TestEmbeddedFsAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.json":   {Data: []byte(`{"en":{"hello":"Hello"}}`)},
		"locales/es.json":   {Data: []byte(`{"es":{"hello":"Hola"}}`)},
		"locales/bad.json":  {Data: []byte(`{`)},
		"locales/readme.md": {Data: []byte(`# readme`)},
	}

	t.Run("loads supported files", func(t *testing.T) {
		t.Parallel()
		data, err := i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["hello"])
		assert.Equal(t, "Hola", data["es"]["hello"])
	})

	t.Run("invalid inputs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewEmbeddedFsAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), nil, "locales"))
		assert.Nil(t, i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), fsys, ""))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewEmbeddedFsAdapter(i18n.NewJSONParser(), fsys, "nope").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadEmbeddedDirectory)
	})
}
