package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// When: loading a config path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 15*time.Second, conf.TurnTimeout)
		assert.Equal(t, 10, conf.HistoryDisplayLimit)
		assert.False(t, conf.PlainOutput)
		assert.Equal(t, "file", conf.Storage.Driver)
		assert.Equal(t, "wordgame.db", conf.Storage.SQLitePath)
	})

	t.Run("Reads yaml values", func(t *testing.T) {
		// Given: a config file overriding some values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nturn-timeout: 30s\nstorage:\n  driver: sqlite\n  sqlite-path: /tmp/game.db\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: file values win and the rest keeps defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 30*time.Second, conf.TurnTimeout)
		assert.Equal(t, "sqlite", conf.Storage.Driver)
		assert.Equal(t, "/tmp/game.db", conf.Storage.SQLitePath)
		assert.Equal(t, ".", conf.Storage.DataDir)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("turn-timeout: 30s\n"), 0o600))
		t.Setenv("WORDGAME_TURN_TIMEOUT", "5s")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, conf.TurnTimeout)
	})

	t.Run("Error on malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("turn-timeout: [\n"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
