package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[string]Storage {
	t.Helper()

	ctx := context.Background()
	dir := t.TempDir()

	fileStorage, err := Open(ctx, Options{Driver: DriverFile, DataDir: filepath.Join(dir, "data")})
	require.NoError(t, err)

	sqliteStorage, err := Open(ctx, Options{Driver: DriverSQLite, SQLitePath: filepath.Join(dir, "wordgame.db")})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, fileStorage.Close())
		assert.NoError(t, sqliteStorage.Close())
	})

	return map[string]Storage{
		DriverFile:   fileStorage,
		DriverSQLite: sqliteStorage,
	}
}

func TestStorage_Contract(t *testing.T) {
	ctx := context.Background()

	for driver, st := range openAll(t) {
		t.Run(driver+"/Get missing key", func(t *testing.T) {
			// When: a key that was never written is read
			_, err := st.Get(ctx, "missing")

			// Then: ErrKeyNotFound is returned
			require.ErrorIs(t, err, ErrKeyNotFound)
		})

		t.Run(driver+"/Put then Get", func(t *testing.T) {
			// Given: a stored value
			require.NoError(t, st.Put(ctx, "game_session", []byte(`{"start_word":"триангл"}`)))

			// When: it is read back
			value, err := st.Get(ctx, "game_session")

			// Then: the exact bytes come back
			require.NoError(t, err)
			assert.JSONEq(t, `{"start_word":"триангл"}`, string(value))
		})

		t.Run(driver+"/Put overwrites", func(t *testing.T) {
			require.NoError(t, st.Put(ctx, "players_stats", []byte(`[1]`)))
			require.NoError(t, st.Put(ctx, "players_stats", []byte(`[2]`)))

			value, err := st.Get(ctx, "players_stats")

			require.NoError(t, err)
			assert.Equal(t, `[2]`, string(value))
		})

		t.Run(driver+"/Delete", func(t *testing.T) {
			// Given: a stored value
			require.NoError(t, st.Put(ctx, "to_delete", []byte(`{}`)))

			// When: it is deleted twice
			require.NoError(t, st.Delete(ctx, "to_delete"))
			require.NoError(t, st.Delete(ctx, "to_delete"))

			// Then: it is gone
			_, err := st.Get(ctx, "to_delete")
			require.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestFileStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes one json file per key and no temp files", func(t *testing.T) {
		// Given: a file storage in an empty directory
		dir := t.TempDir()
		st, err := NewFileStorage(dir)
		require.NoError(t, err)

		// When: a key is written twice
		require.NoError(t, st.Put(ctx, "game_results", []byte(`[]`)))
		require.NoError(t, st.Put(ctx, "game_results", []byte(`[{}]`)))

		// Then: only the final file remains
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "game_results.json", entries[0].Name())

		data, err := os.ReadFile(filepath.Join(dir, "game_results.json"))
		require.NoError(t, err)
		assert.Equal(t, `[{}]`, string(data))
	})

	t.Run("Error on keys escaping the directory", func(t *testing.T) {
		st, err := NewFileStorage(t.TempDir())
		require.NoError(t, err)

		for _, key := range []string{"", "../x", `a\b`, ".."} {
			_, err = st.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey, key)
		}
	})
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "redis"})

	require.ErrorIs(t, err, ErrUnknownDriver)
}
