package suite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/rocketscienceinc/word-duel/internal/repository/storage"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Dir     string
	Storage storage.Storage
}

// New - file storage in a fresh temp directory, removed when the test ends.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithDriver(t, storage.DriverFile)
}

func NewWithDriver(t *testing.T, driver string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dir := t.TempDir()

	st, err := storage.Open(ctx, storage.Options{
		Driver:     driver,
		DataDir:    dir,
		SQLitePath: filepath.Join(dir, "wordgame.db"),
	})
	if err != nil {
		t.Fatalf("could not open %s storage: %v", driver, err)
	}

	t.Cleanup(func() {
		t.Helper()

		if err = st.Close(); err != nil {
			t.Fatalf("could not close storage: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Dir:     dir,
		Storage: st,
	}
}
