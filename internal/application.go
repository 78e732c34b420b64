package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/word-duel/internal/config"
	"github.com/rocketscienceinc/word-duel/internal/repository"
	"github.com/rocketscienceinc/word-duel/internal/repository/storage"
	"github.com/rocketscienceinc/word-duel/internal/timer"
	"github.com/rocketscienceinc/word-duel/internal/usecase"
	"github.com/rocketscienceinc/word-duel/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	st, err := storage.Open(ctx, storage.Options{
		Driver:     conf.Storage.Driver,
		DataDir:    conf.Storage.DataDir,
		SQLitePath: conf.Storage.SQLitePath,
	})
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = st.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	sessionRepo := repository.NewSessionRepository(st)
	resultRepo := repository.NewResultRepository(logger, st)
	playerRepo := repository.NewPlayerRepository(logger, st)

	terminal := console.New(logger, os.Stdin, os.Stdout, !conf.PlainOutput)

	engine := usecase.NewTurnEngine(logger, terminal, sessionRepo, resultRepo, playerRepo, timer.New(), usecase.Options{
		TurnTimeout:         conf.TurnTimeout,
		HistoryDisplayLimit: conf.HistoryDisplayLimit,
	})

	log.Info("Starting game", "storage", conf.Storage.Driver, "turn_timeout", conf.TurnTimeout)

	if err = engine.Run(ctx); err != nil {
		// the session checkpoint stays on disk and is finalized on the next launch
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			log.Info("Game interrupted", "phase", engine.Phase(), "reason", err)
			return nil
		}

		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
