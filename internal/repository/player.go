package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/word-duel/internal/apperror"
	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/internal/repository/storage"
)

// PlayerRepository - the leaderboard, players are keyed by exact name.
type PlayerRepository interface {
	List(ctx context.Context) ([]*entity.Player, error)
	GetByName(ctx context.Context, name string) (*entity.Player, error)
	Upsert(ctx context.Context, players ...*entity.Player) error
}

type dbPlayer struct {
	logger  *slog.Logger
	storage storage.Storage
}

func NewPlayerRepository(logger *slog.Logger, st storage.Storage) PlayerRepository {
	return &dbPlayer{
		logger:  logger.With("component", "leaderboard"),
		storage: st,
	}
}

// List - a missing or corrupt leaderboard reads as empty.
func (that *dbPlayer) List(ctx context.Context) ([]*entity.Player, error) {
	response, err := that.storage.Get(ctx, PlayersKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []*entity.Player{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	var players []*entity.Player
	if err = json.Unmarshal(response, &players); err != nil {
		that.logger.Warn("leaderboard is corrupted, starting over", "error", err)
		return []*entity.Player{}, nil
	}

	return lo.Filter(players, func(player *entity.Player, _ int) bool {
		return player != nil
	}), nil
}

func (that *dbPlayer) GetByName(ctx context.Context, name string) (*entity.Player, error) {
	players, err := that.List(ctx)
	if err != nil {
		return nil, err
	}

	player, found := lo.Find(players, func(player *entity.Player) bool {
		return player.Name == name
	})
	if !found {
		return nil, apperror.ErrPlayerNotFound
	}

	return player, nil
}

// Upsert - replaces stored players with the same name, appends new ones.
func (that *dbPlayer) Upsert(ctx context.Context, players ...*entity.Player) error {
	stored, err := that.List(ctx)
	if err != nil {
		return err
	}

	for _, player := range players {
		_, index, found := lo.FindIndexOf(stored, func(existing *entity.Player) bool {
			return existing.Name == player.Name
		})

		snapshot := *player
		if found {
			stored[index] = &snapshot
			continue
		}

		stored = append(stored, &snapshot)
	}

	playersJSON, err := encode(stored)
	if err != nil {
		return fmt.Errorf("could not encode players: %w", err)
	}

	if err = that.storage.Put(ctx, PlayersKey, playersJSON); err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	return nil
}
