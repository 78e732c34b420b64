package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/word-duel/internal/apperror"
	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/internal/repository/storage"
)

type SessionRepository interface {
	Save(ctx context.Context, state *entity.GameState) error
	Load(ctx context.Context) (*entity.GameState, error)
	Delete(ctx context.Context) error
}

type dbSession struct {
	storage storage.Storage
}

func NewSessionRepository(st storage.Storage) SessionRepository {
	return &dbSession{
		storage: st,
	}
}

func (that *dbSession) Save(ctx context.Context, state *entity.GameState) error {
	stateJSON, err := encode(state)
	if err != nil {
		return fmt.Errorf("could not encode session: %w", err)
	}

	if err = that.storage.Put(ctx, SessionKey, stateJSON); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (that *dbSession) Load(ctx context.Context) (*entity.GameState, error) {
	response, err := that.storage.Get(ctx, SessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var state entity.GameState
	if err = json.Unmarshal(response, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrSessionCorrupted, err)
	}

	return &state, nil
}

func (that *dbSession) Delete(ctx context.Context) error {
	if err := that.storage.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
