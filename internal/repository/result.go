package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/internal/repository/storage"
)

type ResultRepository interface {
	Append(ctx context.Context, result *entity.GameResult) error
	List(ctx context.Context) ([]*entity.GameResult, error)
}

type dbResult struct {
	logger  *slog.Logger
	storage storage.Storage
}

func NewResultRepository(logger *slog.Logger, st storage.Storage) ResultRepository {
	return &dbResult{
		logger:  logger.With("component", "results"),
		storage: st,
	}
}

func (that *dbResult) Append(ctx context.Context, result *entity.GameResult) error {
	results, err := that.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load results history: %w", err)
	}

	results = append(results, result)

	resultsJSON, err := encode(results)
	if err != nil {
		return fmt.Errorf("could not encode results: %w", err)
	}

	if err = that.storage.Put(ctx, ResultsKey, resultsJSON); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// List - a missing or corrupt history reads as empty.
func (that *dbResult) List(ctx context.Context) ([]*entity.GameResult, error) {
	response, err := that.storage.Get(ctx, ResultsKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []*entity.GameResult{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	var results []*entity.GameResult
	if err = json.Unmarshal(response, &results); err != nil {
		that.logger.Warn("results history is corrupted, starting over", "error", err)
		return []*entity.GameResult{}, nil
	}

	if results == nil {
		results = []*entity.GameResult{}
	}

	return results, nil
}
