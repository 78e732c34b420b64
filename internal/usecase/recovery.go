package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/word-duel/internal/apperror"
	"github.com/rocketscienceinc/word-duel/internal/i18n"
)

// Recover - finalizes a game left unfinished by a previous run.
//
// The player whose turn was pending loses. Returns true when a game was
// finalized. Storage problems are reported and swallowed, only a failed
// read of the acknowledgement is returned.
func (that *TurnEngine) Recover(ctx context.Context) (bool, error) {
	log := that.logger.With("method", "Recover")

	state, err := that.sessionRepo.Load(ctx)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return false, nil
	}

	if err != nil {
		that.discardSession(ctx, err)
		return false, nil
	}

	if state.GameFinished {
		log.Debug("stale finished session removed", "game", state.ID)
		that.deleteSession(ctx)

		return false, nil
	}

	if err = state.Validate(); err != nil {
		that.discardSession(ctx, fmt.Errorf("%w: %w", apperror.ErrSessionCorrupted, err))
		return false, nil
	}

	if err = that.SetLanguage(state.Language); err != nil {
		log.Warn("session language is not supported", "language", state.Language, "error", err)
	}

	that.state = state
	defer func() {
		that.state = nil
	}()

	winner, loser := state.Finish()
	that.checkpoint(ctx)

	winner.TotalWins++

	that.finalize(ctx, log, winner, loser, i18n.Abandoned)

	if err = that.sessionRepo.Delete(ctx); err != nil {
		log.Error("failed to delete recovered session", "error", fmt.Errorf("%w: %w", apperror.ErrRecovery, err))
	}

	log.Info("interrupted game finalized", "game", state.ID, "winner", winner.Name, "loser", loser.Name)

	that.console.Clear()
	that.console.Println(that.text(i18n.GameWasInterrupted))
	that.console.Println(that.format(i18n.InterruptedGameNotice, i18n.Data{"Name": loser.Name}))
	that.console.Println(that.format(i18n.Winner, i18n.Data{"Name": winner.Name}))
	that.console.Print(that.text(i18n.PressEnterToContinue))

	if err = that.console.WaitForAck(ctx); err != nil {
		return true, fmt.Errorf("could not acknowledge recovery: %w", err)
	}

	return true, nil
}

// discardSession - a session that cannot be trusted is reported and removed.
func (that *TurnEngine) discardSession(ctx context.Context, cause error) {
	that.logger.Error("failed to load session", "error", cause)
	that.console.Println(that.text(i18n.SessionLoadError))
	that.deleteSession(ctx)
}

func (that *TurnEngine) deleteSession(ctx context.Context) {
	if err := that.sessionRepo.Delete(ctx); err != nil {
		that.logger.Error("failed to delete session", "error", err)
	}
}
