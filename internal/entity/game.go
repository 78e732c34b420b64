package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/word-duel/internal/apperror"
)

const (
	LanguageEnglish = "en-US"
	LanguageRussian = "ru-RU"

	PlayersCount = 2
)

type Phase string

const (
	PhaseAwaitingStart  Phase = "awaiting_start"
	PhaseInRound        Phase = "in_round"
	PhaseRoundCommitted Phase = "round_committed"
	PhaseGameOver       Phase = "game_over"
)

var (
	ErrInvalidPlayerIndex = errors.New("invalid current player index")
	ErrMissingPlayers     = errors.New("game needs exactly two players")
	ErrStartWordNotUsed   = errors.New("start word is missing from used words")
)

// GameState - session checkpoint, overwritten before every round.
type GameState struct {
	ID                 string                `json:"id"`
	StartWord          string                `json:"start_word"`
	UsedWords          WordSet               `json:"used_words"`
	CurrentPlayerIndex int                   `json:"current_player_index"`
	GameFinished       bool                  `json:"game_finished"`
	Language           string                `json:"language"`
	Players            [PlayersCount]*Player `json:"players"`
	StartedAt          time.Time             `json:"started_at"`
}

func NewGameState(id, startWord, language string, players [PlayersCount]*Player, startedAt time.Time) *GameState {
	for _, player := range players {
		player.Score = 0
	}

	return &GameState{
		ID:        id,
		StartWord: startWord,
		UsedWords: NewWordSet(startWord),
		Language:  language,
		Players:   players,
		StartedAt: startedAt,
	}
}

func (that *GameState) CurrentPlayer() *Player {
	return that.Players[that.CurrentPlayerIndex]
}

func (that *GameState) OpponentIndex() int {
	return 1 - that.CurrentPlayerIndex
}

// WordsPlayed - number of accepted moves, the start word is not counted.
func (that *GameState) WordsPlayed() int {
	if that.UsedWords.Len() == 0 {
		return 0
	}

	return that.UsedWords.Len() - 1
}

// Commit - records an accepted word and passes the turn.
func (that *GameState) Commit(word string) error {
	if that.GameFinished {
		return apperror.ErrGameFinished
	}

	if !that.UsedWords.Add(word) {
		return apperror.ErrAlreadyUsed
	}

	that.CurrentPlayer().Score++
	that.CurrentPlayerIndex = that.OpponentIndex()

	return nil
}

// Finish - ends the game with the current player as the loser.
func (that *GameState) Finish() (*Player, *Player) {
	that.GameFinished = true

	return that.Players[that.OpponentIndex()], that.CurrentPlayer()
}

// Validate - structural check of a checkpoint read back from storage.
func (that *GameState) Validate() error {
	if that.CurrentPlayerIndex < 0 || that.CurrentPlayerIndex >= PlayersCount {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerIndex, that.CurrentPlayerIndex)
	}

	for _, player := range that.Players {
		if player == nil {
			return ErrMissingPlayers
		}
	}

	if that.UsedWords.Len() > 0 && !that.UsedWords.Contains(that.StartWord) {
		return ErrStartWordNotUsed
	}

	return nil
}
