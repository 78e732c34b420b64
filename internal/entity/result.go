package entity

import "time"

// GameResult - immutable record of a finished game.
type GameResult struct {
	GameID        string    `json:"game_id"`
	StartWord     string    `json:"start_word"`
	UsedWords     WordSet   `json:"used_words"`
	TotalWords    int       `json:"total_words"`
	WinnerName    string    `json:"winner_name"`
	LoserName     string    `json:"loser_name"`
	WinnerMessage string    `json:"winner_message"`
	LoserMessage  string    `json:"loser_message"`
	Reason        string    `json:"reason"`
	FinishedAt    time.Time `json:"finished_at"`
}

func NewGameResult(state *GameState, winner, loser *Player, reason string, finishedAt time.Time) *GameResult {
	return &GameResult{
		GameID:     state.ID,
		StartWord:  state.StartWord,
		UsedWords:  state.UsedWords.Clone(),
		TotalWords: state.WordsPlayed(),
		WinnerName: winner.Name,
		LoserName:  loser.Name,
		Reason:     reason,
		FinishedAt: finishedAt,
	}
}
