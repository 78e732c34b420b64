package repository

import (
	"encoding/json"
	"fmt"
)

const (
	SessionKey = "game_session"
	ResultsKey = "game_results"
	PlayersKey = "players_stats"

	jsonIndent = "  "
)

// encode - stored documents are indented so they stay readable and diffable.
func encode(value any) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("could not marshal: %w", err)
	}

	return append(data, '\n'), nil
}
