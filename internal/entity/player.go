package entity

type Player struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	TotalWins int    `json:"total_wins"`
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}
