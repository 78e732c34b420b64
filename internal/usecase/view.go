package usecase

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/internal/i18n"
)

const (
	commandShowWords  = "/show-words"
	commandScore      = "/score"
	commandTotalScore = "/total-score"
)

func (that *TurnEngine) showRules() {
	that.console.Clear()
	that.console.Println(that.text(i18n.GameTitle))
	that.console.Println(that.text(i18n.RulesTitle))
	that.console.Println(that.text(i18n.Rule1))
	that.console.Println(that.text(i18n.Rule2))
	that.console.Println(that.text(i18n.Rule3))
	that.console.Println(that.plural(i18n.Rule4, that.timeoutSeconds()))
	that.console.Println(that.text(i18n.Separator))
}

func (that *TurnEngine) showRound() {
	first, second := that.state.Players[0], that.state.Players[1]

	that.console.Clear()
	that.console.Println(that.text(i18n.GameTitle))
	that.console.Println(that.format(i18n.CurrentStartWord, i18n.Data{"Word": that.state.StartWord}))
	that.console.Println(that.format(i18n.CurrentPlayers, i18n.Data{"First": first.Name, "Second": second.Name}))
	that.console.Println(that.text(i18n.Separator))
	that.console.Println(that.format(i18n.PlayerTurn, i18n.Data{"Name": that.state.CurrentPlayer().Name}))
	that.console.Println(that.plural(i18n.TimeLimit, that.timeoutSeconds()))
	that.console.Println(that.plural(i18n.WordsUsedCount, that.state.WordsPlayed()))
	that.console.Println(that.text(i18n.AvailableCommands))

	if that.state.WordsPlayed() > 0 {
		that.console.Println(that.text(i18n.WordsHistory))
		that.printWords(that.historyLimit)
	}

	that.console.Println(that.text(i18n.Separator))
}

func (that *TurnEngine) showGameOver(message string, winner *entity.Player) {
	that.console.Clear()
	that.console.Println(that.text(i18n.GameOver))
	that.console.Println(that.text(i18n.Separator))
	that.console.Println(message)
	that.console.Println(that.format(i18n.PlayerWins, i18n.Data{"Name": winner.Name}))
	that.console.Println(that.text(i18n.Separator))
	that.console.Println(that.text(i18n.GameStatistics))
	that.console.Println(that.format(i18n.CurrentStartWord, i18n.Data{"Word": that.state.StartWord}))
	that.console.Println(that.plural(i18n.TotalWordsNamed, that.state.WordsPlayed()))

	if that.state.WordsPlayed() > 0 {
		that.console.Println(that.text(i18n.AllNamedWords))
		that.printWords(0)
	}
}

// printWords - numbered list of played words, only the last limit of them when limit > 0.
func (that *TurnEngine) printWords(limit int) {
	words := lo.Filter(that.state.UsedWords, func(word string, _ int) bool {
		return word != that.state.StartWord
	})

	offset := 0
	if limit > 0 && len(words) > limit {
		offset = len(words) - limit
	}

	for i, word := range words[offset:] {
		that.console.Println(that.format(i18n.WordListFormat, i18n.Data{"Index": offset + i + 1, "Word": word}))
	}
}

// runCommand - answers a round command in place, the round clock keeps running.
func (that *TurnEngine) runCommand(input string) {
	first, second := that.state.Players[0], that.state.Players[1]

	switch strings.ToLower(strings.TrimSpace(input)) {
	case commandShowWords:
		that.console.Println(that.text(i18n.CommandShowWords))
		that.printWords(0)
	case commandScore:
		that.console.Println(that.format(i18n.CommandScore, scoreData(first, first.Score, second, second.Score)))
	case commandTotalScore:
		that.console.Println(that.format(i18n.CommandTotalScore, scoreData(first, first.TotalWins, second, second.TotalWins)))
	default:
		that.console.Println(that.text(i18n.UnknownCommand))
	}
}

func scoreData(first *entity.Player, firstScore int, second *entity.Player, secondScore int) i18n.Data {
	return i18n.Data{
		"First":       first.Name,
		"FirstScore":  firstScore,
		"Second":      second.Name,
		"SecondScore": secondScore,
	}
}

func (that *TurnEngine) timeoutSeconds() int {
	return int(that.turnTimeout / time.Second)
}
