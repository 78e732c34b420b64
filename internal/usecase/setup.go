package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/word-duel/internal/apperror"
	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/internal/i18n"
	"github.com/rocketscienceinc/word-duel/internal/wordcheck"
)

var (
	languageOptions = map[string]string{
		"1": entity.LanguageEnglish,
		"2": entity.LanguageRussian,
	}

	confirmAnswers = []string{"y", "yes", "д", "да"}
)

// ChooseLanguage - asks until a known option is picked, then shows the rules.
func (that *TurnEngine) ChooseLanguage(ctx context.Context) error {
	for {
		that.console.Println(that.text(i18n.ChooseLanguage))
		that.console.Println(that.text(i18n.LanguageOption1))
		that.console.Println(that.text(i18n.LanguageOption2))
		that.console.Print(that.text(i18n.LanguageChoice))

		choice, err := that.console.ReadLine(ctx)
		if err != nil {
			return fmt.Errorf("could not read language: %w", err)
		}

		language, ok := languageOptions[strings.TrimSpace(choice)]
		if !ok {
			that.console.Println(that.text(i18n.LocalisationError))
			continue
		}

		if err = that.SetLanguage(language); err != nil {
			return err
		}

		that.logger.Debug("language selected", "language", language)
		that.showRules()

		return nil
	}
}

// SetupPlayers - offers the two saved players, otherwise asks for both names.
// Known names keep their total wins.
func (that *TurnEngine) SetupPlayers(ctx context.Context) error {
	log := that.logger.With("method", "SetupPlayers")

	saved, err := that.playerRepo.List(ctx)
	if err != nil {
		log.Error("failed to list players", "error", err)
	}

	if len(saved) >= entity.PlayersCount {
		that.console.Print(that.format(i18n.UseSavedPlayers, i18n.Data{"First": saved[0].Name, "Second": saved[1].Name}))

		answer, err := that.console.ReadLine(ctx)
		if err != nil {
			return fmt.Errorf("could not read answer: %w", err)
		}

		if lo.Contains(confirmAnswers, wordcheck.Normalize(answer)) {
			that.SetPlayers(saved[0], saved[1])
			that.console.Println(that.format(i18n.CurrentPlayers, i18n.Data{"First": saved[0].Name, "Second": saved[1].Name}))

			return nil
		}
	}

	var players [entity.PlayersCount]*entity.Player

	for i := range players {
		player, err := that.askPlayer(ctx, i+1, players[:i])
		if err != nil {
			return err
		}

		players[i] = player
	}

	that.SetPlayers(players[0], players[1])

	if err = that.playerRepo.Upsert(ctx, players[:]...); err != nil {
		log.Error("failed to save players", "error", err)
		that.console.Println(that.text(i18n.StatsSaveError))
	}

	that.console.Println(that.format(i18n.CurrentPlayers, i18n.Data{"First": players[0].Name, "Second": players[1].Name}))

	return nil
}

func (that *TurnEngine) askPlayer(ctx context.Context, number int, taken []*entity.Player) (*entity.Player, error) {
	defaultName := that.format(i18n.PlayerName, i18n.Data{"Number": number})

	for {
		that.console.Print(that.format(i18n.EnterNewPlayerName, i18n.Data{"Player": defaultName}))

		input, err := that.console.ReadLine(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not read player name: %w", err)
		}

		name := strings.TrimSpace(input)
		if name == "" {
			name = defaultName
		}

		if lo.ContainsBy(taken, func(player *entity.Player) bool { return player.Name == name }) {
			that.console.Println(that.format(i18n.DuplicatePlayerName, i18n.Data{"Name": name}))
			continue
		}

		player, err := that.playerRepo.GetByName(ctx, name)
		if err == nil {
			that.console.Println(that.format(i18n.FoundExistingPlayer, i18n.Data{"Name": player.Name, "Wins": player.TotalWins}))
			return player, nil
		}

		if !errors.Is(err, apperror.ErrPlayerNotFound) {
			that.logger.Error("failed to find player", "name", name, "error", err)
		}

		return entity.NewPlayer(name), nil
	}
}
