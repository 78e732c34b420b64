package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/internal/i18n"
	"github.com/rocketscienceinc/word-duel/internal/wordcheck"
)

const (
	DefaultTurnTimeout         = 15 * time.Second
	DefaultHistoryDisplayLimit = 10

	commandPrefix = "/"
)

var ErrPlayersNotSet = errors.New("players are not set")

type console interface {
	ReadLine(ctx context.Context) (string, error)
	WaitForAck(ctx context.Context) error
	Println(text string)
	Print(text string)
	Clear()
}

type sessionRepo interface {
	Save(ctx context.Context, state *entity.GameState) error
	Load(ctx context.Context) (*entity.GameState, error)
	Delete(ctx context.Context) error
}

type resultRepo interface {
	Append(ctx context.Context, result *entity.GameResult) error
}

type playerRepo interface {
	List(ctx context.Context) ([]*entity.Player, error)
	GetByName(ctx context.Context, name string) (*entity.Player, error)
	Upsert(ctx context.Context, players ...*entity.Player) error
}

type roundTimer interface {
	Start(duration time.Duration, onExpired func())
	Stop() bool
}

type Options struct {
	TurnTimeout         time.Duration
	HistoryDisplayLimit int

	Now   func() time.Time
	NewID func() string
}

// loss - why and how the current player lost the round.
type loss struct {
	reason  string
	message string
}

// TurnEngine - owns the game state and drives rounds until the game is over.
type TurnEngine struct {
	logger *slog.Logger

	console     console
	sessionRepo sessionRepo
	resultRepo  resultRepo
	playerRepo  playerRepo
	timer       roundTimer

	translator *i18n.Translator
	validator  *wordcheck.Validator

	turnTimeout  time.Duration
	historyLimit int
	now          func() time.Time
	newID        func() string

	phase    entity.Phase
	players  [entity.PlayersCount]*entity.Player
	state    *entity.GameState
	finished atomic.Bool
}

func NewTurnEngine(
	logger *slog.Logger,
	console console,
	sessionRepo sessionRepo,
	resultRepo resultRepo,
	playerRepo playerRepo,
	timer roundTimer,
	opts Options,
) *TurnEngine {
	if opts.TurnTimeout <= 0 {
		opts.TurnTimeout = DefaultTurnTimeout
	}

	if opts.HistoryDisplayLimit <= 0 {
		opts.HistoryDisplayLimit = DefaultHistoryDisplayLimit
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &TurnEngine{
		logger: logger.With("component", "turn_engine"),

		console:     console,
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		playerRepo:  playerRepo,
		timer:       timer,

		translator: i18n.New(entity.LanguageEnglish),
		validator:  wordcheck.New(wordcheck.Latin),

		turnTimeout:  opts.TurnTimeout,
		historyLimit: opts.HistoryDisplayLimit,
		now:          opts.Now,
		newID:        opts.NewID,

		phase: entity.PhaseAwaitingStart,
	}
}

// Run - finalizes an interrupted game if there is one, then plays a new game.
func (that *TurnEngine) Run(ctx context.Context) error {
	if _, err := that.Recover(ctx); err != nil {
		return fmt.Errorf("failed to recover session: %w", err)
	}

	if err := that.ChooseLanguage(ctx); err != nil {
		return fmt.Errorf("failed to choose language: %w", err)
	}

	if err := that.SetupPlayers(ctx); err != nil {
		return fmt.Errorf("failed to set up players: %w", err)
	}

	if err := that.Play(ctx); err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}

	that.console.Println(that.text(i18n.ExitMessage))

	return nil
}

// Play - asks for a start word and runs rounds until someone loses.
func (that *TurnEngine) Play(ctx context.Context) error {
	if that.players[0] == nil || that.players[1] == nil {
		return ErrPlayersNotSet
	}

	that.phase = entity.PhaseAwaitingStart
	that.finished.Store(false)

	startWord, err := that.askStartWord(ctx)
	if err != nil {
		return err
	}

	that.state = entity.NewGameState(that.newID(), startWord, that.translator.Language(), that.players, that.now())
	that.logger.Info("game started", "game", that.state.ID, "start_word", startWord)

	that.console.Println(that.format(i18n.StartWordSet, i18n.Data{"Word": startWord}))
	that.console.Print(that.text(i18n.PressEnterToStart))
	if err = that.console.WaitForAck(ctx); err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	for {
		lost, err := that.playRound(ctx)
		if err != nil {
			return err
		}

		if lost != nil {
			that.endGame(ctx, lost)
			return nil
		}
	}
}

func (that *TurnEngine) Phase() entity.Phase {
	return that.phase
}

func (that *TurnEngine) State() *entity.GameState {
	return that.state
}

func (that *TurnEngine) Language() string {
	return that.translator.Language()
}

// SetLanguage - switches messages and the alphabet words are checked against.
func (that *TurnEngine) SetLanguage(language string) error {
	if err := that.translator.SetLanguage(language); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}

	that.validator = wordcheck.New(wordcheck.AlphabetFor(language))

	return nil
}

func (that *TurnEngine) SetPlayers(first, second *entity.Player) {
	that.players = [entity.PlayersCount]*entity.Player{first, second}
}

func (that *TurnEngine) askStartWord(ctx context.Context) (string, error) {
	for {
		that.console.Print(that.text(i18n.EnterStartWord))

		input, err := that.console.ReadLine(ctx)
		if err != nil {
			return "", fmt.Errorf("could not read start word: %w", err)
		}

		result := that.validator.ValidateStartWord(input)
		if result.IsValid {
			return wordcheck.Normalize(input), nil
		}

		that.logger.Debug("start word rejected", "word", input, "error", result.Err())
		that.console.Println(that.text(string(result.ErrorKey)))
	}
}

// playRound - one turn. Returns a loss when the game ends with this round.
func (that *TurnEngine) playRound(ctx context.Context) (*loss, error) {
	that.phase = entity.PhaseInRound
	that.checkpoint(ctx)
	that.showRound()

	player := that.state.CurrentPlayer()
	deadline := time.Now().Add(that.turnTimeout)

	var expired atomic.Bool

	for {
		that.console.Print(that.format(i18n.EnterWordPrompt, i18n.Data{"Name": player.Name}))

		input, err := that.readMove(ctx, deadline, &expired)

		if expired.Load() {
			that.console.Println("")
			return &loss{
				reason:  i18n.TimeExpired,
				message: that.format(i18n.TimeExpired, i18n.Data{"Name": player.Name}),
			}, nil
		}

		if err != nil {
			return nil, fmt.Errorf("could not read move: %w", err)
		}

		if strings.HasPrefix(strings.TrimSpace(input), commandPrefix) {
			that.runCommand(input)
			continue
		}

		return that.submitWord(ctx, player, input)
	}
}

// readMove - reads one line against the round deadline.
//
// The timer callback only flips expired and cancels the read. A Stop that
// comes too late marks the round expired even if the callback has not run yet.
func (that *TurnEngine) readMove(ctx context.Context, deadline time.Time, expired *atomic.Bool) (string, error) {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.timer.Start(time.Until(deadline), func() {
		if that.finished.Load() {
			return
		}

		if expired.CompareAndSwap(false, true) {
			cancel()
		}
	})

	input, err := that.console.ReadLine(readCtx)
	if !that.timer.Stop() {
		expired.Store(true)
	}

	return input, err
}

func (that *TurnEngine) submitWord(ctx context.Context, player *entity.Player, input string) (*loss, error) {
	word := wordcheck.Normalize(input)

	if word == "" {
		return &loss{
			reason:  i18n.ErrorEmptyWord,
			message: that.lostMessage(player, that.text(i18n.ErrorEmptyWord)),
		}, nil
	}

	result := that.validator.ValidateMove(word, that.state.StartWord, that.state.UsedWords)
	if !result.IsValid {
		that.logger.Info("move rejected", "game", that.state.ID, "player", player.Name, "word", word, "error", result.Err())

		return &loss{
			reason:  string(result.ErrorKey),
			message: that.lostMessage(player, that.errorMessage(result)),
		}, nil
	}

	if err := that.state.Commit(word); err != nil {
		return nil, fmt.Errorf("failed to commit move: %w", err)
	}

	that.phase = entity.PhaseRoundCommitted
	that.logger.Debug("move accepted", "game", that.state.ID, "player", player.Name, "word", word)

	that.console.Println(that.format(i18n.WordAccepted, i18n.Data{"Word": word}))
	that.console.Print(that.text(i18n.PressEnterToContinue))
	if err := that.console.WaitForAck(ctx); err != nil {
		return nil, fmt.Errorf("could not continue game: %w", err)
	}

	return nil, nil
}

// checkpoint - best effort, a failed save never stops the round.
func (that *TurnEngine) checkpoint(ctx context.Context) {
	if err := that.sessionRepo.Save(ctx, that.state); err != nil {
		that.logger.Error("failed to save session", "game", that.state.ID, "error", err)
		that.console.Println(that.text(i18n.SessionSaveError))
	}
}

func (that *TurnEngine) endGame(ctx context.Context, lost *loss) {
	log := that.logger.With("method", "endGame", "game", that.state.ID)

	that.timer.Stop()
	that.finished.Store(true)

	winner, loser := that.state.Finish()
	that.phase = entity.PhaseGameOver

	// a finished checkpoint is never finalized again
	that.checkpoint(ctx)

	winner.TotalWins++

	that.finalize(ctx, log, winner, loser, lost.reason)

	if err := that.sessionRepo.Delete(ctx); err != nil {
		log.Error("failed to delete session", "error", err)
	}

	log.Info("game over", "winner", winner.Name, "loser", loser.Name, "reason", lost.reason)

	that.showGameOver(lost.message, winner)
}

// finalize - persists the leaderboard and appends the result of a finished game.
func (that *TurnEngine) finalize(ctx context.Context, log *slog.Logger, winner, loser *entity.Player, reason string) {
	if err := that.playerRepo.Upsert(ctx, winner, loser); err != nil {
		log.Error("failed to save players", "error", err)
		that.console.Println(that.text(i18n.StatsSaveError))
	}

	result := entity.NewGameResult(that.state, winner, loser, reason, that.now())
	result.WinnerMessage = that.format(i18n.Winner, i18n.Data{"Name": winner.Name})
	result.LoserMessage = that.format(i18n.PlayerLostSimple, i18n.Data{"Name": loser.Name})

	if err := that.resultRepo.Append(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
		that.console.Println(that.text(i18n.ResultSaveError))
	}
}

func (that *TurnEngine) errorMessage(result wordcheck.CheckResult) string {
	if result.ErrorKey == wordcheck.KeyLettersUnavailable {
		return that.format(string(result.ErrorKey), i18n.Data{"Word": that.state.StartWord})
	}

	return that.text(string(result.ErrorKey))
}

func (that *TurnEngine) lostMessage(player *entity.Player, reason string) string {
	return that.format(i18n.PlayerLost, i18n.Data{"Name": player.Name, "Reason": reason})
}

func (that *TurnEngine) text(id string) string {
	return that.translator.Text(id)
}

func (that *TurnEngine) format(id string, data i18n.Data) string {
	return that.translator.Format(id, data)
}

func (that *TurnEngine) plural(id string, count int) string {
	return that.translator.Plural(id, count)
}
