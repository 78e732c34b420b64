package usecase

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/internal/repository"
	"github.com/rocketscienceinc/word-duel/internal/timer"
	"github.com/rocketscienceinc/word-duel/testing/suite"
)

const (
	testTimeout = 100 * time.Millisecond

	// stall - an input step that never arrives, the read only ends with its context.
	stall = "\x00stall"
)

var testStartedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// lateLine - an input step typed after the round deadline.
func lateLine(line string) string {
	return "\x00late:" + line
}

// scriptedConsole - plays back input lines and records everything printed.
type scriptedConsole struct {
	mu     sync.Mutex
	inputs []string
	output strings.Builder
}

func newScriptedConsole(inputs ...string) *scriptedConsole {
	return &scriptedConsole{inputs: inputs}
}

func (that *scriptedConsole) ReadLine(ctx context.Context) (string, error) {
	that.mu.Lock()
	if len(that.inputs) == 0 {
		that.mu.Unlock()
		return "", io.EOF
	}

	step := that.inputs[0]
	that.inputs = that.inputs[1:]
	that.mu.Unlock()

	switch {
	case step == stall:
		<-ctx.Done()
		return "", ctx.Err()
	case strings.HasPrefix(step, "\x00late:"):
		time.Sleep(3 * testTimeout)
		return strings.TrimPrefix(step, "\x00late:"), nil
	default:
		return step, nil
	}
}

func (that *scriptedConsole) WaitForAck(ctx context.Context) error {
	_, err := that.ReadLine(ctx)
	return err
}

func (that *scriptedConsole) Println(text string) {
	that.Print(text + "\n")
}

func (that *scriptedConsole) Print(text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.output.WriteString(text)
}

func (that *scriptedConsole) Clear() {}

func (that *scriptedConsole) Output() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.output.String()
}

func (that *scriptedConsole) Remaining() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.inputs)
}

type mockSessionRepo struct {
	mock.Mock
}

func (that *mockSessionRepo) Save(ctx context.Context, state *entity.GameState) error {
	args := that.Called(ctx, state)
	return args.Error(0)
}

func (that *mockSessionRepo) Load(ctx context.Context) (*entity.GameState, error) {
	args := that.Called(ctx)

	state, _ := args.Get(0).(*entity.GameState)

	return state, args.Error(1)
}

func (that *mockSessionRepo) Delete(ctx context.Context) error {
	args := that.Called(ctx)
	return args.Error(0)
}

// recordingSessionRepo - keeps a copy of every checkpoint on top of the real repository.
type recordingSessionRepo struct {
	repository.SessionRepository

	saved []entity.GameState
}

func (that *recordingSessionRepo) Save(ctx context.Context, state *entity.GameState) error {
	snapshot := *state
	snapshot.UsedWords = state.UsedWords.Clone()
	that.saved = append(that.saved, snapshot)

	return that.SessionRepository.Save(ctx, state)
}

type testEnv struct {
	*suite.Suite

	console  *scriptedConsole
	sessions repository.SessionRepository
	results  repository.ResultRepository
	players  repository.PlayerRepository
	engine   *TurnEngine
}

// sessionWrapper - swaps the session repository the engine talks to.
type sessionWrapper func(real repository.SessionRepository) sessionRepo

func newTestEnv(t *testing.T, console *scriptedConsole, wrap ...sessionWrapper) (context.Context, *testEnv) {
	t.Helper()

	ctx, s := suite.New(t)

	env := &testEnv{
		Suite:    s,
		console:  console,
		sessions: repository.NewSessionRepository(s.Storage),
		results:  repository.NewResultRepository(s.Logger, s.Storage),
		players:  repository.NewPlayerRepository(s.Logger, s.Storage),
	}

	var sessions sessionRepo = env.sessions
	for _, fn := range wrap {
		sessions = fn(env.sessions)
	}

	env.engine = NewTurnEngine(s.Logger, console, sessions, env.results, env.players, timer.New(), Options{
		TurnTimeout: testTimeout,
		Now:         func() time.Time { return testStartedAt },
		NewID:       func() string { return "game-1" },
	})

	return ctx, env
}

// withPlayers - english game between alice and bob.
func (that *testEnv) withPlayers() (*entity.Player, *entity.Player) {
	alice, bob := entity.NewPlayer("alice"), entity.NewPlayer("bob")
	that.engine.SetPlayers(alice, bob)

	return alice, bob
}
