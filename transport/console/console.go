package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const clearSequence = "\033[H\033[2J"

// Console - line oriented terminal. Input is read by one background goroutine
// so a pending ReadLine can be abandoned through its context.
type Console struct {
	logger *slog.Logger

	in          io.Reader
	out         io.Writer
	clearScreen bool

	startOnce sync.Once
	lines     chan string
	readErr   error

	writeMu sync.Mutex
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, clearScreen bool) *Console {
	return &Console{
		logger:      logger.With("component", "console"),
		in:          in,
		out:         out,
		clearScreen: clearScreen,
		lines:       make(chan string),
	}
}

// ReadLine - blocks until a line arrives, input ends or ctx is done.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", that.readErr
		}

		return strings.TrimRight(line, "\r"), nil
	}
}

// WaitForAck - reads and discards one line.
func (that *Console) WaitForAck(ctx context.Context) error {
	_, err := that.ReadLine(ctx)

	return err
}

func (that *Console) Println(text string) {
	that.write(text + "\n")
}

func (that *Console) Print(text string) {
	that.write(text)
}

func (that *Console) Clear() {
	if that.clearScreen {
		that.write(clearSequence)
	}
}

func (that *Console) write(text string) {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if _, err := fmt.Fprint(that.out, text); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}

func (that *Console) readLoop() {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- scanner.Text()
	}

	that.readErr = scanner.Err()
	if that.readErr == nil {
		that.readErr = io.EOF
	}

	that.logger.Debug("input closed", "error", that.readErr)
	close(that.lines)
}
