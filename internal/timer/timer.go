package timer

import (
	"sync"
	"time"
)

type State int

const (
	Idle State = iota
	Running
	Stopped
	Fired
)

func (that State) String() string {
	switch that {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Fired:
		return "fired"
	default:
		return "unknown"
	}
}

// RoundTimer - single-slot one-shot countdown.
//
// A handler runs at most once per Start and never after a Stop that returned
// true. Restarting supersedes the previous countdown.
type RoundTimer struct {
	mu         sync.Mutex
	state      State
	generation uint64
	timer      *time.Timer
}

func New() *RoundTimer {
	return &RoundTimer{}
}

func (that *RoundTimer) Start(duration time.Duration, onExpired func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.timer != nil {
		that.timer.Stop()
	}

	that.generation++
	generation := that.generation
	that.state = Running

	that.timer = time.AfterFunc(duration, func() {
		that.fire(generation, onExpired)
	})
}

// Stop - cancels the pending countdown, reports whether it prevented a firing.
// After a Start, false means the countdown fired and its handler has run or is
// about to run.
func (that *RoundTimer) Stop() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != Running {
		return false
	}

	that.state = Stopped
	that.timer.Stop()
	that.timer = nil

	return true
}

func (that *RoundTimer) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *RoundTimer) fire(generation uint64, onExpired func()) {
	that.mu.Lock()
	if that.state != Running || that.generation != generation {
		that.mu.Unlock()
		return
	}
	that.state = Fired
	that.timer = nil
	that.mu.Unlock()

	if onExpired != nil {
		onExpired()
	}
}
