package model

import (
	"sync"
	"time"
)

// Clock is a simple count-down timer. The engine has no notion of elapsed
// time; clocks are driven entirely by the listener below reading the turn and
// status off committed moves.
type Clock struct {
	mu          sync.Mutex
	timeLeft    time.Duration
	lastStarted time.Time
	isRunning   bool
}

func NewClock(initialTime time.Duration) *Clock {
	return &Clock{
		timeLeft:  initialTime,
		isRunning: false,
	}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = time.Now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.timeLeft -= time.Since(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) TimeLeft() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.timeLeft - time.Since(c.lastStarted)
	}
	return c.timeLeft
}

// ClockPair is the clock collaborator: a Listener that stops the mover's
// clock and starts the opponent's after each commit, and stops both when the
// game reaches a terminal status. It never enforces anything.
type ClockPair struct {
	white *Clock
	black *Clock
}

func NewClockPair(initialTime time.Duration) *ClockPair {
	return &ClockPair{
		white: NewClock(initialTime),
		black: NewClock(initialTime),
	}
}

func (cp *ClockPair) MoveApplied(move Move, state GameState) {
	cp.clockFor(move.Color).Stop()
	if state.Status == StatusCheckmate || state.Status == StatusStalemate {
		cp.white.Stop()
		cp.black.Stop()
		return
	}
	cp.clockFor(state.CurrentTurn).Start()
}

func (cp *ClockPair) TimeLeft(color Color) time.Duration {
	return cp.clockFor(color).TimeLeft()
}

func (cp *ClockPair) clockFor(color Color) *Clock {
	if color == White {
		return cp.white
	}
	return cp.black
}
