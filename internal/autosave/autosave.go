// Package autosave debounces document writes so a burst of edits produces a
// single persisted save.
package autosave

import (
	"sync"
	"time"

	"github.com/mjordahl/habitgrid/internal/logger"
)

// DefaultDelay is the quiet period after the last mutation before a save
// fires.
const DefaultDelay = time.Second

// Saver runs the most recently triggered save after a quiet period. Each
// Trigger carries its own save closure, evaluated against state the caller
// captured before handing it over, so the timer goroutine never touches the
// live document. A later Trigger supersedes the pending save entirely. Save
// errors are logged, never returned to the mutation path: the in-memory
// document stays the source of truth and a later trigger or explicit export
// can retry.
type Saver struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	pending func() error
	stopped bool

	// saving serializes save execution so a superseded save can never
	// overlap its successor.
	saving sync.Mutex
}

// New returns a Saver with the given debounce delay. A non-positive delay
// falls back to DefaultDelay.
func New(delay time.Duration) *Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Saver{delay: delay}
}

// Trigger (re)starts the debounce countdown with save as the pending write.
// Safe to call from any event handler; the save runs on the timer's
// goroutine.
func (s *Saver) Trigger(save func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.pending = save
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	save := s.pending
	s.pending = nil
	s.mu.Unlock()
	if save == nil {
		return
	}

	s.saving.Lock()
	defer s.saving.Unlock()
	if err := save(); err != nil {
		logger.Warn("autosave failed", "error", err)
	}
}

// Flush cancels the countdown and runs the pending save immediately, if any.
// Returns the save error so shutdown paths can report it.
func (s *Saver) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	save := s.pending
	s.pending = nil
	s.mu.Unlock()

	if save == nil {
		return nil
	}
	s.saving.Lock()
	defer s.saving.Unlock()
	return save()
}

// Stop cancels any pending save and prevents further triggers.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
