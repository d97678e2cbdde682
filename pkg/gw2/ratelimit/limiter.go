// Package ratelimit provides the admission gate bounding requests per
// rolling 60-second window. The limiter is an independent primitive: the
// client consults it immediately before dispatch when one is configured,
// and integrators may use it standalone.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Window is the length of one admission window.
const Window = time.Minute

type state int

const (
	// stateReady tracks an open window with remaining budget.
	stateReady state = iota

	// stateLimited means the current window is exhausted and admission is
	// suspended until the window boundary.
	stateLimited
)

// Limiter bounds admissions per rolling window. The zero value is not
// usable; create one with New.
//
// Admission is granted while the remaining budget exceeds one: each window
// deliberately reserves a single slot of headroom against boundary races
// with the upstream's own window accounting.
type Limiter struct {
	mu        sync.Mutex
	limit     int
	st        state
	until     time.Time
	remaining int

	now func() time.Time
}

// New creates a limiter admitting up to limit-1 requests per window.
func New(limit int) *Limiter {
	l := &Limiter{
		limit: limit,
		st:    stateReady,
		now:   time.Now,
	}
	l.until = l.now()
	l.remaining = limit

	return l
}

// Change updates the configured limit. The new limit takes effect at the
// next window rollover, not retroactively within the current window.
func (l *Limiter) Change(limit int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limit = limit
}

// Limit returns the configured per-window limit.
func (l *Limiter) Limit() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.limit
}

// TryAcquire attempts admission without blocking. It reports whether the
// request was admitted; a false result leaves the limiter in the Limited
// state until the window boundary.
func (l *Limiter) TryAcquire() bool {
	admitted, _ := l.poll()

	return admitted
}

// Acquire blocks until the request is admitted or the context is done.
// Suspension is cooperative: the caller's goroutine parks on a deadline
// timer armed for the window boundary.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		admitted, deadline := l.poll()
		if admitted {
			return nil
		}

		timer := time.NewTimer(deadline.Sub(l.now()))
		select {
		case <-ctx.Done():
			timer.Stop()

			return ctx.Err()
		case <-timer.C:
		}
	}
}

// poll advances the admission state machine once. It returns whether the
// caller was admitted and, if not, the deadline to wait for.
func (l *Limiter) poll() (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	switch l.st {
	case stateReady:
		if !now.Before(l.until) {
			l.until = now.Add(Window)
			l.remaining = l.limit
		}

		if l.remaining > 1 {
			l.remaining--

			return true, time.Time{}
		}

		l.st = stateLimited

		return false, l.until
	default: // stateLimited
		if now.Before(l.until) {
			return false, l.until
		}

		l.until = now.Add(Window)
		l.remaining = l.limit - 1
		l.st = stateReady

		return true, time.Time{}
	}
}
