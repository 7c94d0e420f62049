package infra

import (
	"errors"
	"sync"
	"time"
)

// CircuitBreaker guards the outbound SMTP relay. When the relay is down every
// report/welcome email would block a worker for the full connection timeout,
// so after enough consecutive failures sends fast-fail and the jobs land in
// the DLQ until the cooldown passes.
//
// Closed: sends flow. Open: fast-fail. Half-open: one probe send allowed;
// success closes the breaker, failure re-opens it.

type CBState string

const (
	CBClosed   CBState = "closed"
	CBOpen     CBState = "open"
	CBHalfOpen CBState = "half-open"
)

func (s CBState) String() string { return string(s) }

// ErrCircuitOpen is returned by Execute while the breaker is open.
var ErrCircuitOpen = errors.New("smtp circuit open")

type CircuitBreaker struct {
	mu          sync.Mutex
	state       CBState
	failures    int
	maxFailures int
	cooldown    time.Duration
	openedAt    time.Time
}

// NewCircuitBreaker trips open after maxFailures consecutive failures and
// allows a probe once cooldown has elapsed.
func NewCircuitBreaker(maxFailures int, cooldown time.Duration) *CircuitBreaker {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	return &CircuitBreaker{state: CBClosed, maxFailures: maxFailures, cooldown: cooldown}
}

// State reports the current state; used by the health endpoint.
func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.refresh()
	return cb.state
}

// refresh moves open → half-open once the cooldown has elapsed.
// Must be called under cb.mu.
func (cb *CircuitBreaker) refresh() {
	if cb.state == CBOpen && time.Since(cb.openedAt) >= cb.cooldown {
		cb.state = CBHalfOpen
	}
}

// Execute runs fn unless the breaker is open, and records the outcome.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	cb.refresh()
	if cb.state == CBOpen {
		cb.mu.Unlock()
		return ErrCircuitOpen
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.failures++
		if cb.state == CBHalfOpen || cb.failures >= cb.maxFailures {
			cb.state = CBOpen
			cb.openedAt = time.Now()
			cb.failures = 0
		}
		return err
	}
	cb.state = CBClosed
	cb.failures = 0
	return nil
}
