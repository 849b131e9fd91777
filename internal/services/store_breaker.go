package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
)

var (
	ErrStoreBreakerOpen = errors.New("remote store breaker is open")
)

// rejectedByStore are answers from a healthy store. They never count as breaker failures.
var rejectedByStore = []error{
	context.Canceled,
	repositories.ErrAccountNotFound,
	repositories.ErrAccountExists,
	repositories.ErrTransactionNotFound,
	repositories.ErrGoalNotFound,
	repositories.ErrProfileNotFound,
	models.ErrOwnerRequired,
	models.ErrInvalidAccountType,
	models.ErrAccountNameRequired,
	models.ErrInvalidCurrency,
	models.ErrCreditLimitNotAllowed,
	models.ErrInvalidCreditLimit,
	models.ErrInvalidTransactionType,
	models.ErrInvalidTransactionStatus,
	models.ErrInvalidAmount,
	models.ErrAccountRefRequired,
	models.ErrDescriptionRequired,
	models.ErrTransactionDateRequired,
	models.ErrGoalNameRequired,
	models.ErrInvalidTargetAmount,
	models.ErrInvalidCurrentAmount,
	models.ErrInvalidGoalPriority,
	models.ErrInvalidGoalStatus,
	models.ErrGoalTargetDateMissing,
}

// IsStoreFailure reports whether err means the store itself misbehaved
func IsStoreFailure(err error) bool {
	if err == nil {
		return false
	}
	for _, rejected := range rejectedByStore {
		if errors.Is(err, rejected) {
			return false
		}
	}
	return true
}

// BreakerState is the state of the remote store breaker
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type StoreBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultStoreBreakerConfig() StoreBreakerConfig {
	return StoreBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 2,
	}
}

// StoreBreaker stops dashboard loads and mutations from hammering a remote store that
// keeps failing. While open, loads go straight to sample data and mutations fail fast.
type StoreBreaker struct {
	mu                sync.Mutex
	config            StoreBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	onStateChange     func(oldState, newState BreakerState)
}

func NewStoreBreaker(config StoreBreakerConfig, onStateChange func(oldState, newState BreakerState)) StoreBreakerInterface {
	return &StoreBreaker{
		config:        config,
		state:         BreakerClosed,
		onStateChange: onStateChange,
	}
}

func (cb *StoreBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerOpen && time.Since(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.transition(BreakerHalfOpen)
		return false
	}

	return cb.state == BreakerOpen
}

func (cb *StoreBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.transition(BreakerClosed)
		}
	case BreakerClosed:
		cb.failures = 0
	}
}

func (cb *StoreBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case BreakerHalfOpen:
		cb.transition(BreakerOpen)
	case BreakerClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transition(BreakerOpen)
		}
	}
}

// transition must be called with mu held
func (cb *StoreBreaker) transition(next BreakerState) {
	prev := cb.state
	cb.state = next
	cb.halfOpenSuccesses = 0
	if next == BreakerClosed {
		cb.failures = 0
	}
	if prev != next && cb.onStateChange != nil {
		cb.onStateChange(prev, next)
	}
}

func (cb *StoreBreaker) GetState() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *StoreBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.transition(BreakerClosed)
}

func (cb *StoreBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
