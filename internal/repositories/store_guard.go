package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrStoreUnavailable marks a transport-level failure of the ledger store.
	ErrStoreUnavailable = errors.New("ledger store unavailable")
	ErrCircuitOpen      = errors.New("circuit breaker is open")

	// ErrConstraintViolation marks a write the store refused on an integrity
	// constraint, such as a reference to a row deleted concurrently.
	ErrConstraintViolation = errors.New("ledger store rejected the write")
)

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type StoreGuardConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultStoreGuardConfig() StoreGuardConfig {
	return StoreGuardConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// StoreGuard is a circuit breaker in front of the persisted store. Transport
// failures come back wrapped in ErrStoreUnavailable and count towards opening
// it; while open, calls fail fast without touching the database. Missing rows,
// constraint violations and cancelled requests never trip the breaker.
type StoreGuard struct {
	mu                sync.Mutex
	config            StoreGuardConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewStoreGuard(config StoreGuardConfig) *StoreGuard {
	return &StoreGuard{
		config: config,
		state:  StateClosed,
	}
}

// Run executes fn against the store, classifying its error.
func (g *StoreGuard) Run(op string, fn func() error) error {
	if g.isOpen() {
		return fmt.Errorf("failed to %s: %w: %w", op, ErrStoreUnavailable, ErrCircuitOpen)
	}

	err := fn()
	switch {
	case err == nil, isAnswer(err):
		g.recordSuccess()
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case isConstraintViolation(err):
		g.recordSuccess()
		return fmt.Errorf("failed to %s: %w: %w", op, ErrConstraintViolation, err)
	case isTransportFailure(err):
		g.recordFailure()
		return fmt.Errorf("failed to %s: %w: %w", op, ErrStoreUnavailable, err)
	default:
		return err
	}
}

func isAnswer(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrRecordNotFound)
}

// isConstraintViolation matches SQLSTATE class 23 and the errors gorm
// translates it into.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23")
}

// isTransportFailure matches connection loss, network errors and the server
// states that refuse work: SQLSTATE classes 08 (connection exception), 53
// (insufficient resources) and 57P (operator intervention).
func isTransportFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") ||
			strings.HasPrefix(pgErr.Code, "53") ||
			strings.HasPrefix(pgErr.Code, "57P")
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func (g *StoreGuard) isOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateOpen && time.Since(g.lastFailureTime) > g.config.ResetTimeout {
		g.setState(StateHalfOpen)
		g.halfOpenSuccesses = 0
		return false
	}

	return g.state == StateOpen
}

func (g *StoreGuard) recordSuccess() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateHalfOpen:
		g.halfOpenSuccesses++
		if g.halfOpenSuccesses >= g.config.HalfOpenMaxSucc {
			g.setState(StateClosed)
			g.failures = 0
			g.halfOpenSuccesses = 0
		}
	case StateClosed:
		g.failures = 0
	}
}

func (g *StoreGuard) recordFailure() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastFailureTime = time.Now()

	switch g.state {
	case StateHalfOpen:
		g.setState(StateOpen)
		g.halfOpenSuccesses = 0
	case StateClosed:
		g.failures++
		if g.failures >= g.config.MaxFailures {
			g.setState(StateOpen)
		}
	}
}

// setState must be called with mu held.
func (g *StoreGuard) setState(next BreakerState) {
	if g.state == next {
		return
	}
	slog.Warn("Ledger store circuit breaker state change",
		"from", g.state.String(),
		"to", next.String(),
		"failures", g.failures,
	)
	g.state = next
}

func (g *StoreGuard) State() BreakerState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *StoreGuard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = StateClosed
	g.failures = 0
	g.halfOpenSuccesses = 0
}
