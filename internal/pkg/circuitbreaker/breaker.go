package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/ledger/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed allows calls through
	StateClosed State = iota
	// StateOpen rejects calls until the open timeout elapses
	StateOpen
	// StateHalfOpen lets a single probe call through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrOpen          = errors.New("circuit breaker is open")
	ErrProbeInFlight = errors.New("circuit breaker probe in flight")
)

// Config holds circuit breaker configuration
type Config struct {
	FailureThreshold int           // consecutive failures that open the circuit
	OpenTimeout      time.Duration // time spent open before probing
	IsFailure        func(err error) bool
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		OpenTimeout:      60 * time.Second,
	}
}

// CircuitBreaker stops calling a dependency after repeated failures
type CircuitBreaker struct {
	name   string
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// New creates a closed circuit breaker
func New(name string, config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = DefaultConfig().FailureThreshold
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}
	return &CircuitBreaker{name: name, config: config, logger: l, now: time.Now}
}

// Execute runs fn unless the circuit is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.after(err)
	return err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.config.OpenTimeout {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			return ErrProbeInFlight
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
	if !cb.config.IsFailure(err) {
		cb.failures = 0
		cb.setState(StateClosed)
		return
	}

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
		cb.openedAt = cb.now()
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.name),
		logger.String("from", cb.state.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", cb.failures))
	cb.state = state
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Manager keeps one breaker per name, e.g. per webhook host
type Manager struct {
	config Config
	logger *logger.ZapLogger

	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
}

// NewManager creates a manager whose breakers share config
func NewManager(config Config, l *logger.ZapLogger) *Manager {
	return &Manager{config: config, logger: l, breakers: make(map[string]*CircuitBreaker)}
}

// Get returns the breaker for name, creating it on first use
func (m *Manager) Get(name string) *CircuitBreaker {
	m.mu.Lock()
	defer m.mu.Unlock()

	cb, ok := m.breakers[name]
	if !ok {
		cb = New(name, m.config, m.logger)
		m.breakers[name] = cb
	}
	return cb
}

// Execute runs fn through the breaker for name
func (m *Manager) Execute(ctx context.Context, name string, fn func(context.Context) error) error {
	return m.Get(name).Execute(ctx, fn)
}

// States reports the state of every known breaker
func (m *Manager) States() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.breakers))
	for name, cb := range m.breakers {
		out[name] = cb.State().String()
	}
	return out
}
