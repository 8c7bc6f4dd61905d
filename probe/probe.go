// Package probe checks whether a console answers: the one-off handshake used by the Join screen
// and the startup and liveness probe of a hosted console.
package probe

import (
	"context"
	"sync"
	"time"

	"github.com/anyproto/any-sync/app/logger"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const (
	CName = "launcher.probe"

	// DefaultTimeout bounds a single check.
	DefaultTimeout = 3 * time.Second
)

var log = logger.NewNamed(CName)

type State int32

const (
	StateNotRunning State = iota
	StateStarting
	StateFailingToStart
	StateRunning
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateNotRunning:
		return "not-running"
	case StateStarting:
		return "starting"
	case StateFailingToStart:
		return "failing-to-start"
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

type Config struct {
	// InitialDelay gives the process time to bind before the first check.
	InitialDelay   time.Duration
	StartupTimeout time.Duration
	Interval       time.Duration
}

func DefaultConfig() Config {
	return Config{
		InitialDelay:   200 * time.Millisecond,
		StartupTimeout: 10 * time.Second,
		Interval:       5 * time.Second,
	}
}

// Probe runs a startup check retried with backoff, then periodic liveness checks until the
// first failure or Stop.
type Probe struct {
	checker  Checker
	cfg      Config
	onChange func(State)

	mu      sync.Mutex
	state   State
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New returns an idle probe. onChange, if set, is called from the probe goroutine on every
// state transition.
func New(checker Checker, cfg Config, onChange func(State)) *Probe {
	return &Probe{
		checker:  checker,
		cfg:      cfg,
		onChange: onChange,
		state:    StateNotRunning,
	}
}

func (p *Probe) State() State {
	if p == nil {
		return StateNotRunning
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start launches the probe goroutine. A probe runs at most once, Start after Start or Stop is a
// no-op.
func (p *Probe) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done != nil || p.stopped {
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx, p.done)
}

// Stop ends the probe and waits for its goroutine.
func (p *Probe) Stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Probe) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	p.signal(StateStarting)

	select {
	case <-ctx.Done():
		p.signal(StateClosing)
		return
	case <-time.After(p.cfg.InitialDelay):
	}

	if err := p.startup(ctx); err != nil {
		if ctx.Err() != nil {
			p.signal(StateClosing)
			return
		}
		log.Warn("startup probe failed", zap.Error(err))
		p.signal(StateFailingToStart)
		return
	}
	p.signal(StateRunning)

	ticker := backoff.NewTicker(backoff.NewConstantBackOff(p.cfg.Interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.signal(StateClosing)
			return
		case <-ticker.C:
			if err := p.check(ctx); err != nil {
				if ctx.Err() != nil {
					p.signal(StateClosing)
					return
				}
				log.Warn("liveness probe failed", zap.Error(err))
				p.signal(StateNotRunning)
				return
			}
		}
	}
}

func (p *Probe) startup(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = p.cfg.StartupTimeout

	return backoff.RetryNotify(
		func() error { return p.check(ctx) },
		backoff.WithContext(b, ctx),
		func(err error, d time.Duration) {
			log.Debug("retrying startup probe", zap.Duration("in", d), zap.Error(err))
		},
	)
}

func (p *Probe) check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	return p.checker.Check(ctx)
}

func (p *Probe) signal(s State) {
	p.mu.Lock()
	if p.state == s {
		p.mu.Unlock()
		return
	}
	p.state = s
	p.mu.Unlock()

	log.Debug("probe state changed", zap.Stringer("state", s))
	if p.onChange != nil {
		p.onChange(s)
	}
}
