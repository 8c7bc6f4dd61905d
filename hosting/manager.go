// Package hosting runs the console for the Host Server screen: one launch at a time, its recent
// output and its health.
package hosting

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimspell/gladiator-launcher/model"
	"github.com/dimspell/gladiator-launcher/probe"
	"github.com/dimspell/gladiator-launcher/process"
	"github.com/dimspell/gladiator-launcher/sqlitecheck"
)

const (
	CName = "launcher.hosting"

	DefaultCommand     = "dispel-multi"
	DefaultOutputLines = 200

	healthPath = "/_health"
)

var (
	_ app.ComponentRunnable = (*Manager)(nil)

	log = logger.NewNamed(CName)
)

var ErrNotRunning = errors.New("console is not running")

type Config struct {
	// Command is the game executable that provides the console sub-command.
	Command     string
	OutputLines int
	Probe       probe.Config
}

type Manager struct {
	cfg        Config
	launcher   *process.Launcher
	preflight  func(ctx context.Context, path string) error
	newChecker func(addr string) probe.Checker

	mu      sync.Mutex
	current *launch
}

type launch struct {
	id     string
	form   model.HostForm
	args   []string
	proc   *process.Process
	probe  *probe.Probe
	output *lineBuffer
}

func NewManager(cfg Config, launcher *process.Launcher) *Manager {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.OutputLines <= 0 {
		cfg.OutputLines = DefaultOutputLines
	}
	return &Manager{
		cfg:       cfg,
		launcher:  launcher,
		preflight: sqlitecheck.Check,
		newChecker: func(addr string) probe.Checker {
			return probe.NewHTTPChecker("http://" + addr + healthPath)
		},
	}
}

// ConsoleArgs returns the full argument list for the form. The sqlite path is only passed for
// the sqlite database type.
func ConsoleArgs(form model.HostForm) []string {
	args := process.ConsoleArgs(form.BindAddress, form.DatabaseType)
	if form.UsesPath() {
		args = append(args, "--sqlite-path", form.DatabasePath)
	}
	return args
}

// Host validates the form and starts the console. When a console is already running it is left
// alone and its status is returned.
func (m *Manager) Host(ctx context.Context, form model.HostForm) (model.ConsoleStatus, error) {
	if err := form.Validate(); err != nil {
		return model.ConsoleStatus{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && !m.current.exited() {
		log.Warn("console is already running", zap.String("launchId", m.current.id))
		return m.current.status(), nil
	}

	if form.UsesPath() {
		if err := m.preflight(ctx, form.DatabasePath); err != nil {
			return model.ConsoleStatus{}, fmt.Errorf("sqlite database %q: %w", form.DatabasePath, err)
		}
	}

	if m.current != nil {
		m.current.probe.Stop()
	}

	l := &launch{
		id:     uuid.NewString(),
		form:   form,
		args:   ConsoleArgs(form),
		output: newLineBuffer(m.cfg.OutputLines),
	}
	l.probe = probe.New(m.newChecker(probeAddr(form.BindAddress)), m.cfg.Probe, func(s probe.State) {
		log.Info("console health changed", zap.String("launchId", l.id), zap.Stringer("health", s))
	})

	h := process.Handlers{
		OnStdout: func(line string) { l.output.add(model.StreamStdout, line) },
		OnStderr: func(line string) { l.output.add(model.StreamStderr, line) },
		OnExit: func(status process.ExitStatus) {
			l.probe.Stop()
		},
	}

	// The console outlives the request that started it.
	proc, err := m.launcher.Spawn(context.WithoutCancel(ctx), m.cfg.Command, l.args, h)
	if err != nil {
		return model.ConsoleStatus{}, err
	}
	l.proc = proc
	l.probe.Start(context.Background())

	log.Info("console hosted",
		zap.String("launchId", l.id),
		zap.String("bindAddress", form.BindAddress),
		zap.String("databaseType", string(form.DatabaseType)))

	m.current = l
	return l.status(), nil
}

func (m *Manager) Status() model.ConsoleStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return model.ConsoleStatus{State: model.ConsoleNotRunning}
	}
	return m.current.status()
}

// Output returns the most recent lines of the current launch, oldest first.
func (m *Manager) Output() []model.OutputLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	return m.current.output.lines()
}

// Stop kills the running console.
func (m *Manager) Stop() error {
	m.mu.Lock()
	l := m.current
	m.mu.Unlock()

	if l == nil || l.exited() {
		return ErrNotRunning
	}
	log.Info("stopping console", zap.String("launchId", l.id))
	return l.proc.Kill()
}

func (m *Manager) Init(_ *app.App) error {
	log.Info("initializing hosting manager", zap.String("command", m.cfg.Command))
	return nil
}

func (m *Manager) Name() string {
	return CName
}

// Run is a no-op, a console is only started by Host.
func (m *Manager) Run(_ context.Context) error {
	return nil
}

// Close kills a running console and waits for it to exit or for ctx.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	l := m.current
	m.mu.Unlock()

	if l == nil {
		return nil
	}
	l.probe.Stop()
	if l.exited() {
		return nil
	}

	if err := l.proc.Kill(); err != nil {
		log.Warn("failed to kill console on close", zap.Error(err))
	}
	select {
	case <-l.proc.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for console exit: %w", ctx.Err())
	}
}

func (l *launch) exited() bool {
	_, exited := l.proc.ExitStatus()
	return exited
}

func (l *launch) status() model.ConsoleStatus {
	s := model.ConsoleStatus{
		LaunchID:  l.id,
		State:     model.ConsoleRunning,
		Pid:       l.proc.Pid(),
		Args:      append([]string(nil), l.args...),
		Form:      l.form,
		StartedAt: l.proc.StartedAt(),
		Health:    l.probe.State().String(),
	}
	if st, exited := l.proc.ExitStatus(); exited {
		s.State = model.ConsoleExited
		s.ExitCode = st.Code
		s.ExitSignal = st.Signal
	}
	return s
}

// probeAddr maps a wildcard bind address to loopback.
func probeAddr(bind string) string {
	host, port, err := net.SplitHostPort(bind)
	if err != nil {
		return bind
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

type lineBuffer struct {
	mu    sync.Mutex
	limit int
	items []model.OutputLine
	now   func() time.Time
}

func newLineBuffer(limit int) *lineBuffer {
	return &lineBuffer{limit: limit, now: time.Now}
}

func (b *lineBuffer) add(stream model.Stream, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append(b.items, model.OutputLine{At: b.now(), Stream: stream, Text: text})
	if over := len(b.items) - b.limit; over > 0 {
		b.items = append(b.items[:0], b.items[over:]...)
	}
}

func (b *lineBuffer) lines() []model.OutputLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.OutputLine(nil), b.items...)
}
