// Package process spawns the external console executable and watches its lifecycle:
// output streams are forwarded line by line, the exit is reported once, and a kill is
// issued after a fixed delay regardless of whether the process is still alive.
package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dimspell/gladiator-launcher/model"
)

const (
	CName = "launcher.process"

	// DefaultKillAfter is the delay between spawn and the unconditional kill.
	DefaultKillAfter = 3 * time.Second

	// CommandConsole is the sub-command of the game executable that runs the console server.
	CommandConsole = "console"

	maxLineSize = 1024 * 1024

	// exitDrainTimeout bounds how long the exit report waits for the output streams to end.
	exitDrainTimeout = time.Second
)

var log = logger.NewNamed(CName)

// ConsoleArgs builds the argument list of the console process. Values are passed through as is.
func ConsoleArgs(consoleAddr string, dbType model.DatabaseType) []string {
	return []string{
		CommandConsole,
		"--console-addr", consoleAddr,
		"--database-type", string(dbType),
	}
}

// Handlers receive lifecycle notifications. Any of them may be nil.
// OnStdout and OnStderr can be called concurrently with each other.
type Handlers struct {
	OnStdout func(line string)
	OnStderr func(line string)
	OnExit   func(status ExitStatus)
}

type Launcher struct {
	executor  Executor
	killAfter time.Duration
	afterFunc func(time.Duration, func())
	log       *zap.Logger
}

// New returns a Launcher. A non-positive killAfter disables the delayed kill.
func New(executor Executor, killAfter time.Duration) *Launcher {
	return &Launcher{
		executor:  executor,
		killAfter: killAfter,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		log:       log.Logger,
	}
}

func (l *Launcher) KillAfter() time.Duration {
	return l.killAfter
}

// Spawn starts the process and returns immediately. Spawn failures are logged and returned.
func (l *Launcher) Spawn(ctx context.Context, name string, args []string, h Handlers) (*Process, error) {
	plog := l.log.With(zap.String("command", name), zap.Strings("args", args))

	child, err := l.executor.Start(ctx, name, args)
	if err != nil {
		plog.Error("failed to spawn process", zap.Error(err))
		return nil, fmt.Errorf("spawn %s: %w", name, err)
	}

	p := &Process{
		name:      name,
		args:      append([]string(nil), args...),
		child:     child,
		startedAt: time.Now(),
		done:      make(chan struct{}),
		log:       plog.With(zap.Int("pid", child.Pid())),
	}
	p.log.Info("process spawned")

	if l.killAfter > 0 {
		// Never stopped: the kill is issued even when the process has already exited.
		l.afterFunc(l.killAfter, func() {
			_ = p.kill("delayed")
		})
	}

	go p.watch(h)
	return p, nil
}

// Process is a spawned child process.
type Process struct {
	name      string
	args      []string
	child     Child
	startedAt time.Time
	done      chan struct{}
	log       *zap.Logger

	mu     sync.Mutex
	status ExitStatus
	exited bool
}

func (p *Process) Pid() int             { return p.child.Pid() }
func (p *Process) Name() string         { return p.name }
func (p *Process) Args() []string       { return append([]string(nil), p.args...) }
func (p *Process) StartedAt() time.Time { return p.startedAt }

// Done is closed after the exit has been reported.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitStatus returns the exit status and whether the process has exited.
func (p *Process) ExitStatus() (ExitStatus, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.exited
}

// Kill sends a kill to the process and logs the result of the call.
func (p *Process) Kill() error {
	return p.kill("manual")
}

func (p *Process) kill(reason string) error {
	err := p.child.Kill()
	if err != nil {
		p.log.Info("kill call returned error", zap.String("reason", reason), zap.Error(err))
		return err
	}
	p.log.Info("kill signal sent", zap.String("reason", reason))
	return nil
}

func (p *Process) watch(h Handlers) {
	defer close(p.done)

	streams := make(chan struct{})
	go func() {
		defer close(streams)

		var g errgroup.Group
		g.Go(func() error {
			return p.forwardLines(p.child.Stdout(), model.StreamStdout, h.OnStdout)
		})
		g.Go(func() error {
			return p.forwardLines(p.child.Stderr(), model.StreamStderr, h.OnStderr)
		})
		if err := g.Wait(); err != nil {
			p.log.Warn("output stream failed", zap.Error(err))
		}
	}()

	status, err := p.child.Wait()
	if err != nil {
		p.log.Error("failed to wait for process", zap.Error(err))
	}

	// A grandchild that inherited the output can keep it open long after the exit.
	select {
	case <-streams:
	case <-time.After(exitDrainTimeout):
		p.log.Warn("output still open after exit", zap.Duration("waited", exitDrainTimeout))
	}

	p.mu.Lock()
	p.status = status
	p.exited = true
	p.mu.Unlock()

	fields := []zap.Field{
		zap.Int("code", status.Code),
		zap.String("signal", status.Signal),
		zap.Duration("uptime", time.Since(p.startedAt)),
	}
	if status.Success() {
		p.log.Info("process exited", fields...)
	} else {
		p.log.Warn("process exited", fields...)
	}

	if h.OnExit != nil {
		h.OnExit(status)
	}
}

func (p *Process) forwardLines(r io.Reader, stream model.Stream, fn func(string)) error {
	if r == nil {
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		p.log.Info("output", zap.String("stream", string(stream)), zap.String("line", line))
		if fn != nil {
			fn(line)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, os.ErrClosed) {
			return nil
		}
		// Keep draining, an unread pipe blocks the child.
		_, _ = io.Copy(io.Discard, r)
		return fmt.Errorf("%s: %w", stream, err)
	}
	return nil
}
