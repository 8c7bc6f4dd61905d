package hosting

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimspell/gladiator-launcher/model"
	"github.com/dimspell/gladiator-launcher/probe"
	"github.com/dimspell/gladiator-launcher/process"
)

type fakeChild struct {
	pid    int
	stdout string
	stderr string
	exit   chan process.ExitStatus
	killed atomic.Int32
}

func newFakeChild(pid int, stdout, stderr string) *fakeChild {
	return &fakeChild{pid: pid, stdout: stdout, stderr: stderr, exit: make(chan process.ExitStatus, 1)}
}

func (c *fakeChild) Pid() int          { return c.pid }
func (c *fakeChild) Stdout() io.Reader { return strings.NewReader(c.stdout) }
func (c *fakeChild) Stderr() io.Reader { return strings.NewReader(c.stderr) }

func (c *fakeChild) Wait() (process.ExitStatus, error) {
	return <-c.exit, nil
}

func (c *fakeChild) Kill() error {
	if c.killed.Add(1) > 1 {
		return os.ErrProcessDone
	}
	c.exit <- process.ExitStatus{Code: -1, Signal: "killed"}
	return nil
}

type fakeExecutor struct {
	mu       sync.Mutex
	children []*fakeChild
	starts   [][]string
	err      error
}

func (e *fakeExecutor) Start(_ context.Context, name string, args []string) (process.Child, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.err != nil {
		return nil, e.err
	}
	child := newFakeChild(1000+len(e.children), "console listening\nready\n", "warn: no players\n")
	e.children = append(e.children, child)
	e.starts = append(e.starts, append([]string{name}, args...))
	return child, nil
}

func (e *fakeExecutor) startCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.starts)
}

func (e *fakeExecutor) lastChild() *fakeChild {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.children[len(e.children)-1]
}

type testFixture struct {
	manager    *Manager
	executor   *fakeExecutor
	preflights []string
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	fx := &testFixture{executor: &fakeExecutor{}}
	fx.manager = NewManager(Config{
		Command: "dispel-multi",
		Probe: probe.Config{
			InitialDelay:   time.Millisecond,
			StartupTimeout: 50 * time.Millisecond,
			Interval:       10 * time.Millisecond,
		},
	}, process.New(fx.executor, 0))
	fx.manager.preflight = func(_ context.Context, path string) error {
		fx.preflights = append(fx.preflights, path)
		return nil
	}
	fx.manager.newChecker = func(string) probe.Checker {
		return probe.CheckerFunc(func(context.Context) error { return nil })
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, fx.manager.Close(ctx))
	})
	return fx
}

func TestConsoleArgs(t *testing.T) {
	tests := []struct {
		name string
		form model.HostForm
		want []string
	}{
		{
			name: "memory",
			form: model.DefaultHostForm(),
			want: []string{"console", "--console-addr", "0.0.0.0:2137", "--database-type", "memory"},
		},
		{
			name: "sqlite",
			form: model.HostForm{BindAddress: "127.0.0.1:6000", DatabaseType: model.DatabaseSQLite, DatabasePath: "/tmp/db.sqlite"},
			want: []string{
				"console", "--console-addr", "127.0.0.1:6000", "--database-type", "sqlite",
				"--sqlite-path", "/tmp/db.sqlite",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsoleArgs(tt.form))
		})
	}
}

func TestProbeAddr(t *testing.T) {
	tests := []struct {
		bind string
		want string
	}{
		{bind: "0.0.0.0:2137", want: "127.0.0.1:2137"},
		{bind: ":2137", want: "127.0.0.1:2137"},
		{bind: "[::]:2137", want: "127.0.0.1:2137"},
		{bind: "192.168.1.10:2137", want: "192.168.1.10:2137"},
		{bind: "localhost:2137", want: "localhost:2137"},
	}

	for _, tt := range tests {
		t.Run(tt.bind, func(t *testing.T) {
			assert.Equal(t, tt.want, probeAddr(tt.bind))
		})
	}
}

func TestManagerHost(t *testing.T) {
	fx := newTestFixture(t)

	assert.Equal(t, model.ConsoleNotRunning, fx.manager.Status().State)
	assert.Nil(t, fx.manager.Output())

	status, err := fx.manager.Host(context.Background(), model.DefaultHostForm())
	require.NoError(t, err)
	assert.Equal(t, model.ConsoleRunning, status.State)
	assert.Equal(t, 1000, status.Pid)
	assert.Equal(t, ConsoleArgs(model.DefaultHostForm()), status.Args)
	_, err = uuid.Parse(status.LaunchID)
	assert.NoError(t, err)
	assert.Empty(t, fx.preflights)

	require.Eventually(t, func() bool {
		return len(fx.manager.Output()) == 3
	}, 5*time.Second, 10*time.Millisecond)

	var stdout, stderr []string
	for _, line := range fx.manager.Output() {
		switch line.Stream {
		case model.StreamStdout:
			stdout = append(stdout, line.Text)
		case model.StreamStderr:
			stderr = append(stderr, line.Text)
		}
	}
	assert.Equal(t, []string{"console listening", "ready"}, stdout)
	assert.Equal(t, []string{"warn: no players"}, stderr)

	require.Eventually(t, func() bool {
		return fx.manager.Status().Health == probe.StateRunning.String()
	}, 5*time.Second, 10*time.Millisecond)

	t.Run("second host keeps the running console", func(t *testing.T) {
		again, err := fx.manager.Host(context.Background(), model.HostForm{
			BindAddress:  "0.0.0.0:6000",
			DatabaseType: model.DatabaseMemory,
		})
		require.NoError(t, err)
		assert.Equal(t, status.LaunchID, again.LaunchID)
		assert.Equal(t, 1, fx.executor.startCount())
	})

	t.Run("stop", func(t *testing.T) {
		require.NoError(t, fx.manager.Stop())

		require.Eventually(t, func() bool {
			return fx.manager.Status().State == model.ConsoleExited
		}, 5*time.Second, 10*time.Millisecond)

		st := fx.manager.Status()
		assert.Equal(t, -1, st.ExitCode)
		assert.Equal(t, "killed", st.ExitSignal)
		assert.ErrorIs(t, fx.manager.Stop(), ErrNotRunning)
	})

	t.Run("host after exit starts a new launch", func(t *testing.T) {
		next, err := fx.manager.Host(context.Background(), model.DefaultHostForm())
		require.NoError(t, err)
		assert.NotEqual(t, status.LaunchID, next.LaunchID)
		assert.Equal(t, 2, fx.executor.startCount())
	})
}

func TestManagerHostSQLite(t *testing.T) {
	fx := newTestFixture(t)

	form := model.HostForm{BindAddress: "0.0.0.0:2137", DatabaseType: model.DatabaseSQLite, DatabasePath: "./db.sqlite"}
	status, err := fx.manager.Host(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, []string{"./db.sqlite"}, fx.preflights)
	assert.Equal(t, []string{"--sqlite-path", "./db.sqlite"}, status.Args[5:])
}

func TestManagerHostErrors(t *testing.T) {
	t.Run("invalid form", func(t *testing.T) {
		fx := newTestFixture(t)

		_, err := fx.manager.Host(context.Background(), model.HostForm{BindAddress: "nope", DatabaseType: model.DatabaseMemory})
		assert.ErrorIs(t, err, model.ErrInvalidAddress)
		assert.Zero(t, fx.executor.startCount())
	})

	t.Run("preflight failure", func(t *testing.T) {
		fx := newTestFixture(t)
		fx.manager.preflight = func(context.Context, string) error { return errors.New("disk I/O error") }

		_, err := fx.manager.Host(context.Background(), model.HostForm{
			BindAddress:  "0.0.0.0:2137",
			DatabaseType: model.DatabaseSQLite,
			DatabasePath: "./db.sqlite",
		})
		assert.ErrorContains(t, err, "disk I/O error")
		assert.Zero(t, fx.executor.startCount())
	})

	t.Run("spawn failure", func(t *testing.T) {
		fx := newTestFixture(t)
		fx.executor.err = errors.New("executable file not found in $PATH")

		_, err := fx.manager.Host(context.Background(), model.DefaultHostForm())
		assert.ErrorContains(t, err, "executable file not found")
		assert.Equal(t, model.ConsoleNotRunning, fx.manager.Status().State)
	})
}

func TestManagerClose(t *testing.T) {
	fx := newTestFixture(t)

	_, err := fx.manager.Host(context.Background(), model.DefaultHostForm())
	require.NoError(t, err)

	require.NoError(t, fx.manager.Close(context.Background()))
	assert.Equal(t, model.ConsoleExited, fx.manager.Status().State)
	assert.Equal(t, int32(1), fx.executor.lastChild().killed.Load())
}

func TestLineBuffer(t *testing.T) {
	b := newLineBuffer(3)
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		b.add(model.StreamStdout, text)
	}

	lines := b.lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "c", lines[0].Text)
	assert.Equal(t, "e", lines[2].Text)
}
