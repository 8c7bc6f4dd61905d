//go:generate go tool moq -fmt gofumpt -rm -out executor_moq_test.go . Executor Child

package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// pipeCloseDelay is how long output is still read after the child exits. Processes the child
// started inherit the pipes and would otherwise keep them open.
const pipeCloseDelay = 500 * time.Millisecond

// Executor is the host capability that starts child processes.
type Executor interface {
	Start(ctx context.Context, name string, args []string) (Child, error)
}

// Child is a started process with both output streams piped.
// Stdout and Stderr are read concurrently with Wait.
type Child interface {
	Pid() int
	Stdout() io.Reader
	Stderr() io.Reader
	Wait() (ExitStatus, error)
	Kill() error
}

// ExitStatus is how a child process ended. Code is -1 when it was terminated by a signal.
type ExitStatus struct {
	Code   int
	Signal string
}

func (s ExitStatus) Success() bool {
	return s.Code == 0 && s.Signal == ""
}

func (s ExitStatus) String() string {
	if s.Signal != "" {
		return "signal: " + s.Signal
	}
	return fmt.Sprintf("exit code %d", s.Code)
}

type execExecutor struct{}

// NewExecExecutor returns an Executor backed by os/exec.
// Cancelling the context passed to Start kills the child.
func NewExecExecutor() Executor {
	return execExecutor{}
}

func (execExecutor) Start(ctx context.Context, name string, args []string) (Child, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closeFiles(stdoutR, stdoutW)
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	err = cmd.Start()
	// The child holds its own copies of the write ends.
	closeFiles(stdoutW, stderrW)
	if err != nil {
		closeFiles(stdoutR, stderrR)
		return nil, fmt.Errorf("start: %w", err)
	}

	return &execChild{cmd: cmd, stdout: stdoutR, stderr: stderrR}, nil
}

type execChild struct {
	cmd    *exec.Cmd
	stdout *os.File
	stderr *os.File
}

func (c *execChild) Pid() int          { return c.cmd.Process.Pid }
func (c *execChild) Stdout() io.Reader { return c.stdout }
func (c *execChild) Stderr() io.Reader { return c.stderr }

func (c *execChild) Wait() (ExitStatus, error) {
	err := c.cmd.Wait()
	status := exitStatusFromState(c.cmd.ProcessState)

	time.AfterFunc(pipeCloseDelay, func() {
		closeFiles(c.stdout, c.stderr)
	})

	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		// Non-zero exit is a result, not an error.
		return status, nil
	}
	return status, err
}

func (c *execChild) Kill() error {
	return c.cmd.Process.Kill()
}

func closeFiles(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

func exitStatusFromState(state *os.ProcessState) ExitStatus {
	if state == nil {
		return ExitStatus{Code: -1}
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ExitStatus{Code: -1, Signal: ws.Signal().String()}
	}
	return ExitStatus{Code: state.ExitCode()}
}
