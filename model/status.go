package model

import (
	"time"
)

// ConsoleState is the lifecycle state of the hosted console as seen by the launcher.
type ConsoleState string

const (
	ConsoleNotRunning ConsoleState = "not-running"
	ConsoleRunning    ConsoleState = "running"
	ConsoleExited     ConsoleState = "exited"
)

// Stream names an output stream of the console process.
type Stream string

const (
	StreamStdout Stream = "stdout"
	StreamStderr Stream = "stderr"
)

// OutputLine is one line captured from the console process.
type OutputLine struct {
	At     time.Time
	Stream Stream
	Text   string
}

// ConsoleStatus is what the admin overview shows about the hosted console.
type ConsoleStatus struct {
	LaunchID   string
	State      ConsoleState
	Pid        int
	Args       []string
	Form       HostForm
	StartedAt  time.Time
	ExitCode   int
	ExitSignal string
	Health     string
}

func (s ConsoleStatus) Running() bool {
	return s.State == ConsoleRunning
}

// WellKnown is the document a console serves at /.well-known/dispel-multi.json.
type WellKnown struct {
	Version  string `json:"version"`
	Protocol string `json:"protocol"`
	Addr     string `json:"addr"`
	RunMode  string `json:"runMode"`
}
