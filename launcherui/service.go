//go:generate go tool moq -fmt gofumpt -rm -out service_moq_test.go . HostingService ConnectionService Joiner

package launcherui

import (
	"context"

	"github.com/dimspell/gladiator-launcher/model"
)

// HostingService runs the hosted console.
type HostingService interface {
	Host(ctx context.Context, form model.HostForm) (model.ConsoleStatus, error)
	Status() model.ConsoleStatus
	Output() []model.OutputLine
	Stop() error
}

// ConnectionService keeps the saved connections of the Home screen.
type ConnectionService interface {
	Put(c model.SavedConnection) error
	List() ([]model.SavedConnection, error)
}

// Joiner checks that a console answers before it is joined.
type Joiner interface {
	Handshake(ctx context.Context, addr string) (model.WellKnown, error)
}

type JoinerFunc func(ctx context.Context, addr string) (model.WellKnown, error)

func (f JoinerFunc) Handshake(ctx context.Context, addr string) (model.WellKnown, error) {
	return f(ctx, addr)
}
