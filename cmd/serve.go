package cmd

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dimspell/gladiator-launcher/config"
	"github.com/dimspell/gladiator-launcher/connstore"
	"github.com/dimspell/gladiator-launcher/hosting"
	"github.com/dimspell/gladiator-launcher/launcherui"
	"github.com/dimspell/gladiator-launcher/model"
	"github.com/dimspell/gladiator-launcher/probe"
	"github.com/dimspell/gladiator-launcher/process"
)

const (
	flagServeListen = "listen"

	closeTimeout = 30 * time.Second
)

func cmdServe(ctx context.Context) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the launcher UI server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagServeListen,
				Usage:   "Address of the launcher UI, overrides listenAddr from the config",
				EnvVars: []string{"GLADIATOR_LAUNCHER_LISTEN"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			cfg := loadConfig(cCtx.Path(flagConfigPath))
			if listen := cCtx.String(flagServeListen); listen != "" {
				cfg.ListenAddr = listen
			}

			printWelcome(cfg)

			a := newApp(cfg)
			if err := a.Start(ctx); err != nil {
				return fmt.Errorf("start launcher: %w", err)
			}

			ui := app.MustComponent[*launcherui.LauncherUI](a)
			log.Info("launcher is ready", zap.String("url", "http://"+ui.Addr()))

			// wait exit signal
			<-ctx.Done()

			closeApp(a)
			log.Info("goodbye!")
			return nil
		},
	}
}

// newApp registers the launcher components. They run in registration order and close in
// reverse order.
func newApp(cfg *config.Config) *app.App {
	store := connstore.New(cfg.ConnectionsDir())
	launcher := process.New(process.NewExecExecutor(), cfg.KillAfter())
	manager := hosting.NewManager(cfg.Hosting(), launcher)

	handshakeTimeout := cfg.Console.HandshakeTimeout
	joiner := launcherui.JoinerFunc(func(ctx context.Context, addr string) (model.WellKnown, error) {
		return probe.Handshake(ctx, addr, handshakeTimeout)
	})

	ui := launcherui.New(cfg.UI(versionString(), date), manager, store, joiner)

	return new(app.App).
		Register(store).
		Register(manager).
		Register(ui)
}

func closeApp(a *app.App) {
	ctxClose, cancelClose := context.WithTimeout(context.Background(), closeTimeout)
	defer cancelClose()

	if err := a.Close(ctxClose); err != nil {
		log.Error("close error", zap.Error(err))
	}
}

func printWelcome(cfg *config.Config) {
	fmt.Printf(`
┌──────────────────────────────────────────────────────────────────┐

                 Welcome to the Gladiator Launcher!

    Version: %s
    Built:   %s
    Commit:  %s

    UI:      http://%s
    Console: %s

`, version, date, shortRevision(commit), cfg.ListenAddr, cfg.Console.Command)

	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Println(" Based on these components:")
		for _, mod := range info.Deps {
			if strings.HasPrefix(mod.Path, "github.com/dgraph-io/badger") ||
				strings.HasPrefix(mod.Path, "github.com/a-h/templ") {
				fmt.Printf(" ▸ %s (%s)\n", mod.Path, mod.Version)
			}
		}
	}
	fmt.Print(`
└──────────────────────────────────────────────────────────────────┘
`)
}
