package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dimspell/gladiator-launcher/config"
	"github.com/dimspell/gladiator-launcher/hosting"
	"github.com/dimspell/gladiator-launcher/model"
	"github.com/dimspell/gladiator-launcher/process"
	"github.com/dimspell/gladiator-launcher/sqlitecheck"
)

// Command-scoped flags for the launch command.
const (
	flagLaunchConsoleAddr  = "console-addr"
	flagLaunchDatabaseType = "database-type"
	flagLaunchDatabasePath = "database-path"
	flagLaunchCommand      = "command"
	flagLaunchKillAfter    = "kill-after"
)

type launchOptions struct {
	Command   string
	KillAfter time.Duration
	Form      model.HostForm
	// Out receives the console output, one prefixed line per output line.
	Out io.Writer
}

func cmdLaunch(ctx context.Context) *cli.Command {
	return &cli.Command{
		Name:  "launch",
		Usage: "Start the console in the foreground without the UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagLaunchConsoleAddr,
				Usage: "Address the console binds to (default from config)",
			},
			&cli.StringFlag{
				Name:  flagLaunchDatabaseType,
				Usage: "Database of the console: memory or sqlite (default from config)",
			},
			&cli.StringFlag{
				Name:  flagLaunchDatabasePath,
				Usage: "Path of the sqlite database (default from config)",
			},
			&cli.StringFlag{
				Name:    flagLaunchCommand,
				Usage:   "Game executable providing the console command (default from config)",
				EnvVars: []string{"GLADIATOR_LAUNCHER_COMMAND"},
			},
			&cli.DurationFlag{
				Name:  flagLaunchKillAfter,
				Usage: "Kill the console after this delay, 0 disables the kill (default from config)",
			},
		},
		Action: func(cCtx *cli.Context) error {
			cfg := loadConfig(cCtx.Path(flagConfigPath))

			opts, err := launchOptionsFromFlags(cCtx, cfg)
			if err != nil {
				return err
			}
			opts.Out = cCtx.App.Writer

			_, err = runConsole(ctx, process.NewExecExecutor(), opts)
			return err
		},
	}
}

func launchOptionsFromFlags(cCtx *cli.Context, cfg *config.Config) (launchOptions, error) {
	opts := launchOptions{
		Command:   cfg.Console.Command,
		KillAfter: cfg.KillAfter(),
		Form: model.HostForm{
			BindAddress:  cCtx.String(flagLaunchConsoleAddr),
			DatabasePath: cCtx.String(flagLaunchDatabasePath),
		},
	}

	if raw := cCtx.String(flagLaunchDatabaseType); raw != "" {
		dbType, err := model.ParseDatabaseType(raw)
		if err != nil {
			return launchOptions{}, err
		}
		opts.Form.DatabaseType = dbType
	}
	opts.Form = opts.Form.WithDefaults(cfg.Host)

	if command := cCtx.String(flagLaunchCommand); command != "" {
		opts.Command = command
	}
	if cCtx.IsSet(flagLaunchKillAfter) {
		opts.KillAfter = max(cCtx.Duration(flagLaunchKillAfter), 0)
	}

	return opts, nil
}

// runConsole spawns the console and blocks until it exits. Cancelling ctx kills it.
func runConsole(ctx context.Context, executor process.Executor, opts launchOptions) (process.ExitStatus, error) {
	if err := opts.Form.Validate(); err != nil {
		return process.ExitStatus{}, err
	}
	if opts.Form.UsesPath() {
		if err := sqlitecheck.Check(ctx, opts.Form.DatabasePath); err != nil {
			return process.ExitStatus{}, fmt.Errorf("sqlite database %q: %w", opts.Form.DatabasePath, err)
		}
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	var mu sync.Mutex
	printer := func(stream model.Stream) func(string) {
		return func(line string) {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintf(out, "[%s] %s\n", stream, line)
		}
	}

	launcher := process.New(executor, opts.KillAfter)
	p, err := launcher.Spawn(context.WithoutCancel(ctx), opts.Command, hosting.ConsoleArgs(opts.Form), process.Handlers{
		OnStdout: printer(model.StreamStdout),
		OnStderr: printer(model.StreamStderr),
	})
	if err != nil {
		return process.ExitStatus{}, err
	}

	select {
	case <-p.Done():
	case <-ctx.Done():
		log.Info("interrupted, stopping console", zap.Int("pid", p.Pid()))
		_ = p.Kill()
		<-p.Done()
	}

	status, _ := p.ExitStatus()
	return status, nil
}
