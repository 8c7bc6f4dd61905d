package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/anyproto/any-sync/app/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dimspell/gladiator-launcher/config"
)

// Build-time version information.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	appName = "gladiator-launcher"
)

// Global CLI flags.
const (
	flagDebug      = "debug"
	flagLogLevel   = "log-level"
	flagConfigPath = "config"
)

var log = logger.NewNamed("cli")

// Root returns the main CLI application with all commands and flags configured.
func Root(ctx context.Context) *cli.App {
	cli.VersionPrinter = versionPrinter

	return &cli.App{
		Name:    appName,
		Usage:   "Host or join a Dispel Multi server",
		Version: version,
		Flags:   buildGlobalFlags(),
		Before:  setupLogger,
		Commands: []*cli.Command{
			cmdServe(ctx),
			cmdLaunch(ctx),
			cmdWizard(ctx),
			cmdConfig(ctx),
			cmdConnections(ctx),
		},
	}
}

func buildGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    flagDebug,
			Usage:   "Enable debug mode with detailed logging",
			EnvVars: []string{"GLADIATOR_LAUNCHER_DEBUG"},
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level (debug, info, warn, error, fatal)",
			EnvVars: []string{"GLADIATOR_LAUNCHER_LOG_LEVEL"},
		},
		&cli.PathFlag{
			Name:    flagConfigPath,
			Aliases: []string{"c"},
			Value:   config.DefaultPath,
			EnvVars: []string{"GLADIATOR_LAUNCHER_CONFIG"},
			Usage:   "Path to the launcher configuration YAML file",
		},
	}
}

func setupLogger(c *cli.Context) error {
	cfg := logger.Config{
		Format:       logger.PlaintextOutput,
		DefaultLevel: "info",
	}

	// --log-level flag
	if logLevel := c.String(flagLogLevel); logLevel != "" {
		cfg.DefaultLevel = logLevel
	}

	// --debug flag (overrides everything)
	if c.Bool(flagDebug) {
		cfg.DefaultLevel = "debug"
		cfg.Format = logger.ColorizedOutput
	}

	cfg.ApplyGlobal()
	return nil
}

// loadConfig reads the config file, or returns the defaults when there is none yet.
func loadConfig(path string) *config.Config {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Info("config file not found, using defaults", zap.String("path", path))
		return config.Default()
	}
	return config.Load(path)
}

func versionString() string {
	return fmt.Sprintf("%s (revision: %s) built on %s", version, shortRevision(commit), date)
}
