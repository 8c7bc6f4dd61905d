package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dimspell/gladiator-launcher/config"
)

const (
	flagForce         = "force"
	flagConfigListen  = "listen"
	flagConfigDataDir = "data-dir"
	flagConfigCommand = "command"
)

func cmdConfig(_ context.Context) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the launcher configuration",
		Subcommands: []*cli.Command{
			cmdConfigCreate(),
			cmdConfigShow(),
		},
	}
}

func cmdConfigCreate() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Generate a new configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagForce,
				Aliases: []string{"f"},
				Usage:   "Force overwrite if configuration file already exists",
				EnvVars: []string{"GLADIATOR_LAUNCHER_FORCE"},
			},
			&cli.StringFlag{
				Name:  flagConfigListen,
				Usage: "Address of the launcher UI",
				Value: config.DefaultListenAddr,
			},
			&cli.PathFlag{
				Name:  flagConfigDataDir,
				Usage: "Directory of the launcher data (must be writable)",
				Value: config.DefaultDataDir,
			},
			&cli.StringFlag{
				Name:  flagConfigCommand,
				Usage: "Game executable providing the console command",
				Value: config.DefaultCommand,
			},
		},
		Action: func(cCtx *cli.Context) error {
			cfgPath := cCtx.Path(flagConfigPath)

			// Prevent accidental config overwrite.
			if !cCtx.Bool(flagForce) {
				if _, err := os.Stat(cfgPath); err == nil {
					return fmt.Errorf(
						"configuration file already exists at '%s', use --%s to overwrite",
						cfgPath,
						flagForce,
					)
				}
			}

			log.Info("generating new launcher configuration", zap.String("path", cfgPath))

			cfg := config.CreateWrite(&config.CreateOptions{
				CfgPath:    cfgPath,
				ListenAddr: cCtx.String(flagConfigListen),
				DataDir:    cCtx.Path(flagConfigDataDir),
				Command:    cCtx.String(flagConfigCommand),
			})

			log.Info("launcher configuration written successfully", zap.String("configId", cfg.ConfigID))
			return nil
		},
	}
}

func cmdConfigShow() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the effective configuration",
		Action: func(cCtx *cli.Context) error {
			cfg := loadConfig(cCtx.Path(flagConfigPath))

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}
			_, err = cCtx.App.Writer.Write(data)
			return err
		},
	}
}
