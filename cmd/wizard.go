package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"github.com/dimspell/gladiator-launcher/model"
	"github.com/dimspell/gladiator-launcher/process"
)

var errWizardAborted = errors.New("wizard aborted")

// lineReader is the part of readline.Instance the wizard needs.
type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

func cmdWizard(ctx context.Context) *cli.Command {
	return &cli.Command{
		Name:  "wizard",
		Usage: "Ask for the Host Server settings and start the console",
		Action: func(cCtx *cli.Context) error {
			cfg := loadConfig(cCtx.Path(flagConfigPath))

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("init readline: %w", err)
			}
			defer func() { _ = rl.Close() }()

			form, err := askHostForm(rl, rl.Stdout(), cfg.Host)
			if err != nil {
				return err
			}

			_, err = runConsole(ctx, process.NewExecExecutor(), launchOptions{
				Command:   cfg.Console.Command,
				KillAfter: cfg.KillAfter(),
				Form:      form,
				Out:       cCtx.App.Writer,
			})
			return err
		},
	}
}

// askHostForm walks through the Host Server fields. An empty answer keeps the default and an
// invalid one is asked again.
func askHostForm(rl lineReader, out io.Writer, defaults model.HostForm) (model.HostForm, error) {
	var form model.HostForm

	_, _ = fmt.Fprintln(out, "Host a Server. Press enter to keep the value in brackets.")

	addr, err := ask(rl, out, "Server address", defaults.BindAddress, model.ValidateBindAddress)
	if err != nil {
		return form, err
	}
	form.BindAddress = addr

	rawType, err := ask(rl, out, "Database type (memory, sqlite)", string(defaults.DatabaseType), func(s string) error {
		_, err := model.ParseDatabaseType(s)
		return err
	})
	if err != nil {
		return form, err
	}
	form.DatabaseType, _ = model.ParseDatabaseType(rawType)

	form.DatabasePath = defaults.DatabasePath
	if form.UsesPath() {
		path, err := ask(rl, out, "Database path", defaults.DatabasePath, nil)
		if err != nil {
			return form, err
		}
		form.DatabasePath = path
	}

	return form, form.Validate()
}

func ask(rl lineReader, out io.Writer, question, def string, validate func(string) error) (string, error) {
	rl.SetPrompt(fmt.Sprintf("%s [%s]: ", question, def))
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", errWizardAborted
		}
		if err != nil {
			return "", err
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			answer = def
		}
		if validate == nil {
			return answer, nil
		}
		if err := validate(answer); err != nil {
			_, _ = fmt.Fprintf(out, "  %v\n", err)
			continue
		}
		return answer, nil
	}
}
