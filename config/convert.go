package config

import (
	"time"

	"github.com/dimspell/gladiator-launcher/hosting"
	"github.com/dimspell/gladiator-launcher/launcherui"
	"github.com/dimspell/gladiator-launcher/probe"
)

// Hosting converts the console section into the console manager configuration.
func (c *Config) Hosting() hosting.Config {
	return hosting.Config{
		Command:     c.Console.Command,
		OutputLines: c.Console.OutputLines,
		Probe:       probe.DefaultConfig(),
	}
}

// KillAfter is the delay for the process launcher, zero when the kill is disabled.
func (c *Config) KillAfter() time.Duration {
	if c.Console.KillAfter < 0 {
		return 0
	}
	return c.Console.KillAfter
}

func (c *Config) UI(version, buildDate string) launcherui.Config {
	return launcherui.Config{
		ListenAddr:   c.ListenAddr,
		Language:     c.Language,
		HostDefaults: c.Host,
		Version:      version,
		BuildDate:    buildDate,
	}
}
