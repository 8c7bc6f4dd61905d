// Package config loads and creates the YAML configuration of the launcher.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"
	"gopkg.in/mgo.v2/bson"
	"gopkg.in/yaml.v3"

	"github.com/dimspell/gladiator-launcher/model"
)

var log = logger.NewNamed("launcher.config")

const (
	// MinSupportedConfigFormat is the oldest config format version this binary can load.
	MinSupportedConfigFormat = 1
	// CurrentConfigFormat is the config format version this binary creates.
	CurrentConfigFormat = 1

	DefaultPath       = "./data/launcher.yml"
	DefaultListenAddr = "127.0.0.1:8081"
	DefaultDataDir    = "./data/launcher"
	DefaultLanguage   = "en"
	DefaultCommand    = "dispel-multi"

	defaultKillAfter        = 3 * time.Second
	defaultHandshakeTimeout = 10 * time.Second
	defaultOutputLines      = 200
)

type Config struct {
	ConfigFormat int            `yaml:"configFormat"`
	ConfigID     string         `yaml:"configId"`
	ListenAddr   string         `yaml:"listenAddr"`
	Language     string         `yaml:"language"`
	DataDir      string         `yaml:"dataDir"`
	Console      ConsoleConfig  `yaml:"console"`
	Host         model.HostForm `yaml:"host"`
}

type ConsoleConfig struct {
	// Command is the game executable, looked up in PATH when not absolute.
	Command string `yaml:"command"`
	// KillAfter is the delay of the unconditional kill after spawn. Omitted means 3s,
	// a negative value disables the kill.
	KillAfter        time.Duration `yaml:"killAfter"`
	HandshakeTimeout time.Duration `yaml:"handshakeTimeout"`
	OutputLines      int           `yaml:"outputLines"`
}

func Load(cfgPath string) *Config {
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		log.Panic("can't read config file", zap.Error(err))
	}

	var cfg Config
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		log.Panic("can't unmarshal config", zap.Error(errUnmarshal))
	}

	if cfg.ConfigFormat < MinSupportedConfigFormat {
		log.Panic("config format too old, please recreate your configuration",
			zap.Int("format", cfg.ConfigFormat),
			zap.Int("min_supported", MinSupportedConfigFormat),
			zap.String("path", cfgPath))
	}
	if cfg.ConfigFormat > CurrentConfigFormat {
		log.Panic("config format too new, please upgrade the launcher",
			zap.Int("format", cfg.ConfigFormat),
			zap.Int("current", CurrentConfigFormat),
			zap.String("path", cfgPath))
	}

	cfg.applyDefaults()

	if _, err := model.ParseDatabaseType(string(cfg.Host.DatabaseType)); err != nil {
		log.Panic("invalid host database type", zap.Error(err), zap.String("path", cfgPath))
	}

	return &cfg
}

// Default returns the configuration used when no file exists yet. It has no config id.
func Default() *Config {
	cfg := &Config{ConfigFormat: CurrentConfigFormat}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Console.Command == "" {
		c.Console.Command = DefaultCommand
	}
	if c.Console.KillAfter == 0 {
		c.Console.KillAfter = defaultKillAfter
	}
	if c.Console.HandshakeTimeout <= 0 {
		c.Console.HandshakeTimeout = defaultHandshakeTimeout
	}
	if c.Console.OutputLines <= 0 {
		c.Console.OutputLines = defaultOutputLines
	}
	c.Host = c.Host.WithDefaults(model.DefaultHostForm())
}

// ConnectionsDir is where the saved connections database lives.
func (c *Config) ConnectionsDir() string {
	return filepath.Join(c.DataDir, "connections")
}

type CreateOptions struct {
	CfgPath    string
	ListenAddr string
	DataDir    string
	Command    string
}

func CreateWrite(opts *CreateOptions) *Config {
	createdCfg := newLauncherConfig(opts)

	createCfgYaml, err := yaml.Marshal(createdCfg)
	if err != nil {
		log.Panic("can't marshal config", zap.Error(err))
	}

	if errMkdir := os.MkdirAll(filepath.Dir(opts.CfgPath), 0o750); errMkdir != nil {
		log.Panic("can't create config directory", zap.Error(errMkdir))
	}

	if errWrite := os.WriteFile(opts.CfgPath, createCfgYaml, 0o600); errWrite != nil {
		log.Panic("can't write config file", zap.Error(errWrite))
	}

	return createdCfg
}

func newLauncherConfig(opts *CreateOptions) *Config {
	cfg := &Config{
		ConfigFormat: CurrentConfigFormat,
		ConfigID:     bson.NewObjectId().Hex(),
		ListenAddr:   opts.ListenAddr,
		DataDir:      opts.DataDir,
		Console: ConsoleConfig{
			Command: opts.Command,
		},
	}
	cfg.applyDefaults()
	return cfg
}
