package model

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Defaults of the Host Server form.
const (
	DefaultBindAddress  = "0.0.0.0:2137"
	DefaultDatabasePath = "./dispel-multi-db.sqlite"
)

var (
	ErrInvalidAddress      = errors.New("invalid bind address")
	ErrUnknownDatabaseType = errors.New("unknown database type")
	ErrMissingDatabasePath = errors.New("database path is required for sqlite")
)

// DatabaseType selects the storage of the hosted console.
type DatabaseType string

const (
	DatabaseMemory DatabaseType = "memory"
	DatabaseSQLite DatabaseType = "sqlite"
)

func ParseDatabaseType(s string) (DatabaseType, error) {
	switch DatabaseType(strings.ToLower(strings.TrimSpace(s))) {
	case DatabaseMemory:
		return DatabaseMemory, nil
	case DatabaseSQLite:
		return DatabaseSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDatabaseType, s)
	}
}

// HostForm is the in-memory state of the Host Server screen.
type HostForm struct {
	BindAddress  string       `yaml:"bindAddress"`
	DatabaseType DatabaseType `yaml:"databaseType"`
	DatabasePath string       `yaml:"databasePath"`
}

func DefaultHostForm() HostForm {
	return HostForm{
		BindAddress:  DefaultBindAddress,
		DatabaseType: DatabaseMemory,
		DatabasePath: DefaultDatabasePath,
	}
}

// WithDefaults fills blank fields from defaults.
func (f HostForm) WithDefaults(defaults HostForm) HostForm {
	if strings.TrimSpace(f.BindAddress) == "" {
		f.BindAddress = defaults.BindAddress
	}
	if f.DatabaseType == "" {
		f.DatabaseType = defaults.DatabaseType
	}
	if strings.TrimSpace(f.DatabasePath) == "" {
		f.DatabasePath = defaults.DatabasePath
	}
	return f
}

// UsesPath reports whether DatabasePath is meaningful for the selected type.
func (f HostForm) UsesPath() bool {
	return f.DatabaseType == DatabaseSQLite
}

func (f HostForm) Validate() error {
	if err := ValidateBindAddress(f.BindAddress); err != nil {
		return err
	}
	if _, err := ParseDatabaseType(string(f.DatabaseType)); err != nil {
		return err
	}
	if f.UsesPath() && strings.TrimSpace(f.DatabasePath) == "" {
		return ErrMissingDatabasePath
	}
	return nil
}

// IsInvalidInput reports whether err was caused by the form content rather than by the system.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidAddress) ||
		errors.Is(err, ErrUnknownDatabaseType) ||
		errors.Is(err, ErrMissingDatabasePath)
}

// ValidateBindAddress accepts host:port with a port in 1..65535. The host may be empty.
func ValidateBindAddress(addr string) error {
	_, port, err := net.SplitHostPort(strings.TrimSpace(addr))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: port %q out of range", ErrInvalidAddress, port)
	}
	return nil
}
