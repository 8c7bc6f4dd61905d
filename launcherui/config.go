package launcherui

import (
	"github.com/dimspell/gladiator-launcher/model"
)

// Config represents launcher UI configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., "127.0.0.1:8081")
	ListenAddr string
	// Language is used when neither the request nor the browser asks for a supported one.
	Language string
	// HostDefaults prefill the Host Server form.
	HostDefaults model.HostForm
	// JoinAddr prefills the Join Server form.
	JoinAddr string

	Version   string
	BuildDate string
}
