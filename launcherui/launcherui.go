// Package launcherui serves the launcher screens: Home, Host Server, Join Server and the admin
// area of the hosted console.
package launcherui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFS embed.FS

const CName = "launcher.ui"

var (
	_ app.ComponentRunnable = (*LauncherUI)(nil)

	log = logger.NewNamed(CName)
)

// LauncherUI is the HTTP server behind the launcher webview.
type LauncherUI struct {
	config   Config
	server   *http.Server
	handlers *Handlers
	listener net.Listener
}

func New(cfg Config, hosting HostingService, conns ConnectionService, joiner Joiner) *LauncherUI {
	ui := &LauncherUI{
		config:   cfg,
		handlers: newHandlers(cfg, hosting, conns, joiner),
	}
	ui.server = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           ui.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return ui
}

// Router returns the route table. It is exposed for tests and for embedding into another server.
func (a *LauncherUI) Router() *mux.Router {
	h := a.handlers
	r := mux.NewRouter()

	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFS))).Methods(http.MethodGet)

	r.HandleFunc("/", h.handleHome).Methods(http.MethodGet)
	r.HandleFunc("/host-server", h.handleHostCard).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/host-server2", h.handleHost).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/join-server", h.handleJoin).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/admin", h.handleAdmin).Methods(http.MethodGet)
	r.HandleFunc("/admin/players", h.handleAdminPlayers).Methods(http.MethodGet)
	r.HandleFunc("/admin/stop", h.handleAdminStop).Methods(http.MethodPost)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(h.handleNotFound)
	return r
}

func (a *LauncherUI) Init(_ *app.App) error {
	log.Info("initializing launcher UI", zap.String("addr", a.config.ListenAddr))
	return nil
}

func (a *LauncherUI) Name() string {
	return CName
}

// Run binds the listen address and serves in the background. Bind errors are returned.
func (a *LauncherUI) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", a.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.config.ListenAddr, err)
	}
	a.listener = ln

	go func() {
		log.Info("starting launcher UI server", zap.String("addr", ln.Addr().String()))
		if serverErr := a.server.Serve(ln); serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			log.Error("launcher UI server error", zap.Error(serverErr))
		}
	}()

	return nil
}

// Addr is the bound address, useful when listening on port 0.
func (a *LauncherUI) Addr() string {
	if a.listener == nil {
		return a.config.ListenAddr
	}
	return a.listener.Addr().String()
}

func (a *LauncherUI) Close(ctx context.Context) error {
	if a.listener == nil {
		return nil
	}
	log.Info("shutting down launcher UI server")
	return a.server.Shutdown(ctx)
}
