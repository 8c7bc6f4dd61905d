package launcherui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/dimspell/gladiator-launcher/hosting"
	"github.com/dimspell/gladiator-launcher/model"
	"github.com/dimspell/gladiator-launcher/probe"
)

// DefaultJoinAddr prefills the Join Server form.
const DefaultJoinAddr = "http://127.0.0.1:2137"

var notices = map[string]string{
	"stopped":     "admin.stopped",
	"not-running": "admin.alreadyStopped",
}

// Handlers manages HTTP request handling.
type Handlers struct {
	cfg     Config
	hosting HostingService
	conns   ConnectionService
	joiner  Joiner
	now     func() time.Time
}

func newHandlers(cfg Config, hs HostingService, conns ConnectionService, joiner Joiner) *Handlers {
	if cfg.JoinAddr == "" {
		cfg.JoinAddr = DefaultJoinAddr
	}
	cfg.HostDefaults = cfg.HostDefaults.WithDefaults(model.DefaultHostForm())

	return &Handlers{
		cfg:     cfg,
		hosting: hs,
		conns:   conns,
		joiner:  joiner,
		now:     time.Now,
	}
}

func (h *Handlers) page(r *http.Request, active string) page {
	return page{
		L:         localizerFor(r, h.cfg.Language),
		Version:   h.cfg.Version,
		BuildDate: h.cfg.BuildDate,
		Active:    active,
	}
}

// handleHome lists saved connections next to the join box.
func (h *Handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	d := homeData{
		page:     h.page(r, ""),
		JoinAddr: r.URL.Query().Get("addr"),
		Joined:   r.URL.Query().Get("joined"),
	}

	conns, err := h.conns.List()
	if err != nil {
		log.Warn("can't list saved connections", zap.Error(err))
		d.ListFailed = true
	}
	d.Connections = conns

	h.render(w, r, HomePage(d))
}

func (h *Handlers) handleHostCard(w http.ResponseWriter, r *http.Request) {
	h.hostForm(w, r, "/host-server", HostCardPage)
}

func (h *Handlers) handleHost(w http.ResponseWriter, r *http.Request) {
	h.hostForm(w, r, "/host-server2", HostPage)
}

// hostForm serves both Host Server variants. GET prefills the form from the query, so saved
// host connections can link back to it.
func (h *Handlers) hostForm(w http.ResponseWriter, r *http.Request, action string, component func(hostData) templ.Component) {
	d := hostData{
		page:   h.page(r, ""),
		Action: action,
		Form:   h.cfg.HostDefaults,
	}

	if r.Method != http.MethodPost {
		if form, err := parseHostForm(r.URL.Query(), h.cfg.HostDefaults); err == nil {
			d.Form = form
		}
		h.render(w, r, component(d))
		return
	}

	if err := r.ParseForm(); err != nil {
		d.Error = err.Error()
		h.renderStatus(w, r, http.StatusBadRequest, component(d))
		return
	}

	form, err := parseHostForm(r.PostForm, h.cfg.HostDefaults)
	d.Form = form
	if err != nil {
		d.Error = err.Error()
		h.renderStatus(w, r, http.StatusBadRequest, component(d))
		return
	}

	status, err := h.hosting.Host(r.Context(), form)
	if err != nil {
		code := http.StatusInternalServerError
		if model.IsInvalidInput(err) {
			code = http.StatusBadRequest
		}
		log.Warn("can't host server", zap.Error(err), zap.String("bindAddress", form.BindAddress))
		d.Error = err.Error()
		h.renderStatus(w, r, code, component(d))
		return
	}

	log.Info("server hosted from launcher", zap.String("launchId", status.LaunchID))
	h.saveConnection(model.SavedConnection{
		Host:     true,
		Addr:     form.BindAddress,
		URI:      action + "?" + hostQuery(form).Encode(),
		LastUsed: h.now(),
	})

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleJoin checks that the console answers and remembers it.
func (h *Handlers) handleJoin(w http.ResponseWriter, r *http.Request) {
	d := joinData{
		page: h.page(r, ""),
		Addr: h.cfg.JoinAddr,
	}

	if r.Method != http.MethodPost {
		if addr := strings.TrimSpace(r.URL.Query().Get("addr")); addr != "" {
			d.Addr = addr
		}
		d.Username = r.URL.Query().Get("username")
		h.render(w, r, JoinPage(d))
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, err)
		return
	}
	d.Addr = strings.TrimSpace(r.PostForm.Get("addr"))
	d.Username = strings.TrimSpace(r.PostForm.Get("username"))

	info, err := h.joiner.Handshake(r.Context(), d.Addr)
	if err != nil {
		d.Failed = true
		d.Code = probe.CodeUnreachable
		var herr *probe.HandshakeError
		if errors.As(err, &herr) && herr.Code != "" {
			d.Code = herr.Code
		}
		d.Detail = err.Error()
		h.renderStatus(w, r, http.StatusBadGateway, JoinPage(d))
		return
	}

	log.Info("server is reachable", zap.String("addr", d.Addr), zap.String("version", info.Version))
	h.saveConnection(model.SavedConnection{
		Addr:     d.Addr,
		URI:      "/join-server?" + url.Values{"addr": {d.Addr}, "username": {d.Username}}.Encode(),
		Username: d.Username,
		LastUsed: h.now(),
	})

	http.Redirect(w, r, "/?joined="+url.QueryEscape(d.Addr), http.StatusSeeOther)
}

func (h *Handlers) handleAdmin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, AdminPage(adminData{
		page:   h.page(r, "overview"),
		Status: h.hosting.Status(),
		Output: h.hosting.Output(),
		Notice: notices[r.URL.Query().Get("notice")],
	}))
}

func (h *Handlers) handleAdminPlayers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, AdminPlayersPage(h.page(r, "players")))
}

func (h *Handlers) handleAdminStop(w http.ResponseWriter, r *http.Request) {
	err := h.hosting.Stop()
	switch {
	case errors.Is(err, hosting.ErrNotRunning):
		http.Redirect(w, r, "/admin?notice=not-running", http.StatusSeeOther)
	case err != nil:
		h.renderError(w, r, err)
	default:
		http.Redirect(w, r, "/admin?notice=stopped", http.StatusSeeOther)
	}
}

// handleHealth handles health check endpoint.
func (h *Handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "launcher",
		"console": string(h.hosting.Status().State),
	})
}

func (h *Handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderStatus(w, r, http.StatusNotFound, ErrorPage(errorData{
		page:    h.page(r, ""),
		Message: fmt.Sprintf("page %s not found", r.URL.Path),
	}))
}

func (h *Handlers) saveConnection(c model.SavedConnection) {
	if err := h.conns.Put(c); err != nil {
		log.Warn("can't save connection", zap.String("id", c.ID()), zap.Error(err))
	}
}

// render renders a templ component.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	h.renderStatus(w, r, http.StatusOK, component)
}

func (h *Handlers) renderStatus(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		log.Error("template rendering failed", zap.Error(err))
	}
}

// renderError renders an error page.
func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log.Warn("rendering error", zap.String("path", r.URL.Path), zap.Error(err))

	h.renderStatus(w, r, http.StatusInternalServerError, ErrorPage(errorData{
		page:    h.page(r, ""),
		Message: err.Error(),
	}))
}

// parseHostForm reads the Host Server fields. Blank fields take the defaults.
func parseHostForm(values url.Values, defaults model.HostForm) (model.HostForm, error) {
	form := model.HostForm{
		BindAddress:  strings.TrimSpace(values.Get("bindAddress")),
		DatabasePath: strings.TrimSpace(values.Get("databasePath")),
	}

	if raw := values.Get("databaseType"); strings.TrimSpace(raw) != "" {
		dbType, err := model.ParseDatabaseType(raw)
		if err != nil {
			return form.WithDefaults(defaults), err
		}
		form.DatabaseType = dbType
	}

	return form.WithDefaults(defaults), nil
}

func hostQuery(form model.HostForm) url.Values {
	q := url.Values{
		"bindAddress":  {form.BindAddress},
		"databaseType": {string(form.DatabaseType)},
	}
	if form.UsesPath() {
		q.Set("databasePath", form.DatabasePath)
	}
	return q
}
