package launcherui

import (
	"context"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/dimspell/gladiator-launcher/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"clock": func(t time.Time) string { return t.Format("15:04:05") },
}).ParseFS(templatesFS, "templates/*.html"))

// page is shared by every screen: translations, footer and navbar state.
type page struct {
	L         Localizer
	Version   string
	BuildDate string
	Active    string
}

type homeData struct {
	page
	Connections []model.SavedConnection
	JoinAddr    string
	Joined      string
	ListFailed  bool
}

type hostData struct {
	page
	Action string
	Form   model.HostForm
	Error  string
}

type joinData struct {
	page
	Addr     string
	Username string
	Failed   bool
	Code     string
	Detail   string
}

type adminData struct {
	page
	Status model.ConsoleStatus
	Output []model.OutputLine
	Notice string
}

type errorData struct {
	page
	Message string
}

func view(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

func HomePage(d homeData) templ.Component { return view("home", d) }

// HostPage renders the design-system variant of the Host Server form.
func HostPage(d hostData) templ.Component { return view("host", d) }

// HostCardPage renders the card-layout variant of the Host Server form.
func HostCardPage(d hostData) templ.Component { return view("host_card", d) }

func JoinPage(d joinData) templ.Component { return view("join", d) }

func AdminPage(d adminData) templ.Component { return view("admin", d) }

// AdminPlayersPage is the placeholder of the player graph.
func AdminPlayersPage(d page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := view("head", d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="admin">`); err != nil {
			return err
		}
		if err := view("admin_navbar", d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="admin-main center-content"><div class="card empty-card">`+
			`<span class="destructive">`+alertIcon+templ.EscapeString(d.L.T("admin.graphUnavailable"))+
			`</span></div></main></div>`); err != nil {
			return err
		}
		return view("foot", d).Render(ctx, w)
	})
}

func ErrorPage(d errorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := view("head", d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="card-layout"><div class="card">`); err != nil {
			return err
		}
		if err := view("brand", d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="alert alert-error" role="alert">`+
			`<h3>`+templ.EscapeString(d.L.T("error.title"))+`</h3>`+
			`<p>`+templ.EscapeString(d.Message)+`</p></div>`+
			`<p><a class="link" href="/">&larr; `+templ.EscapeString(d.L.T("common.back"))+`</a></p>`+
			`</div></div>`); err != nil {
			return err
		}
		return view("foot", d).Render(ctx, w)
	})
}

const alertIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 24 24" ` +
	`fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
	`<circle cx="12" cy="12" r="10"></circle><line x1="12" x2="12" y1="8" y2="12"></line>` +
	`<line x1="12" x2="12.01" y1="16" y2="16"></line></svg>`
