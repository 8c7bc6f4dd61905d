package launcherui

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	supportedLanguages = []language.Tag{language.English, language.Polish}
	languageMatcher    = language.NewMatcher(supportedLanguages)

	messageCatalog = buildCatalog(messages)
)

// buildCatalog registers the messages of every supported language. A key missing in a language
// gets the English message.
func buildCatalog(msgs map[string]map[string]string) *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, tag := range supportedLanguages {
		base, _ := tag.Base()
		set := func(key, msg string) {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("message %s/%s: %v", tag, key, err))
			}
		}
		for key, msg := range msgs["en"] {
			set(key, msg)
		}
		for key, msg := range msgs[base.String()] {
			set(key, msg)
		}
	}
	return b
}

// Localizer translates message keys for one language. Unknown keys are returned as is.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func newLocalizer(tag language.Tag) Localizer {
	return Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messageCatalog)),
	}
}

func (l Localizer) T(key string) string {
	return l.printer.Sprintf(key)
}

// Lang is the BCP 47 tag used for the html lang attribute.
func (l Localizer) Lang() string {
	return l.tag.String()
}

// localizerFor picks the language from the lang query parameter, then Accept-Language, then the
// configured fallback. The first source with a supported language wins.
func localizerFor(r *http.Request, fallback string) Localizer {
	var sources [][]language.Tag

	if q := r.URL.Query().Get("lang"); q != "" {
		if tag, err := language.Parse(q); err == nil {
			sources = append(sources, []language.Tag{tag})
		}
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		if tags, _, err := language.ParseAcceptLanguage(al); err == nil && len(tags) > 0 {
			sources = append(sources, tags)
		}
	}
	if tag, err := language.Parse(fallback); err == nil {
		sources = append(sources, []language.Tag{tag})
	}

	for _, tags := range sources {
		if _, idx, conf := languageMatcher.Match(tags...); conf != language.No {
			return newLocalizer(supportedLanguages[idx])
		}
	}
	return newLocalizer(language.English)
}

var messages = map[string]map[string]string{
	"en": {
		"footer.version":   "Version",
		"footer.buildDate": "Build Date",
		"common.back":      "Go back",

		"home.greeting": "Greetings, brave adventurer!",
		"home.intro": "Whether you're stepping into the mystical realms of Dman for the first time or returning " +
			"for another epic journey, we're thrilled to have you here. Prepare yourself for a world of magic, " +
			"challenges, and camaraderie.",
		"home.ready": "Ready to Begin Your Journey?",
		"home.follow": "Follow the wizard to host your very own server or choose an existing server to join " +
			"forces and forge alliances as you embark on quests together.",
		"home.curious":    "Are you curious about the development?",
		"home.discord":    "Join Discord channel",
		"home.joinTitle":  "Join server",
		"home.joinHint":   "Select saved connection or enter the URI address to join the server",
		"home.noSaved":    "No saved connections yet.",
		"home.connect":    "Connect",
		"home.or":         "Or",
		"home.host":       "Host a server",
		"home.joined":     "The server is reachable and was saved.",
		"home.listFailed": "Saved connections could not be loaded.",

		"role.host":   "Host",
		"role.player": "Player",

		"host.title": "Host a Server",
		"host.intro": "Let's get your game server up and running. Please fill out the following form to specify " +
			"the configuration details.",
		"host.bindAddress": "Server Address",
		"host.bindAddressHelp": "Enter the IP address & port number to bind the game server to and listen for " +
			"incoming connections. This will be the address that players connect to. Make sure the port is " +
			"open through any firewalls.",
		"host.databaseType": "Database type",
		"host.databaseTypeHelp": "Select the type of database to use, either SQLite or in-memory. " +
			"Note: in-memory is only recommended for testing.",
		"host.sqlite":       "Saved on disk",
		"host.memory":       "Stored in-memory",
		"host.databasePath": "Database path",
		"host.databasePathHelp": "Enter the path to the database file. " +
			"Note: This field is enabled only when the database is saved on disk.",
		"host.outro": "Once you fill out these details, we'll get your game server initialized with the provided " +
			"configuration. Players will then be able to connect using the IP address and port you specified.",
		"host.next":   "Next",
		"host.submit": "Host a server",
		"host.failed": "Could not start the server",

		"join.title":       "Join a Server",
		"join.intro":       "Please enter the address of the server you wish to connect to:",
		"join.unreachable": "Could not reach server",
		"join.unreachableDetail": "Unable to establish a connection to the server. Please check your internet " +
			"connection and the URL address you have provided. In case of LAN server, make sure you belong to " +
			"the network you are trying connect to.",
		"join.knownIssues": "(View known bugs and issues)",
		"join.url":         "URL",
		"join.username":    "Username",
		"join.connect":     "Connect",

		"admin.overview":         "Overview",
		"admin.players":          "Players",
		"admin.lobby":            "Lobby",
		"admin.settings":         "Settings",
		"admin.console":          "Console",
		"admin.state":            "State",
		"admin.health":           "Health",
		"admin.pid":              "PID",
		"admin.launch":           "Launch",
		"admin.started":          "Started",
		"admin.exit":             "Exit",
		"admin.args":             "Arguments",
		"admin.output":           "Recent output",
		"admin.noOutput":         "No output yet.",
		"admin.notRunning":       "No console has been started yet.",
		"admin.stop":             "Stop console",
		"admin.stopped":          "Stop signal sent.",
		"admin.alreadyStopped":   "The console is not running.",
		"admin.graphUnavailable": "Graph not available",

		"state.not-running": "Not running",
		"state.running":     "Running",
		"state.exited":      "Exited",

		"error.title": "Something went wrong",
	},
	"pl": {
		"footer.version":   "Wersja",
		"footer.buildDate": "Data kompilacji",
		"common.back":      "Wróć",

		"home.greeting": "Witaj, dzielny poszukiwaczu przygód!",
		"home.intro": "Niezależnie od tego, czy po raz pierwszy wkraczasz do mistycznych krain Dman, czy wracasz " +
			"na kolejną epicką wyprawę, cieszymy się, że tu jesteś. Przygotuj się na świat magii, wyzwań " +
			"i przyjaźni.",
		"home.ready": "Gotowy, by rozpocząć podróż?",
		"home.follow": "Skorzystaj z kreatora, aby postawić własny serwer, albo wybierz istniejący serwer, " +
			"by połączyć siły i zawierać sojusze podczas wspólnych wypraw.",
		"home.curious":    "Ciekawi Cię, jak powstaje gra?",
		"home.discord":    "Dołącz do kanału na Discordzie",
		"home.joinTitle":  "Dołącz do serwera",
		"home.joinHint":   "Wybierz zapisane połączenie lub wpisz adres URI serwera",
		"home.noSaved":    "Brak zapisanych połączeń.",
		"home.connect":    "Połącz",
		"home.or":         "Lub",
		"home.host":       "Postaw serwer",
		"home.joined":     "Serwer odpowiada i został zapisany.",
		"home.listFailed": "Nie udało się wczytać zapisanych połączeń.",

		"role.host":   "Host",
		"role.player": "Gracz",

		"host.title": "Postaw serwer",
		"host.intro": "Uruchommy Twój serwer gry. Wypełnij poniższy formularz, aby podać szczegóły konfiguracji.",
		"host.bindAddress": "Adres serwera",
		"host.bindAddressHelp": "Podaj adres IP i numer portu, na którym serwer gry będzie nasłuchiwał połączeń. " +
			"Pod tym adresem połączą się gracze. Upewnij się, że port jest otwarty w zaporze.",
		"host.databaseType": "Rodzaj bazy danych",
		"host.databaseTypeHelp": "Wybierz rodzaj bazy danych: SQLite lub w pamięci. " +
			"Uwaga: baza w pamięci jest zalecana tylko do testów.",
		"host.sqlite":       "Zapisana na dysku",
		"host.memory":       "Przechowywana w pamięci",
		"host.databasePath": "Ścieżka bazy danych",
		"host.databasePathHelp": "Podaj ścieżkę do pliku bazy danych. " +
			"Uwaga: pole jest aktywne tylko dla bazy zapisanej na dysku.",
		"host.outro": "Po wypełnieniu formularza uruchomimy serwer gry z podaną konfiguracją. Gracze będą mogli " +
			"połączyć się pod wskazanym adresem IP i portem.",
		"host.next":   "Dalej",
		"host.submit": "Postaw serwer",
		"host.failed": "Nie udało się uruchomić serwera",

		"join.title":       "Dołącz do serwera",
		"join.intro":       "Podaj adres serwera, z którym chcesz się połączyć:",
		"join.unreachable": "Nie można połączyć się z serwerem",
		"join.unreachableDetail": "Nie udało się nawiązać połączenia z serwerem. Sprawdź połączenie z internetem " +
			"i podany adres URL. W przypadku serwera LAN upewnij się, że należysz do tej sieci.",
		"join.knownIssues": "(Zobacz znane błędy i problemy)",
		"join.url":         "URL",
		"join.username":    "Nazwa gracza",
		"join.connect":     "Połącz",

		"admin.overview":         "Przegląd",
		"admin.players":          "Gracze",
		"admin.lobby":            "Lobby",
		"admin.settings":         "Ustawienia",
		"admin.console":          "Konsola",
		"admin.state":            "Stan",
		"admin.health":           "Kondycja",
		"admin.pid":              "PID",
		"admin.launch":           "Uruchomienie",
		"admin.started":          "Start",
		"admin.exit":             "Zakończenie",
		"admin.args":             "Argumenty",
		"admin.output":           "Ostatnie komunikaty",
		"admin.noOutput":         "Brak komunikatów.",
		"admin.notRunning":       "Konsola nie została jeszcze uruchomiona.",
		"admin.stop":             "Zatrzymaj konsolę",
		"admin.stopped":          "Wysłano sygnał zatrzymania.",
		"admin.alreadyStopped":   "Konsola nie działa.",
		"admin.graphUnavailable": "Wykres niedostępny",

		"state.not-running": "Nie działa",
		"state.running":     "Działa",
		"state.exited":      "Zakończona",

		"error.title": "Coś poszło nie tak",
	},
}
