// Package testsite serves a small local web application that the browser
// suite drives. It provides a stand-in for the Playwright landing page plus
// pages exercising forms, dialogs, downloads, geolocation, cookies and a
// JSON API, so tests stay hermetic instead of depending on a live site.
package testsite

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
)

// SessionCookieName is the cookie set by /login.
const SessionCookieName = "testsite_session"

// Basic auth credentials for /protected.
const (
	BasicAuthUser     = "admin"
	BasicAuthPassword = "hunter2"
)

// User is a record served by the /api/users endpoint.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SeededUsers is the fixed data set behind /api/users and /files/report.csv.
var SeededUsers = []User{
	{ID: 1, Name: "Ada Lovelace"},
	{ID: 2, Name: "Alan Turing"},
}

// Site is a running test application.
type Site struct {
	Server *httptest.Server
	URL    string
	Logger *slog.Logger
}

// New starts the test site on an httptest server. Request logs go to stderr
// at debug level only when TESTSITE_DEBUG is set.
func New(t *testing.T) *Site {
	t.Helper()

	level := slog.LevelWarn
	if os.Getenv("TESTSITE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	server := httptest.NewServer(Handler(logger))
	return &Site{
		Server: server,
		URL:    server.URL,
		Logger: logger,
	}
}

// Close shuts the server down.
func (s *Site) Close() {
	s.Server.Close()
}

// Handler builds the test site's HTTP handler.
func Handler(logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	servePage := func(pattern string, body string) {
		mux.HandleFunc("GET "+pattern, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(body))
		})
	}

	servePage("/{$}", homePage)
	servePage("/docs/intro", docsIntroPage)
	servePage("/docs/api", docsAPIPage)
	servePage("/community", communityPage)
	servePage("/form", formPage)
	servePage("/users", usersPage)
	servePage("/dialogs", dialogsPage)
	servePage("/download", downloadPage)
	servePage("/geo", geoPage)
	servePage("/slow", slowPage)
	servePage("/scroll", scrollPage)

	mux.HandleFunc("POST /form/submit", handleFormSubmit)
	mux.HandleFunc("GET /api/users", handleAPIUsers)
	mux.HandleFunc("GET /files/report.csv", handleReportCSV)
	mux.HandleFunc("GET /agent", handleAgent)
	mux.HandleFunc("GET /protected", handleProtected)
	mux.HandleFunc("GET /login", handleLogin)
	mux.HandleFunc("GET /cookie", handleCookie)

	return accessLog(mux, logger)
}

func accessLog(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Handling request",
			slog.String("component", "testsite"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

func handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	// The form posts as multipart so the file input works.
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		http.Error(w, "could not parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	avatarName := ""
	if _, header, err := r.FormFile("avatar"); err == nil {
		avatarName = header.Filename
	}
	subscribed := "no"
	if r.FormValue("subscribe") != "" {
		subscribed = "yes"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, submitPageTemplate,
		html.EscapeString(r.FormValue("name")),
		html.EscapeString(r.FormValue("email")),
		html.EscapeString(r.FormValue("country")),
		subscribed,
		html.EscapeString(r.FormValue("comments")),
		html.EscapeString(avatarName),
	)
}

func handleAPIUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string][]User{"users": SeededUsers})
}

func handleReportCSV(w http.ResponseWriter, r *http.Request) {
	rows := lo.Map(SeededUsers, func(u User, _ int) string {
		return fmt.Sprintf("%d,%s", u.ID, u.Name)
	})
	body := "id,name\n" + strings.Join(rows, "\n") + "\n"

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func handleAgent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, agentPageTemplate, html.EscapeString(r.UserAgent()))
}

func handleProtected(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != BasicAuthUser || pass != BasicAuthPassword {
		w.Header().Set("WWW-Authenticate", `Basic realm="testsite"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(protectedPage))
}

func handleLogin(w http.ResponseWriter, r *http.Request) {
	session := uuid.Must(uuid.NewV4()).String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session,
		Path:     "/",
		HttpOnly: true,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(loginPage))
}

func handleCookie(w http.ResponseWriter, r *http.Request) {
	session := "none"
	if c, err := r.Cookie(SessionCookieName); err == nil {
		session = c.Value
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, cookiePageTemplate, html.EscapeString(session))
}
