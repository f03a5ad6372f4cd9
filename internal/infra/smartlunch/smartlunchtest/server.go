// Package smartlunchtest provides an in-process fake of the remote ordering
// service for tests.
package smartlunchtest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	DefaultEmail    = "jan@example.com"
	DefaultPassword = "s3cret"
	DefaultCSRF     = "csrf-token-123"
)

// Place is a delivery place served by the fake.
type Place struct {
	ID      int64
	Name    string
	Default bool
}

// Date is an orderable day with its hours.
type Date struct {
	Date  string
	Hours []any
}

// Server is a fake remote service. Fields may be changed between calls
// through the setter methods.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	email       string
	password    string
	csrf        string
	expiry      time.Time
	places      []Place
	dates       map[int64][]Date
	funding     map[string]any
	sessions    map[string]bool
	issued      int
	failures    map[string]int
	loginHeader http.Header
	requests    []string
}

// NewServer starts a fake with one account and no data.
func NewServer() *Server {
	s := &Server{
		email:    DefaultEmail,
		password: DefaultPassword,
		csrf:     DefaultCSRF,
		expiry:   time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
		dates:    map[int64][]Date{},
		sessions: map[string]bool{},
		failures: map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /users/sign_in", s.handleSignIn)
	mux.HandleFunc("GET /employees/api/v1/users", s.authorized(s.handleMe))
	mux.HandleFunc("GET /employees/api/v1/delivery_places", s.authorized(s.handlePlaces))
	mux.HandleFunc("GET /employees/api/v1/delivery_places/{id}/delivery_dates", s.authorized(s.handleDates))
	mux.HandleFunc("GET /employees/api/v1/funding_settings/{day}", s.authorized(s.handleFunding))
	s.Server = httptest.NewServer(mux)

	return s
}

// RememberToken builds a remember cookie value carrying the given expiry.
func RememberToken(exp time.Time) string {
	payload, _ := json.Marshal(map[string]any{
		"_rails": map[string]any{
			"message": "W1sxXSwiJDJhJDEwJCJd",
			"exp":     exp.UTC().Format("2006-01-02T15:04:05.000Z"),
			"pur":     "cookie.remember_user_token",
		},
	})
	encoded := base64.RawURLEncoding.EncodeToString(payload)

	return url.QueryEscape(encoded + "--0f1e2d3c4b5a")
}

// SetPassword changes the accepted password.
func (s *Server) SetPassword(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.password = password
}

// SetCSRF changes the token served in the page markup. Empty disables it.
func (s *Server) SetCSRF(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.csrf = token
}

// SetPlaces replaces the delivery places.
func (s *Server) SetPlaces(places ...Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = places
}

// SetDates replaces the delivery dates of one place.
func (s *Server) SetDates(placeID int64, dates ...Date) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates[placeID] = dates
}

// SetFunding replaces the funding payload.
func (s *Server) SetFunding(payload map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funding = payload
}

// FailNext makes the next n requests whose path starts with prefix answer 500.
func (s *Server) FailNext(prefix string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[prefix] = n
}

// ExpireSessions invalidates every issued session.
func (s *Server) ExpireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = map[string]bool{}
}

// LoginHeaders returns the headers of the last sign-in request.
func (s *Server) LoginHeaders() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loginHeader.Clone()
}

// Requests returns the paths requested so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.requests...)
}

// Count returns how often a path was requested.
func (s *Server) Count(path string) int {
	n := 0
	for _, p := range s.Requests() {
		if p == path {
			n++
		}
	}

	return n
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	csrf := s.csrf
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	meta := ""
	if csrf != "" {
		meta = fmt.Sprintf(`<meta name="csrf-token" content="%s" />`, csrf)
	}
	fmt.Fprintf(w, `<!DOCTYPE html><html><head><meta charset="utf-8">%s</head><body>login</body></html>`, meta)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User struct {
			Login    string `json:"login"`
			Password string `json:"password"`
		} `json:"user"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	s.loginHeader = r.Header.Clone()
	ok := strings.EqualFold(body.User.Login, s.email) && body.User.Password == s.password &&
		(s.csrf == "" || r.Header.Get("X-CSRF-Token") == s.csrf)
	var session string
	if ok {
		s.issued++
		session = "session-" + strconv.Itoa(s.issued)
		s.sessions[session] = true
	}
	expiry := s.expiry
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid login or password."})

		return
	}

	http.SetCookie(w, &http.Cookie{Name: "_smartlunch_session", Value: session, Path: "/", HttpOnly: true})
	http.SetCookie(w, &http.Cookie{Name: "remember_user_token", Value: RememberToken(expiry), Path: "/", HttpOnly: true})
	http.SetCookie(w, &http.Cookie{Name: "lang", Value: "pl", Path: "/"})
	http.SetCookie(w, &http.Cookie{Name: "_ga", Value: "tracking", Path: "/"})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Path)
		failed := false
		for prefix, n := range s.failures {
			if n > 0 && strings.HasPrefix(r.URL.Path, prefix) {
				s.failures[prefix] = n - 1
				failed = true
			}
		}
		valid := false
		if cookie, err := r.Cookie("_smartlunch_session"); err == nil {
			valid = s.sessions[cookie.Value]
		}
		s.mu.Unlock()

		if !valid {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "You need to sign in or sign up before continuing."})

			return
		}
		if failed {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "boom"})

			return
		}
		next(w, r)
	}
}

func (s *Server) handleMe(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	email := s.email
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"email": email}})
}

func (s *Server) handlePlaces(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	places := make([]map[string]any, 0, len(s.places))
	for _, p := range s.places {
		places = append(places, map[string]any{"id": p.ID, "name_pl": p.Name, "default": p.Default})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"companies_delivery_places": []any{
			map[string]any{"delivery_places": places},
		},
	})
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})

		return
	}

	s.mu.Lock()
	dates := make([]map[string]any, 0, len(s.dates[id]))
	for _, d := range s.dates[id] {
		dates = append(dates, map[string]any{"date": d.Date, "hours": d.Hours})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"delivery_dates": dates})
}

func (s *Server) handleFunding(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	payload := s.funding
	s.mu.Unlock()

	if payload == nil {
		payload = map[string]any{}
	}
	writeJSON(w, http.StatusOK, payload)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
