package smartlunch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	domainerrors "smartlunch/internal/domain/errors"
	"smartlunch/internal/infra/smartlunch/smartlunchtest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(smartlunchtest.DefaultEmail, Options{
		BaseURL:   baseURL,
		UserAgent: "smartlunch-test",
		Timeout:   2 * time.Second,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client
}

func requireAuthError(t *testing.T, err error) *domainerrors.AuthError {
	t.Helper()

	var authErr *domainerrors.AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)

	return authErr
}

func TestClient_Login_Success(t *testing.T) {
	server := smartlunchtest.NewServer()
	defer server.Close()
	client := newTestClient(t, server.URL)

	session, err := client.Login(context.Background(), smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword)
	require.NoError(t, err)

	assert.Equal(t, smartlunchtest.DefaultEmail, session.Email)
	assert.Equal(t, server.URL, session.BaseURL)
	assert.Equal(t, smartlunchtest.DefaultCSRF, session.CSRFToken)
	assert.Contains(t, session.Cookies, RememberCookie)
	assert.Contains(t, session.Cookies, SessionCookie)
	assert.Equal(t, "pl", session.Cookies["lang"])
	assert.NotContains(t, session.Cookies, "_ga", "cookies outside the allow-list are dropped")
	require.NotNil(t, session.TokenExpiry)
	assert.Equal(t, time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC), session.TokenExpiry.UTC())

	headers := server.LoginHeaders()
	assert.Equal(t, smartlunchtest.DefaultCSRF, headers.Get("X-CSRF-Token"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, server.URL, headers.Get("Origin"))
	assert.Equal(t, server.URL+"/", headers.Get("Referer"))
	assert.Equal(t, "XMLHttpRequest", headers.Get("X-Requested-With"))

	assert.True(t, client.Validate(context.Background()))
}

func TestClient_Login_WithoutCSRFToken(t *testing.T) {
	server := smartlunchtest.NewServer()
	defer server.Close()
	server.SetCSRF("")
	client := newTestClient(t, server.URL)

	_, err := client.Login(context.Background(), smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword)
	require.NoError(t, err)
	assert.Empty(t, server.LoginHeaders().Get("X-CSRF-Token"))
}

func TestClient_Login_WrongPassword(t *testing.T) {
	server := smartlunchtest.NewServer()
	defer server.Close()
	client := newTestClient(t, server.URL)

	_, err := client.Login(context.Background(), smartlunchtest.DefaultEmail, "wrong")

	authErr := requireAuthError(t, err)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Contains(t, authErr.Detail, "Invalid login")
	assert.False(t, client.Validate(context.Background()))
}

func TestClient_Login_RequiresPassword(t *testing.T) {
	client := newTestClient(t, "https://app.example.test")

	_, err := client.Login(context.Background(), smartlunchtest.DefaultEmail, "")
	requireAuthError(t, err)
}

// loginStub answers the sign-in call with a fixed status, body and cookies.
func loginStub(status int, contentType, body string, cookies ...*http.Cookie) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != LoginPath {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		for _, c := range cookies {
			http.SetCookie(w, c)
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
}

func TestClient_Login_FailureConditions(t *testing.T) {
	remember := &http.Cookie{Name: RememberCookie, Value: smartlunchtest.RememberToken(time.Now().Add(time.Hour)), Path: "/"}
	session := &http.Cookie{Name: SessionCookie, Value: "abc", Path: "/"}

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		cookies     []*http.Cookie
	}{
		{name: "missing remember cookie", status: 200, contentType: "application/json", body: `{"success":true}`, cookies: []*http.Cookie{session}},
		{name: "missing remember cookie on error status", status: 500, contentType: "application/json", body: `{"success":true}`},
		{name: "success false", status: 200, contentType: "application/json", body: `{"success":false}`, cookies: []*http.Cookie{remember}},
		{name: "success is a string", status: 200, contentType: "application/json", body: `{"success":"true"}`, cookies: []*http.Cookie{remember}},
		{name: "success missing", status: 200, contentType: "application/json", body: `{}`, cookies: []*http.Cookie{remember}},
		{name: "html body", status: 200, contentType: "text/html", body: `{"success":true}`, cookies: []*http.Cookie{remember}},
		{name: "malformed json", status: 200, contentType: "application/json", body: `{"success":tru`, cookies: []*http.Cookie{remember}},
		{name: "non 200 status", status: 201, contentType: "application/json", body: `{"success":true}`, cookies: []*http.Cookie{remember}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := loginStub(tt.status, tt.contentType, tt.body, tt.cookies...)
			defer server.Close()
			client := newTestClient(t, server.URL)

			_, err := client.Login(context.Background(), smartlunchtest.DefaultEmail, "pw")

			authErr := requireAuthError(t, err)
			assert.Equal(t, tt.status, authErr.Status)
			assert.Empty(t, client.Session().Cookies, "failed login must not touch the session")
		})
	}
}

func TestClient_Login_TruncatesDetail(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	server := loginStub(http.StatusInternalServerError, "text/plain", string(long))
	defer server.Close()
	client := newTestClient(t, server.URL)

	_, err := client.Login(context.Background(), smartlunchtest.DefaultEmail, "pw")

	authErr := requireAuthError(t, err)
	assert.Len(t, authErr.Detail, maxDetailLength)
}

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		want        bool
	}{
		{name: "json 200", status: 200, contentType: "application/json; charset=utf-8", want: true},
		{name: "html 200", status: 200, contentType: "text/html", want: false},
		{name: "unauthorized", status: 401, contentType: "application/json", want: false},
		{name: "server error", status: 500, contentType: "application/json", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, UsersMePath, r.URL.Path)
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{}`)
			}))
			defer server.Close()

			assert.Equal(t, tt.want, newTestClient(t, server.URL).Validate(context.Background()))
		})
	}
}

func TestClient_Validate_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	assert.False(t, newTestClient(t, baseURL).Validate(context.Background()))
}

func TestClient_Attach_ReplacesCookies(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []*http.Cookie
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = r.Cookies()
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()
	client := newTestClient(t, server.URL)

	client.Attach(map[string]string{SessionCookie: "old", "lang": "en"})
	client.Attach(map[string]string{SessionCookie: "new"})
	require.True(t, client.Validate(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.Equal(t, SessionCookie, seen[0].Name)
	assert.Equal(t, "new", seen[0].Value)
	assert.Equal(t, map[string]string{SessionCookie: "new"}, client.Session().Cookies)
}

func TestClient_Attach_DerivesExpiry(t *testing.T) {
	client := newTestClient(t, "https://app.example.test")
	exp := time.Date(2032, 5, 6, 7, 8, 9, 0, time.UTC)

	client.Attach(map[string]string{RememberCookie: smartlunchtest.RememberToken(exp)})

	require.NotNil(t, client.Session().TokenExpiry)
	assert.True(t, exp.Equal(*client.Session().TokenExpiry))
}

func TestNewClient_RejectsRelativeBase(t *testing.T) {
	_, err := NewClient("a@b.c", Options{BaseURL: "app.example.test"})
	require.Error(t, err)
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short enough", in: "abc", n: 5, want: "abc"},
		{name: "ascii cut", in: "abcdef", n: 3, want: "abc"},
		{name: "cut inside two-byte rune", in: "zażółć", n: 3, want: "za"},
		{name: "cut after two-byte rune", in: "zażółć", n: 4, want: "zaż"},
		{name: "cut inside four-byte rune", in: "ok🍕", n: 4, want: "ok"},
		{name: "nothing fits", in: "🍕", n: 2, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestClient_Login_LongRejectionDetailStaysValidUTF8(t *testing.T) {
	detail := strings.Repeat("ą", maxDetailLength)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("x" + detail))
	}))
	defer server.Close()
	client := newTestClient(t, server.URL)

	_, err := client.Login(context.Background(), smartlunchtest.DefaultEmail, smartlunchtest.DefaultPassword)

	require.Error(t, err)
	assert.True(t, utf8.ValidString(err.Error()))
}
