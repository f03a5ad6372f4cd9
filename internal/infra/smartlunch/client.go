// Package smartlunch is the HTTP client of the remote ordering service:
// session handling (login, validation, cookies) and the read-only endpoints.
package smartlunch

import (
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"smartlunch/config"
	"smartlunch/internal/domain/entity"
	"smartlunch/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

const (
	LoginPath            = "/users/sign_in"
	UsersMePath          = "/employees/api/v1/users"
	FundingPathTpl       = "/employees/api/v1/funding_settings/%s"
	DeliveryPlacesPath   = "/employees/api/v1/delivery_places"
	DeliveryDatesPathTpl = "/employees/api/v1/delivery_places/%d/delivery_dates"

	SessionCookie  = "_smartlunch_session"
	RememberCookie = "remember_user_token"

	maxDetailLength = 300
	maxBodySize     = 4 << 20
)

// CookieKeys is the allow-list of cookies kept in a session.
var CookieKeys = []string{SessionCookie, RememberCookie, "lang", "country"}

// Options configures a Client.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    *slog.Logger

	// Transport overrides the HTTP transport, used by tests.
	Transport http.RoundTripper
}

// Client talks to the remote service on behalf of one account.
type Client struct {
	email     string
	baseURL   string
	base      *url.URL
	userAgent string
	timeout   time.Duration
	transport http.RoundTripper
	logger    *slog.Logger

	jar        *sessionJar
	httpClient *http.Client

	mu     sync.RWMutex
	csrf   string
	expiry *time.Time
}

var _ service.SmartLunchClient = (*Client)(nil)

// NewClient creates a client with an empty session.
func NewClient(email string, opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse base url %q", opts.BaseURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be an absolute http(s) origin", opts.BaseURL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jar, err := newSessionJar()
	if err != nil {
		return nil, err
	}

	c := &Client{
		email:     email,
		baseURL:   baseURL,
		base:      base,
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
		transport: opts.Transport,
		logger:    logger.With(slog.String("account", entity.AccountKey(email))),
		jar:       jar,
	}
	c.httpClient = c.newHTTPClient(jar)

	return c, nil
}

func (c *Client) newHTTPClient(jar http.CookieJar) *http.Client {
	return &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
		Jar:       jar,
	}
}

// Session returns a snapshot of the current session context.
func (c *Client) Session() *entity.SessionContext {
	c.mu.RLock()
	defer c.mu.RUnlock()

	session := &entity.SessionContext{
		Email:     c.email,
		BaseURL:   c.baseURL,
		CSRFToken: c.csrf,
		Cookies:   c.cookies(),
	}
	if c.expiry != nil {
		exp := *c.expiry
		session.TokenExpiry = &exp
	}

	return session
}

// Attach replaces the cookie store with exactly the given cookies, scoped
// to the configured origin. The expiry is re-derived from the remember cookie.
func (c *Client) Attach(cookies map[string]string) {
	jar, err := newCookieJar()
	if err != nil {
		// cookiejar.New only fails on invalid options.
		c.logger.Error("Failed to create cookie jar", slog.Any("error", err))

		return
	}

	list := make([]*http.Cookie, 0, len(cookies))
	for name, value := range cookies {
		list = append(list, &http.Cookie{Name: name, Value: value, Path: "/"})
	}
	jar.SetCookies(c.base, list)
	c.jar.swap(jar)

	c.mu.Lock()
	c.csrf = ""
	c.expiry = DecodeExpiry(cookies[RememberCookie])
	c.mu.Unlock()
}

func (c *Client) cookies() map[string]string {
	return filterCookies(c.jar.Cookies(c.base))
}

func (c *Client) csrfToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.csrf
}

func filterCookies(cookies []*http.Cookie) map[string]string {
	out := make(map[string]string, len(CookieKeys))
	for _, cookie := range cookies {
		for _, key := range CookieKeys {
			if cookie.Name == key {
				out[key] = cookie.Value
			}
		}
	}

	return out
}

func newCookieJar() (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	return jar, nil
}

// sessionJar lets the live cookie store be replaced while requests are in flight.
type sessionJar struct {
	mu    sync.RWMutex
	inner http.CookieJar
}

func newSessionJar() (*sessionJar, error) {
	inner, err := newCookieJar()
	if err != nil {
		return nil, err
	}

	return &sessionJar{inner: inner}, nil
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	inner := j.inner
	j.mu.RUnlock()

	inner.SetCookies(u, cookies)
}

func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	inner := j.inner
	j.mu.RUnlock()

	return inner.Cookies(u)
}

func (j *sessionJar) swap(inner http.CookieJar) {
	j.mu.Lock()
	j.inner = inner
	j.mu.Unlock()
}

// Factory builds clients from the service configuration.
type Factory struct {
	opts Options
}

// NewFactory is the fx constructor for the client factory.
func NewFactory(cfg *config.Config, logger *slog.Logger) service.ClientFactory {
	return &Factory{
		opts: Options{
			BaseURL:   cfg.SmartLunch.BaseURL,
			UserAgent: cfg.SmartLunch.UserAgent,
			Timeout:   cfg.SmartLunch.Timeout,
			Logger:    logger,
		},
	}
}

// NewClient builds a client for the account. An empty baseURL falls back to
// the configured origin.
func (f *Factory) NewClient(email, baseURL string) (service.SmartLunchClient, error) {
	opts := f.opts
	if strings.TrimSpace(baseURL) != "" {
		opts.BaseURL = baseURL
	}

	client, err := NewClient(email, opts)
	if err != nil {
		return nil, err
	}

	return client, nil
}
