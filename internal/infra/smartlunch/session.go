package smartlunch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"smartlunch/internal/domain/entity"
	domainerrors "smartlunch/internal/domain/errors"

	"github.com/pkg/errors"
)

type loginRequest struct {
	User loginUser `json:"user"`
}

type loginUser struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login signs in with email and password. It succeeds only when the
// response is 200, its JSON body has success == true, and the remember
// cookie was set. On success the live session is replaced by the
// allow-listed cookies of the new one; on failure it is left untouched.
// Login is never retried.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.SessionContext, error) {
	if password == "" {
		return nil, domainerrors.NewAuthError(0, "password required for login")
	}

	jar, err := newCookieJar()
	if err != nil {
		return nil, err
	}
	loginClient := c.newHTTPClient(jar)

	csrf := c.preflightCSRF(ctx, loginClient)

	body, err := json.Marshal(loginRequest{User: loginUser{Login: email, Password: password}})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LoginPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.setJSONHeaders(req, csrf)

	resp, err := loginClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewHTTPError(0, LoginPath, err.Error())
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))

	var result map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &result); err != nil {
			result = nil
		}
	}

	cookies := filterCookies(jar.Cookies(c.base))
	_, hasRemember := cookies[RememberCookie]
	ok := resp.StatusCode == http.StatusOK && result["success"] == true && hasRemember
	if !ok {
		c.logger.Warn("Login rejected",
			slog.Int("status", resp.StatusCode),
			slog.Bool("remember_cookie", hasRemember),
		)

		return nil, domainerrors.NewAuthError(resp.StatusCode, truncate(loginDetail(result, raw), maxDetailLength))
	}

	c.Attach(cookies)

	c.mu.Lock()
	c.csrf = csrf
	c.mu.Unlock()

	session := c.Session()
	c.logger.Info("Login succeeded", slog.Any("remember_exp", session.TokenExpiry))

	return session, nil
}

// preflightCSRF fetches the site root and scrapes the anti-forgery token.
// Failures are tolerated and yield an empty token.
func (c *Client) preflightCSRF(ctx context.Context, hc *http.Client) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return ""
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := hc.Do(req)
	if err != nil {
		c.logger.Debug("CSRF preflight failed", slog.Any("error", err))

		return ""
	}
	defer resp.Body.Close()

	return scrapeCSRFToken(io.LimitReader(resp.Body, maxBodySize))
}

func (c *Client) setJSONHeaders(req *http.Request, csrf string) {
	c.setBaseHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if csrf != "" {
		req.Header.Set("X-CSRF-Token", csrf)
	}
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+"/")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
}

func (c *Client) setBaseHeaders(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")
}

// Validate asks the "who am I" endpoint whether the session is still accepted.
// Only a 200 with a JSON content type counts as valid.
func (c *Client) Validate(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+UsersMePath, nil)
	if err != nil {
		return false
	}
	c.setBaseHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Session validation request failed", slog.Any("error", err))

		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	return resp.StatusCode == http.StatusOK &&
		strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json")
}

func loginDetail(result map[string]any, raw []byte) string {
	if result != nil {
		if encoded, err := json.Marshal(result); err == nil {
			return string(encoded)
		}
	}

	return string(raw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}
