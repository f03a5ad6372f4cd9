// Command smartlunch-login signs an account in from the terminal. Without
// --api it prints the resulting session (cookies and token expiry) as JSON;
// with --api it hands the credentials to a running poller instead.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"smartlunch/config"
	"smartlunch/internal/infra/smartlunch"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type loginFlags struct {
	email    string
	password string
	baseURL  string
	apiURL   string
	timeout  time.Duration
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := &config.Config{}
	cfg.SmartLunch.BaseURL = os.Getenv("SMARTLUNCH_BASEURL")
	cfg.ApplyDefaults()

	var flags loginFlags
	fs := pflag.NewFlagSet("smartlunch-login", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&flags.email, "email", "e", "", "Account email")
	fs.StringVarP(&flags.password, "password", "p", "", "Password (optional, will prompt if omitted)")
	fs.StringVar(&flags.baseURL, "base", cfg.SmartLunch.BaseURL, "Base URL of the ordering service")
	fs.StringVar(&flags.apiURL, "api", "", "Admin API of a running poller; the account is added there")
	fs.DurationVar(&flags.timeout, "timeout", cfg.SmartLunch.Timeout, "Request timeout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.email == "" {
		fmt.Fprintln(stdout, "Usage: smartlunch-login --email <email> [--password <password>] [--base <url>] [--api <url>]")
		fs.PrintDefaults()

		return errors.New("missing required flags: email")
	}

	if flags.password == "" {
		fmt.Fprint(stdout, "Password: ")
		password, err := readPassword(stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read password")
		}
		fmt.Fprintln(stdout)
		flags.password = password
	}
	if strings.TrimSpace(flags.password) == "" {
		return errors.New("password cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*flags.timeout)
	defer cancel()

	if flags.apiURL != "" {
		return addToPoller(ctx, flags, stdout)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return loginLocally(ctx, flags, cfg.SmartLunch.UserAgent, logger, stdout)
}

// loginLocally logs in, checks the session and prints it.
func loginLocally(ctx context.Context, flags loginFlags, userAgent string, logger *slog.Logger, stdout io.Writer) error {
	client, err := smartlunch.NewClient(flags.email, smartlunch.Options{
		BaseURL:   flags.baseURL,
		UserAgent: userAgent,
		Timeout:   flags.timeout,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	session, err := client.Login(ctx, flags.email, flags.password)
	if err != nil {
		return errors.Wrap(err, "login failed")
	}
	if !client.Validate(ctx) {
		return errors.New("login succeeded but the session was not accepted")
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(session))
}

// addToPoller posts the credentials to the admin API and prints its answer.
func addToPoller(ctx context.Context, flags loginFlags, stdout io.Writer) error {
	body, err := json.Marshal(map[string]string{
		"email":    flags.email,
		"password": flags.password,
		"base_url": flags.baseURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	endpoint := strings.TrimRight(flags.apiURL, "/") + "/accounts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := (&http.Client{Timeout: 2 * flags.timeout}).Do(req)
	if err != nil {
		return errors.Wrap(err, "call admin API")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("admin API answered %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	_, err = fmt.Fprintln(stdout, strings.TrimSpace(string(raw)))

	return errors.WithStack(err)
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", errors.WithStack(err)
		}

		return string(bytePassword), nil
	}

	// Pipes and tests.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	return "", io.EOF
}
