package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath        = "."
	defaultBaseURL     = "https://app.smartlunch.pl"
	defaultUserAgent   = "smartlunch-poller/0.1"
	defaultHTTPTimeout = 25 * time.Second

	defaultPlacesInterval  = 15 * time.Minute
	defaultDaysInterval    = 15 * time.Minute
	defaultHoursInterval   = 15 * time.Minute
	defaultFundingInterval = 30 * time.Minute
	defaultExpiryInterval  = 5 * time.Minute

	defaultSlowQueryThreshold = 200 * time.Millisecond

	defaultHTTPPort           = 8080
	defaultMaxRequestBodySize = "16KB"
	defaultReadHeaderTimeout  = 5 * time.Second
	defaultServerTimeout      = 60 * time.Second
)

// Default place policies decide which place wins when the remote payload
// marks more than one delivery place as default.
const (
	DefaultPlaceLast  = "last"
	DefaultPlaceFirst = "first"
)

// Storage drivers for the persisted account state.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SmartLunch SmartLunchConfig `json:"smartlunch" yaml:"smartlunch"`

	Refresh RefreshConfig `json:"refresh" yaml:"refresh"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Accounts are set up from persisted state when the process starts.
	Accounts []string `json:"accounts" yaml:"accounts"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for re-authentication events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// SmartLunchConfig describes how the remote ordering service is reached.
type SmartLunchConfig struct {
	BaseURL            string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	UserAgent          string        `json:"userAgent" yaml:"userAgent"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout" validate:"gt=0"`
	DefaultPlacePolicy string        `json:"defaultPlacePolicy" yaml:"defaultPlacePolicy" validate:"oneof=first last"`
}

// RefreshConfig holds the polling interval of every refresh level.
type RefreshConfig struct {
	Places  time.Duration `json:"places" yaml:"places" validate:"gt=0"`
	Days    time.Duration `json:"days" yaml:"days" validate:"gt=0"`
	Hours   time.Duration `json:"hours" yaml:"hours" validate:"gt=0"`
	Funding time.Duration `json:"funding" yaml:"funding" validate:"gt=0"`
	Expiry  time.Duration `json:"expiry" yaml:"expiry" validate:"gt=0"`
}

// StorageConfig selects the backend for persisted account state.
type StorageConfig struct {
	Driver             string        `json:"driver" yaml:"driver" validate:"oneof=memory postgres"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset field with its production default.
func (cfg *Config) ApplyDefaults() {
	sl := &cfg.SmartLunch
	sl.BaseURL = strings.TrimRight(strings.TrimSpace(sl.BaseURL), "/")
	if sl.BaseURL == "" {
		sl.BaseURL = defaultBaseURL
	}
	if sl.UserAgent == "" {
		sl.UserAgent = defaultUserAgent
	}
	if sl.Timeout <= 0 {
		sl.Timeout = defaultHTTPTimeout
	}
	if sl.DefaultPlacePolicy == "" {
		sl.DefaultPlacePolicy = DefaultPlaceLast
	}

	setDuration(&cfg.Refresh.Places, defaultPlacesInterval)
	setDuration(&cfg.Refresh.Days, defaultDaysInterval)
	setDuration(&cfg.Refresh.Hours, defaultHoursInterval)
	setDuration(&cfg.Refresh.Funding, defaultFundingInterval)
	setDuration(&cfg.Refresh.Expiry, defaultExpiryInterval)

	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	setDuration(&cfg.HTTP.Timeouts.ReadHeaderTimeout, defaultReadHeaderTimeout)
	setDuration(&cfg.HTTP.Timeouts.ReadTimeout, defaultServerTimeout)
	setDuration(&cfg.HTTP.Timeouts.WriteTimeout, defaultServerTimeout)
	setDuration(&cfg.HTTP.Timeouts.IdleTimeout, defaultServerTimeout)

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageMemory
	}
	setDuration(&cfg.Storage.SlowQueryThreshold, defaultSlowQueryThreshold)
}

// Validate checks the loaded configuration.
func (cfg *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(cfg.SmartLunch); err != nil {
		return errors.Wrap(err, "invalid smartlunch config")
	}
	if err := v.Struct(cfg.Refresh); err != nil {
		return errors.Wrap(err, "invalid refresh config")
	}
	if err := v.Struct(cfg.Storage); err != nil {
		return errors.Wrap(err, "invalid storage config")
	}
	if cfg.Storage.Driver == StoragePostgres && cfg.Postgres == nil {
		return errors.New("postgres storage selected but postgres section is missing")
	}

	return nil
}

func setDuration(d *time.Duration, fallback time.Duration) {
	if *d <= 0 {
		*d = fallback
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
