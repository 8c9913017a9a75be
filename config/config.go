package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Config is the root configuration of the service.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Address configures the address table, its flag set, the validation
	// rule table and the geocoding hook.
	Address *AddressConfig `json:"address" yaml:"address"`
}

// Log controls the slog handler.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AddressConfig is the single source of truth shared by validation and the
// schema migration: the flag list defines both the boolean columns and the
// per-flag validation rules.
type AddressConfig struct {
	// TableName is the storage table identifier for addresses.
	TableName string `json:"tableName" yaml:"tableName"`

	// Flags is the ordered list of flag names. Each name becomes one
	// boolean column "is_<flag>". Changing the list is a schema migration.
	Flags []string `json:"flags" yaml:"flags"`

	// Rules maps a field name to its rule tokens
	// (required|nullable, string, max:<n>, numeric, alpha, size:<n>, country).
	Rules map[string][]string `json:"rules" yaml:"rules"`

	// RequirePostCode switches post_code between the required and nullable
	// rule profiles.
	RequirePostCode bool `json:"requirePostCode" yaml:"requirePostCode"`

	Geocoding GeocodingConfig `json:"geocoding" yaml:"geocoding"`
}

// GeocodingConfig controls the best-effort geocoding hook run on save.
type GeocodingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	// Endpoint overrides the provider URL, used by tests.
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

const (
	defaultTableName        = "addresses"
	defaultGeocodingTimeout = 5 * time.Second
)

// DefaultFlags is the flag set shipped with the default schema.
var DefaultFlags = []string{"primary", "billing", "shipping"}

// DefaultRules returns the base rule table. post_code starts nullable; the
// RequirePostCode toggle flips it.
func DefaultRules() map[string][]string {
	return map[string][]string{
		"label":        {"nullable", "string", "max:150"},
		"given_name":   {"nullable", "string", "max:150"},
		"family_name":  {"nullable", "string", "max:150"},
		"organization": {"nullable", "string", "max:150"},
		"street":       {"required", "string", "max:255"},
		"street_extra": {"nullable", "string", "max:255"},
		"city":         {"required", "string", "max:150"},
		"province":     {"required", "string", "max:150"},
		"post_code":    {"nullable", "string", "max:150"},
		"country_code": {"required", "alpha", "size:2", "country"},
		"latitude":     {"nullable", "numeric"},
		"longitude":    {"nullable", "numeric"},
	}
}

// DefaultAddressConfig returns the configuration used when the address
// section is absent.
func DefaultAddressConfig() *AddressConfig {
	return &AddressConfig{
		TableName: defaultTableName,
		Flags:     append([]string(nil), DefaultFlags...),
		Rules:     DefaultRules(),
		Geocoding: GeocodingConfig{Timeout: defaultGeocodingTimeout},
	}
}

// Normalize fills unset fields with their defaults.
func (c *AddressConfig) Normalize() {
	if c.TableName == "" {
		c.TableName = defaultTableName
	}
	if len(c.Flags) == 0 {
		c.Flags = append([]string(nil), DefaultFlags...)
	}
	if len(c.Rules) == 0 {
		c.Rules = DefaultRules()
	}
	if c.Geocoding.Timeout <= 0 {
		c.Geocoding.Timeout = defaultGeocodingTimeout
	}
}

// EffectiveRules returns the rule table with the RequirePostCode toggle
// applied.
func (c *AddressConfig) EffectiveRules() map[string][]string {
	rules := make(map[string][]string, len(c.Rules))
	for field, tokens := range c.Rules {
		rules[field] = append([]string(nil), tokens...)
	}

	if tokens, ok := rules["post_code"]; ok {
		want := "nullable"
		if c.RequirePostCode {
			want = "required"
		}
		for i, token := range tokens {
			if token == "required" || token == "nullable" {
				tokens[i] = want
			}
		}
		rules["post_code"] = tokens
	}

	return rules
}

// HasFlag reports whether the flag name is part of the configured set.
func (c *AddressConfig) HasFlag(name string) bool {
	for _, flag := range c.Flags {
		if flag == name {
			return true
		}
	}

	return false
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
			// Example: ADDRESS_GEOCODING_APIKEY -> address.geocoding.apiKey
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

// New loads the service configuration and applies defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Address == nil {
		cfg.Address = DefaultAddressConfig()
	}
	cfg.Address.Normalize()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
