// Package config manages petitsplats configuration settings.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	configDirName  = "petitsplats"
	configFileName = "config.toml"
	envPrefix      = "PETITSPLATS"
)

// Setting keys, as written in config.toml.
const (
	KeyCatalogPath = "catalog_path"
	KeyLocale      = "locale"
	KeyOutput      = "output"
)

// Output formats accepted by the output setting.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	// CatalogPath is a JSON or YAML recipe file. Empty means the built-in
	// catalog.
	CatalogPath string `mapstructure:"catalog_path" toml:"catalog_path" json:"catalog_path" yaml:"catalog_path"`
	// Locale drives the collation of tag lists.
	Locale string `mapstructure:"locale" toml:"locale" json:"locale" yaml:"locale"`
	Output string `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		CatalogPath: "",
		Locale:      "fr",
		Output:      OutputText,
	}
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{KeyCatalogPath, KeyLocale, KeyOutput}
}

// OutputFormats lists the accepted output values.
func OutputFormats() []string {
	return []string{OutputText, OutputJSON, OutputYAML}
}

func GetConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, configDirName), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyCatalogPath, d.CatalogPath)
	v.SetDefault(KeyLocale, d.Locale)
	v.SetDefault(KeyOutput, d.Output)
}

// NewViper returns a viper instance reading path, or the default config
// file when path is empty, with PETITSPLATS_* environment overrides. A
// missing file is not an error.
func NewViper(path string) (*viper.Viper, error) {
	return newViper(path, true)
}

func newViper(path string, env bool) (*viper.Viper, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	if env {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
	}
	SetDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, errors.Wrap(err, "check config file")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return v, nil
}

// Load reads the configuration at path, or at the default location when
// path is empty, and validates it.
func Load(path string) (Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return Config{}, err
	}
	return LoadWithViper(v)
}

// LoadFile reads the file at path over the defaults, ignoring PETITSPLATS_*
// overrides. Use it before Save so per-run environment values stay out of
// the file.
func LoadFile(path string) (Config, error) {
	v, err := newViper(path, false)
	if err != nil {
		return Config{}, err
	}
	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the settings held by v.
func LoadWithViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg as TOML to path, or to the default location when path
// is empty, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

// Validate checks the output format and the locale tag. An empty locale
// means the default collation.
func (c Config) Validate() error {
	if !slices.Contains(OutputFormats(), c.Output) {
		return errors.WithHintf(
			errors.Newf("invalid output format %q", c.Output),
			"use one of: %s", strings.Join(OutputFormats(), ", "),
		)
	}
	if c.Locale == "" {
		return nil
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "invalid locale %q", c.Locale),
			"use a BCP 47 language tag such as fr or en-GB",
		)
	}
	return nil
}

// Get returns the value of key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case KeyCatalogPath:
		return c.CatalogPath, nil
	case KeyLocale:
		return c.Locale, nil
	case KeyOutput:
		return c.Output, nil
	}
	return "", unknownKey(key)
}

// Set assigns value to key and validates the result. c is left unchanged
// on error.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case KeyCatalogPath:
		next.CatalogPath = strings.TrimSpace(value)
	case KeyLocale:
		next.Locale = strings.TrimSpace(value)
	case KeyOutput:
		next.Output = strings.ToLower(strings.TrimSpace(value))
	default:
		return unknownKey(key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func unknownKey(key string) error {
	return errors.WithHintf(
		errors.Newf("unknown config key %q", key),
		"valid keys are: %s", strings.Join(Keys(), ", "),
	)
}
