// Package config provides configuration management for the site generator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"noticias/internal/normalizer"
)

// Defaults.
const (
	DefaultOutputDir = "output"
	DefaultSiteTitle = "Noticias del Fuego"
	DefaultInputPath = "data/articles.yaml"
	DefaultLogLevel  = "info"
)

// Input formats understood by the loader.
const (
	FormatAuto     = "auto"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatFeed     = "feed"
)

// Environment overrides.
const (
	EnvOutputDir = "SITEGEN_OUTPUT_DIR"
	EnvLogLevel  = "SITEGEN_LOG_LEVEL"
	EnvInput     = "SITEGEN_INPUT"
	EnvSiteTitle = "SITEGEN_SITE_TITLE"
)

// Config represents the complete generator configuration.
type Config struct {
	Site       SiteConfig       `yaml:"site"`
	Input      InputConfig      `yaml:"input"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SiteConfig controls page output.
type SiteConfig struct {
	Title        string `yaml:"title"`
	OutputDir    string `yaml:"output_dir"`
	Keyword      string `yaml:"keyword"`
	Initial      string `yaml:"initial"`
	MarkdownBody bool   `yaml:"markdown_body"`
	SignPages    bool   `yaml:"sign_pages"`
}

// InputConfig tells the loader where the raw records come from.
type InputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// ValidationConfig mirrors the normalizer length policy.
type ValidationConfig struct {
	Enabled        bool `yaml:"enabled"`
	MinTitleLength int  `yaml:"min_title_length"`
	MinBodyLength  int  `yaml:"min_body_length"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	policy := normalizer.DefaultPolicy()

	return &Config{
		Site: SiteConfig{
			Title:     DefaultSiteTitle,
			OutputDir: DefaultOutputDir,
			SignPages: true,
		},
		Input: InputConfig{
			Path:   DefaultInputPath,
			Format: FormatAuto,
		},
		Validation: ValidationConfig{
			Enabled:        policy.Enabled,
			MinTitleLength: policy.MinTitle,
			MinBodyLength:  policy.MinBody,
		},
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// LoadConfig loads configuration from a YAML file layered over the defaults,
// then applies environment overrides. An empty path skips the file.
func LoadConfig(filepath string) (*Config, error) {
	cfg := Default()

	if filepath != "" {
		data, err := os.ReadFile(filepath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadEnv loads .env files into the process environment. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from SITEGEN_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.Site.OutputDir = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvInput)); v != "" {
		c.Input.Path = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvSiteTitle)); v != "" {
		c.Site.Title = v
	}
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Site),
		validation.Field(&c.Input),
		validation.Field(&c.Validation),
		validation.Field(&c.Logging),
	)
}

// Validate validates the site section.
func (s SiteConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.OutputDir, validation.Required),
		validation.Field(&s.Initial, validation.RuneLength(0, 1)),
	)
}

// Validate validates the input section.
func (i InputConfig) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Format, validation.In(FormatAuto, FormatYAML, FormatMarkdown, FormatFeed)),
	)
}

// Validate validates the length policy.
func (v ValidationConfig) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.MinTitleLength, validation.Min(0)),
		validation.Field(&v.MinBodyLength, validation.Min(0)),
	)
}

// Validate validates the logging section.
func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
	)
}

// Policy converts the validation section into a normalizer policy.
func (c *Config) Policy() normalizer.Policy {
	return normalizer.Policy{
		Enabled:  c.Validation.Enabled,
		MinTitle: c.Validation.MinTitleLength,
		MinBody:  c.Validation.MinBodyLength,
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s (%s), Output: %s, MinTitle: %d, MinBody: %d}",
		c.Input.Path,
		c.Input.Format,
		c.Site.OutputDir,
		c.Validation.MinTitleLength,
		c.Validation.MinBodyLength,
	)
}
