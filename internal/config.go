package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no --config is given
const DefaultConfigFile = ".messenger-export.yml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "MESSENGER_EXPORT_"

// SupportedOutputTypes lists the renderer names accepted by convert --type
var SupportedOutputTypes = []string{"html", "txt", "log", "md", "markdown", "json", "yaml", "jsonl"}

// Config holds the settings shared by every command
type Config struct {
	Username   string `yaml:"username"`
	Locale     string `yaml:"locale"`
	MediaDir   string `yaml:"media_dir"`
	StickerDir string `yaml:"sticker_dir"`
	OutputType string `yaml:"type"`
	WriteLog   bool   `yaml:"log"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Locale:     string(LocaleEN),
		OutputType: "html",
		LogLevel:   "info",
	}
}

// LoadConfig layers defaults, the YAML file and the environment.
// An empty path falls back to DefaultConfigFile, which may be absent;
// an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		LogWarn("Ignoring .env: %v", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := cfg.loadFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, &PathNotFoundError{Role: "config", Path: path}
			}
		} else {
			return nil, err
		}
	} else {
		LogDebug("Loaded config from %s", path)
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ParseError{Source: path, Err: fmt.Errorf("failed to parse config YAML: %w", err)}
	}
	return nil
}

func (c *Config) loadEnv() error {
	strs := map[string]*string{
		"USERNAME":    &c.Username,
		"LOCALE":      &c.Locale,
		"MEDIA_DIR":   &c.MediaDir,
		"STICKER_DIR": &c.StickerDir,
		"TYPE":        &c.OutputType,
		"LOG_LEVEL":   &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "LOG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ParseError{Source: "environment", Key: EnvPrefix + "LOG", Err: err}
		}
		c.WriteLog = b
	}
	return nil
}

// Validate checks the locale, output type and log level
func (c *Config) Validate() error {
	locale, err := ParseLocale(c.Locale)
	if err != nil {
		return err
	}
	c.Locale = string(locale)

	c.OutputType = strings.ToLower(strings.TrimSpace(c.OutputType))
	if !IsSupportedOutputType(c.OutputType) {
		return fmt.Errorf("unsupported output type %q (supported: %s)", c.OutputType, strings.Join(SupportedOutputTypes, ", "))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// IsSupportedOutputType reports whether t names a known renderer
func IsSupportedOutputType(t string) bool {
	for _, s := range SupportedOutputTypes {
		if s == t {
			return true
		}
	}
	return false
}
