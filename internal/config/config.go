package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/dshills/procon/internal/properties"
)

// Config represents the procon configuration.
type Config struct {
	Delimiter string `yaml:"delimiter"`
	LogLevel  string `yaml:"logLevel"`
	Sort      bool   `yaml:"sort"`
	Indent    int    `yaml:"indent"`
	Color     string `yaml:"color"`
}

// File is the on-disk form of Config. Keys missing from the file stay nil
// and leave the defaults alone, so an explicit "sort: false" still counts.
type File struct {
	Delimiter *string `yaml:"delimiter,omitempty"`
	LogLevel  *string `yaml:"logLevel,omitempty"`
	Sort      *bool   `yaml:"sort,omitempty"`
	Indent    *int    `yaml:"indent,omitempty"`
	Color     *string `yaml:"color,omitempty"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Delimiter: properties.Equals.String(),
		LogLevel:  "warn",
		Sort:      false,
		Indent:    2,
		Color:     ColorAuto,
	}
}

// ConfigDir returns the platform-appropriate config directory for procon.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "procon"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "procon"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "procon"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "procon"), nil
	default:
		return filepath.Join(home, ".config", "procon"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads the config file. A missing file yields an empty File and no
// error.
func LoadFile() (File, error) {
	path, err := ConfigPath()
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return f, nil
}

// Save writes cfg to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only flags the user set should be present).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	ApplyFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyFile copies the keys present in src onto dst.
func ApplyFile(dst *Config, src File) {
	if src.Delimiter != nil {
		dst.Delimiter = *src.Delimiter
	}
	if src.LogLevel != nil {
		dst.LogLevel = *src.LogLevel
	}
	if src.Sort != nil {
		dst.Sort = *src.Sort
	}
	if src.Indent != nil {
		dst.Indent = *src.Indent
	}
	if src.Color != nil {
		dst.Color = *src.Color
	}
}

var envKeys = map[string]string{
	"PROCON_DELIMITER": "delimiter",
	"PROCON_LOG_LEVEL": "logLevel",
	"PROCON_SORT":      "sort",
	"PROCON_INDENT":    "indent",
	"PROCON_COLOR":     "color",
}

func mergeEnv(cfg *Config) error {
	for env, key := range envKeys {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, v := range overrides {
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is
// unknown or the value does not parse.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "delimiter":
		d, err := properties.ParseDelimiter(value)
		if err != nil {
			return err
		}
		cfg.Delimiter = d.String()
	case "logLevel":
		if _, err := parseLevel(value); err != nil {
			return err
		}
		cfg.LogLevel = strings.ToLower(value)
	case "sort":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("sort must be a boolean: %w", err)
		}
		cfg.Sort = b
	case "indent":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("indent must be an integer: %w", err)
		}
		cfg.Indent = n
	case "color":
		cfg.Color = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return cfg.Validate()
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := properties.ParseDelimiter(c.Delimiter); err != nil {
		return err
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 1 and 8, got %d", c.Indent)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}

// DelimiterValue returns the configured properties delimiter.
func (c Config) DelimiterValue() properties.Delimiter {
	d, _ := properties.ParseDelimiter(c.Delimiter)
	return d
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}
