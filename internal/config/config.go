package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration, stored in ~/.woffu/config.json.
// The file supports single-line // comments for documentation purposes.
// The bearer token is intentionally not configurable here; it is supplied
// per run with --token.
type Config struct {
	Fill FillConfig `json:"fill"`
}

// FillConfig holds defaults for the fill command. Command-line flags
// override these values.
type FillConfig struct {
	// Template is the path to the HTTP request template file.
	Template string `json:"template"`
	// OutputDir is the base directory for per-run request directories.
	OutputDir string `json:"output_dir"`
	// DelaySeconds is the pause between executed requests.
	DelaySeconds int `json:"delay_seconds"`
	// InsecureSkipVerify disables TLS certificate verification. Only set
	// this for a Woffu deployment behind a proxy with an untrusted
	// certificate.
	InsecureSkipVerify bool `json:"insecure_skip_verify"`
}

const (
	// DefaultTemplate is the template path used when none is configured.
	DefaultTemplate = "template.http"
	// DefaultOutputDir is the base directory for generated request files.
	DefaultOutputDir = "requests"
	// DefaultDelaySeconds is the pause between executed requests.
	DefaultDelaySeconds = 1
)

// defaultConfig returns a Config pre-filled with built-in defaults.
func defaultConfig() Config {
	return Config{
		Fill: FillConfig{
			Template:     DefaultTemplate,
			OutputDir:    DefaultOutputDir,
			DelaySeconds: DefaultDelaySeconds,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// WoffuAutomatizer configuration – ~/.woffu/config.json
//
// All settings are optional; command-line flags override them.
// The bearer token is never read from this file – pass it with --token.
{
  "fill": {
    // Path to the HTTP request template file.
    "template": "template.http",

    // Base directory for generated request files. Each run creates a
    // timestamped subdirectory unless --output-dir is given.
    "output_dir": "requests",

    // Seconds to pause between executed requests (rate-limit courtesy).
    "delay_seconds": 1,

    // Disable TLS certificate verification. Equivalent to passing
    // --insecure-skip-verify on every run.
    "insecure_skip_verify": false
  }
}
`

// configFilePath returns the path to ~/.woffu/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".woffu", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.woffu/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Fill.Template == "" {
		cfg.Fill.Template = DefaultTemplate
	}
	if cfg.Fill.OutputDir == "" {
		cfg.Fill.OutputDir = DefaultOutputDir
	}
	if cfg.Fill.DelaySeconds <= 0 {
		cfg.Fill.DelaySeconds = DefaultDelaySeconds
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
