// Package config assembles the checker configuration from defaults, an
// optional repository-local YAML file, and runtime overrides. Assembly is a
// pure function; nothing in the core reads configuration ambiently.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/contribcheck/contribcheck/internal/logging"
)

// File is the repository-relative path of the optional config file.
const File = ".github/contrib-metadata-check.yml"

const (
	// ModeWarn reports missing contributors without failing the check.
	ModeWarn = "warn"
	// ModeFail makes the check fail when contributors are missing.
	ModeFail = "fail"
)

// Config controls check behavior and identity filtering.
type Config struct {
	Mode         string   `yaml:"mode"`
	IgnoreEmails []string `yaml:"ignore_emails"`
	IgnoreLogins []string `yaml:"ignore_logins"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:         ModeWarn,
		IgnoreEmails: []string{"dependabot[bot]@users.noreply.github.com"},
		IgnoreLogins: []string{"dependabot[bot]"},
	}
}

// Overrides are runtime inputs (CLI flags or CI environment variables) with
// the highest priority. Zero-valued fields leave the lower layers untouched;
// a set list replaces the configured list entirely, it is never merged.
type Overrides struct {
	Mode         string
	IgnoreEmails []string
	IgnoreLogins []string
}

// fileConfig distinguishes absent keys from present-but-empty ones, so a
// config file can deliberately clear an ignore list.
type fileConfig struct {
	Mode         *string   `yaml:"mode"`
	IgnoreEmails *[]string `yaml:"ignore_emails"`
	IgnoreLogins *[]string `yaml:"ignore_logins"`
}

// Load assembles a Config: defaults, then the YAML file at path (if it
// exists and parses), then the overrides. A malformed file is logged and
// skipped rather than aborting the check.
func Load(defaults Config, path string, ov Overrides) Config {
	cfg := defaults

	if data, err := os.ReadFile(path); err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			log := logging.Default()
			log.Warn().Err(err).Str("file", path).Msg("ignoring malformed config file")
		} else {
			if fc.Mode != nil {
				cfg.Mode = *fc.Mode
			}
			if fc.IgnoreEmails != nil {
				cfg.IgnoreEmails = *fc.IgnoreEmails
			}
			if fc.IgnoreLogins != nil {
				cfg.IgnoreLogins = *fc.IgnoreLogins
			}
		}
	}

	if ov.Mode != "" {
		cfg.Mode = ov.Mode
	}
	if ov.IgnoreEmails != nil {
		cfg.IgnoreEmails = ov.IgnoreEmails
	}
	if ov.IgnoreLogins != nil {
		cfg.IgnoreLogins = ov.IgnoreLogins
	}
	return cfg
}

// SplitList parses a comma-separated environment value into a list override.
// It returns nil for a blank value so the lower-priority layers win.
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
