// Package config loads and persists renamr's rule configuration.
//
// Configuration is layered, later sources overriding earlier ones:
//
//  1. built-in defaults (embedded TOML)
//  2. the global config file under the XDG config directory
//  3. a per-directory rule file (.renamr.toml or .renamr.yaml) in the
//     directory being renamed
//  4. RENAMR_* environment variables
//
// The serialized Rule record is the interchange form of the evaluator's
// rules.RemoveRule; ToRuleSet converts and validates it.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/renamr/pkg/errors"
	"github.com/arthur-debert/renamr/pkg/logging"
	"github.com/arthur-debert/renamr/pkg/paths"
	"github.com/arthur-debert/renamr/pkg/rules"
)

// Rule is the serialized form of a removal rule as it appears in
// configuration files.
type Rule struct {
	Text            string `koanf:"text" toml:"text" yaml:"text" json:"text"`
	Position        string `koanf:"position" toml:"position" yaml:"position" json:"position"`
	CaseSensitive   bool   `koanf:"case_sensitive" toml:"case_sensitive" yaml:"case_sensitive" json:"case_sensitive"`
	IgnoreExtension bool   `koanf:"ignore_extension" toml:"ignore_extension" yaml:"ignore_extension" json:"ignore_extension"`
}

// ScanConfig controls how the scanner collects candidate files.
type ScanConfig struct {
	Recursive     bool `koanf:"recursive" toml:"recursive" yaml:"recursive" json:"recursive"`
	IncludeHidden bool `koanf:"include_hidden" toml:"include_hidden" yaml:"include_hidden" json:"include_hidden"`

	// Extensions restricts scanning to the listed file extensions, with or
	// without the leading dot. Empty means every file.
	Extensions []string `koanf:"extensions" toml:"extensions,omitempty" yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Config is the full renamr configuration.
type Config struct {
	Scan  ScanConfig `koanf:"scan" toml:"scan" yaml:"scan" json:"scan"`
	Rules []Rule     `koanf:"rules" toml:"rules" yaml:"rules" json:"rules"`
}

// Load builds the layered configuration for renaming files in dir.
// dir may be empty to skip the per-directory layer.
func Load(dir string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Global config file, if present
	p := paths.New()
	global := p.GlobalConfigFile()
	if _, err := os.Stat(global); err == nil {
		if err := k.Load(file.Provider(global), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", global)
		}
		logger.Debug().Str("path", global).Msg("Loaded global config")
	}

	// 3. Per-directory rule file
	if dir != "" {
		if path, parser := findDirConfig(dir); path != "" {
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded directory config")
		}
	}

	// 4. Environment overrides: RENAMR_SCAN_RECURSIVE=true etc.
	if err := k.Load(env.Provider("RENAMR_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "RENAMR_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	logger.Debug().Int("ruleCount", len(cfg.Rules)).Msg("Configuration loaded")
	return &cfg, nil
}

// findDirConfig locates a per-directory rule file, TOML names first.
func findDirConfig(dir string) (string, koanf.Parser) {
	type candidate struct {
		name   string
		parser koanf.Parser
	}
	candidates := []candidate{
		{paths.ConfigFileName, toml.Parser()},
		{paths.GlobalConfigFileName, toml.Parser()},
		{".renamr.yaml", yaml.Parser()},
		{".renamr.yml", yaml.Parser()},
	}
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if _, err := os.Stat(path); err == nil {
			return path, c.parser
		}
	}
	return "", nil
}

// ToRuleSet converts the serialized rules into the evaluator's typed form,
// validating position names.
func (c *Config) ToRuleSet() (rules.RuleSet, error) {
	set := make(rules.RuleSet, 0, len(c.Rules))
	for i, r := range c.Rules {
		pos, err := rules.ParsePosition(r.Position)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "rule %d", i)
		}
		set = append(set, rules.RemoveRule{
			Text:            r.Text,
			Position:        pos,
			CaseSensitive:   r.CaseSensitive,
			IgnoreExtension: r.IgnoreExtension,
		})
	}
	return set, nil
}

// FromRuleSet converts a typed rule set back to the serialized form, for
// saving or exporting.
func FromRuleSet(set rules.RuleSet) []Rule {
	out := make([]Rule, 0, len(set))
	for _, r := range set {
		out = append(out, Rule{
			Text:            r.Text,
			Position:        r.Position.String(),
			CaseSensitive:   r.CaseSensitive,
			IgnoreExtension: r.IgnoreExtension,
		})
	}
	return out
}
