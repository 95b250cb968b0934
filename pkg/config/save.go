package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"
	goyaml "gopkg.in/yaml.v3"

	"github.com/arthur-debert/renamr/pkg/errors"
)

// EncodeTOML renders the configuration as TOML, the canonical on-disk form.
func (c *Config) EncodeTOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode TOML")
	}
	return data, nil
}

// EncodeYAML renders the configuration as YAML for export.
func (c *Config) EncodeYAML() ([]byte, error) {
	data, err := goyaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode YAML")
	}
	return data, nil
}

// EncodeJSON renders the configuration as indented JSON for export.
func (c *Config) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode JSON")
	}
	return data, nil
}

// Save writes the configuration to path as TOML, creating parent
// directories as needed. Existing files are overwritten.
func (c *Config) Save(path string) error {
	data, err := c.EncodeTOML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
	}
	return nil
}
