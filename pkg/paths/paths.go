// Package paths provides centralized path handling for renamr.
// It implements XDG Base Directory specification compliance so rule
// configuration, state and logs land in conventional locations.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for renamr
	EnvConfigDir = "RENAMR_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for renamr
	EnvStateDir = "RENAMR_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for renamr-specific files
	AppDirName = "renamr"

	// ConfigFileName is the name of the per-directory rule file
	ConfigFileName = ".renamr.toml"

	// GlobalConfigFileName is the name of the global rule file
	GlobalConfigFileName = "renamr.toml"

	// LogFileName is the name of the log file
	LogFileName = "renamr.log"
)

// Paths resolves the directories renamr reads and writes.
type Paths struct {
	configDir string
	stateDir  string
}

// New creates a Paths instance, honoring the override environment
// variables before falling back to the XDG base directories.
func New() *Paths {
	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return &Paths{configDir: configDir, stateDir: stateDir}
}

// ConfigDir returns the directory holding the global rule configuration.
func (p *Paths) ConfigDir() string { return p.configDir }

// StateDir returns the directory holding state such as logs.
func (p *Paths) StateDir() string { return p.stateDir }

// GlobalConfigFile returns the path of the global rule configuration file.
func (p *Paths) GlobalConfigFile() string {
	return filepath.Join(p.configDir, GlobalConfigFileName)
}

// LogFile returns the path of the log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// DirConfigFile returns the path of the per-directory rule file for dir.
func DirConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}
