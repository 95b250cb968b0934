// Package scanner collects the candidate files a rename plan operates on.
// It walks directories through the types.FS interface and never renames
// anything itself.
package scanner

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/renamr/pkg/config"
	"github.com/arthur-debert/renamr/pkg/errors"
	"github.com/arthur-debert/renamr/pkg/logging"
	"github.com/arthur-debert/renamr/pkg/paths"
	"github.com/arthur-debert/renamr/pkg/types"
)

// Scanner walks a directory and returns the files eligible for renaming.
type Scanner struct {
	fs     types.FS
	cfg    config.ScanConfig
	logger zerolog.Logger
}

// New creates a scanner over fs with the given scan configuration.
func New(fs types.FS, cfg config.ScanConfig) *Scanner {
	return &Scanner{
		fs:     fs,
		cfg:    cfg,
		logger: logging.GetLogger("scanner"),
	}
}

// Scan returns the files under dir, honoring the recursive and hidden-file
// settings. renamr's own rule files are never candidates.
func (s *Scanner) Scan(dir string) ([]types.FileEntry, error) {
	s.logger.Debug().
		Str("dir", dir).
		Bool("recursive", s.cfg.Recursive).
		Msg("Scanning directory")

	entries, err := s.scanDir(dir)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("fileCount", len(entries)).Msg("Scan complete")
	return entries, nil
}

func (s *Scanner) scanDir(dir string) ([]types.FileEntry, error) {
	dirEntries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanDir, "failed to read directory %s", dir)
	}

	var files []types.FileEntry
	for _, entry := range dirEntries {
		name := entry.Name()

		if s.isHidden(name) && !s.cfg.IncludeHidden {
			continue
		}

		if entry.IsDir() {
			if !s.cfg.Recursive {
				continue
			}
			sub, err := s.scanDir(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}

		if isOwnConfig(name) {
			continue
		}

		if !s.wantExtension(name) {
			continue
		}

		files = append(files, types.FileEntry{Dir: dir, Name: name})
	}

	return files, nil
}

// wantExtension reports whether name passes the extension filter. An empty
// filter admits everything. Filter entries match with or without the
// leading dot, ignoring case.
func (s *Scanner) wantExtension(name string) bool {
	if len(s.cfg.Extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, want := range s.cfg.Extensions {
		if strings.TrimPrefix(strings.ToLower(want), ".") == ext {
			return true
		}
	}
	return false
}

// isHidden reports whether a name is a hidden file or directory. Dotfiles
// are skipped by default: hidden files usually carry meaning in their exact
// name, and renaming them silently breaks things.
func (s *Scanner) isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// isOwnConfig reports whether name is one of renamr's rule files, which are
// never rename candidates even when hidden files are included.
func isOwnConfig(name string) bool {
	switch name {
	case paths.ConfigFileName, paths.GlobalConfigFileName, ".renamr.yaml", ".renamr.yml":
		return true
	}
	return false
}
