// Package config loads repin settings from .repin.yaml or pyproject.toml.
package config

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	fs FileSystem
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader reading from the real filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFS(OSFS{})
}

// NewLoaderWithFS creates a Loader reading through fsys.
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load returns the configuration for a run started in cwd.
//
// An explicit path must exist and is read as YAML. Without one, .repin.yaml
// in cwd is used, then the [tool.repin] table of pyproject.toml. When none
// is present the defaults are returned.
func (l *Loader) Load(cwd, explicitPath string) (*domain.Config, error) {
	if explicitPath != "" {
		return l.loadYAML(explicitPath)
	}

	yamlPath := filepath.Join(cwd, domain.ConfigFileName)
	if l.exists(yamlPath) {
		return l.loadYAML(yamlPath)
	}

	pyPath := filepath.Join(cwd, domain.PyProjectFileName)
	if l.exists(pyPath) {
		return l.loadPyProject(pyPath)
	}

	return domain.DefaultConfig(), nil
}

func (l *Loader) exists(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func (l *Loader) loadYAML(path string) (*domain.Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return apply(&fc, path)
}

func (l *Loader) loadPyProject(path string) (*domain.Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var doc pyProject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	if doc.Tool.Repin == nil {
		return domain.DefaultConfig(), nil
	}

	return apply(doc.Tool.Repin, path)
}

// apply overlays fc on the defaults and validates the result.
func apply(fc *FileConfig, path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Exempt = fc.Exempt
	if fc.ReportLimit != nil {
		cfg.ReportLimit = *fc.ReportLimit
	}
	if fc.Backup != nil {
		cfg.Backup = *fc.Backup
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}
