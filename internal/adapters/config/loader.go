// Package config provides the configuration loader for scaffold.
package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	FS ports.FileSystem
	// Environment replaces the process environment when set.
	Environment map[string]string
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys ports.FileSystem) *Loader {
	return &Loader{FS: fsys}
}

// DefaultLayout is the structure expected when the config file does not describe one.
func DefaultLayout() domain.Layout {
	return domain.Layout{
		Dirs:    []string{domain.LogDirName},
		Modules: []string{domain.ManifestFileName},
	}
}

// Load discovers scaffold.yaml from cwd upwards. Without one, the defaults rooted at
// cwd are used.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "cwd", cwd)
	}

	var file Scaffoldfile
	root := absCwd

	configPath, found := l.findConfiguration(absCwd)
	if found {
		if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
			return nil, err
		}
		root = resolvePath(filepath.Dir(configPath), file.Root)
	}

	overrides, err := env.ParseAsWithOptions[Overrides](env.Options{
		Prefix:      EnvPrefix,
		Environment: l.Environment,
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	cfg := &domain.Config{
		Project:     projectFrom(file.Project, root),
		Layout:      layoutFrom(file.Layout),
		Definitions: definitionsFrom(root, file.Logs, overrides),
		Manifest:    resolvePath(root, orDefault(file.Manifest, domain.ManifestFileName)),
		Verbose:     file.Verbose,
	}
	if found {
		cfg.ConfigFile = configPath
	}
	if overrides.Verbose != nil {
		cfg.Verbose = *overrides.Verbose
	}
	if overrides.JSONLogs != nil {
		cfg.JSONLogs = *overrides.JSONLogs
	}

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Scaffoldfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}

func projectFrom(dto ProjectDTO, root string) domain.Project {
	return domain.Project{
		Title:       orDefault(dto.Title, filepath.Base(root)),
		Description: dto.Description,
		Author:      dto.Author,
		Email:       dto.Email,
		Version:     orDefault(dto.Version, "0.0.0"),
		URL:         dto.URL,
	}
}

func layoutFrom(dto *LayoutDTO) domain.Layout {
	if dto == nil {
		return DefaultLayout()
	}
	return domain.Layout{
		Dirs:          dto.Dirs,
		Packages:      dto.Packages,
		PackageMarker: dto.PackageMarker,
		Modules:       dto.Modules,
	}
}

func definitionsFrom(root string, logs LogsDTO, overrides Overrides) domain.Definitions {
	defs := domain.NewDefinitions(root)

	logDir := orDefault(overrides.LogDir, logs.Dir)
	if logDir != "" {
		defs.LogDir = resolvePath(root, logDir)
		defs.InfoLog = filepath.Join(defs.LogDir, domain.InfoLogFile)
		defs.ErrorLog = filepath.Join(defs.LogDir, domain.ErrorLogFile)
	}
	if info := orDefault(overrides.InfoLog, logs.Info); info != "" {
		defs.InfoLog = resolvePath(defs.LogDir, info)
	}
	if errLog := orDefault(overrides.ErrorLog, logs.Error); errLog != "" {
		defs.ErrorLog = resolvePath(defs.LogDir, errLog)
	}
	return defs
}

// resolvePath resolves p against base unless it is absolute. An empty p yields base.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
