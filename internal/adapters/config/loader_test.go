package config_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/adapters/config"
	"go.trai.ch/scaffold/internal/adapters/fs"
	"go.trai.ch/scaffold/internal/core/domain"
)

const scaffoldYAML = `
version: "1"
project:
  title: Python 3 Project template
  description: A project template
  author: Dylan David Randall
  email: dylan@example.com
  version: 0.1.0
layout:
  dirs: [logs]
  packages: [injection, logger]
  packageMarker: __init__.py
  modules: [definitions.py, dependencies.txt]
manifest: deps/dependencies.txt
verbose: true
`

func newLoader(files fstest.MapFS, environ map[string]string) *config.Loader {
	l := config.NewLoader(fs.NewMapFSAdapter("/work", files))
	l.Environment = environ
	return l
}

func TestLoader_Load(t *testing.T) {
	l := newLoader(fstest.MapFS{
		"scaffold.yaml": {Data: []byte(scaffoldYAML)},
	}, map[string]string{})

	cfg, err := l.Load("/work/injection")
	require.NoError(t, err)

	assert.Equal(t, "/work/scaffold.yaml", cfg.ConfigFile)
	assert.Equal(t, domain.Project{
		Title:       "Python 3 Project template",
		Description: "A project template",
		Author:      "Dylan David Randall",
		Email:       "dylan@example.com",
		Version:     "0.1.0",
	}, cfg.Project)
	assert.Equal(t, domain.Layout{
		Dirs:          []string{"logs"},
		Packages:      []string{"injection", "logger"},
		PackageMarker: "__init__.py",
		Modules:       []string{"definitions.py", "dependencies.txt"},
	}, cfg.Layout)
	assert.Equal(t, domain.NewDefinitions("/work"), cfg.Definitions)
	assert.Equal(t, "/work/deps/dependencies.txt", cfg.Manifest)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.JSONLogs)
}

func TestLoader_Load_Defaults(t *testing.T) {
	l := newLoader(fstest.MapFS{}, map[string]string{})

	cfg, err := l.Load("/work")
	require.NoError(t, err)

	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, "work", cfg.Project.Title)
	assert.Equal(t, "0.0.0", cfg.Project.Version)
	assert.Equal(t, config.DefaultLayout(), cfg.Layout)
	assert.Equal(t, domain.NewDefinitions("/work"), cfg.Definitions)
	assert.Equal(t, "/work/dependencies.txt", cfg.Manifest)
	assert.False(t, cfg.Verbose)
}

func TestLoader_Load_RootAndLogs(t *testing.T) {
	l := newLoader(fstest.MapFS{
		"config/scaffold.yaml": {Data: []byte(`
root: ..
logs:
  dir: var/log
  error: failures.log
`)},
	}, map[string]string{})

	cfg, err := l.Load("/work/config")
	require.NoError(t, err)

	assert.Equal(t, "/work", cfg.Definitions.Root)
	assert.Equal(t, "/work/var/log", cfg.Definitions.LogDir)
	assert.Equal(t, "/work/var/log/info.log", cfg.Definitions.InfoLog)
	assert.Equal(t, "/work/var/log/failures.log", cfg.Definitions.ErrorLog)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	l := newLoader(fstest.MapFS{
		"scaffold.yaml": {Data: []byte(scaffoldYAML)},
	}, map[string]string{
		"SCAFFOLD_VERBOSE":   "false",
		"SCAFFOLD_JSON_LOGS": "true",
		"SCAFFOLD_LOG_DIR":   "/tmp/logs",
		"SCAFFOLD_INFO_LOG":  "general.log",
	})

	cfg, err := l.Load("/work")
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "/tmp/logs", cfg.Definitions.LogDir)
	assert.Equal(t, "/tmp/logs/general.log", cfg.Definitions.InfoLog)
	assert.Equal(t, "/tmp/logs/errors.log", cfg.Definitions.ErrorLog)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		l := newLoader(fstest.MapFS{
			"scaffold.yaml": {Data: []byte("layout: [unterminated")},
		}, map[string]string{})

		_, err := l.Load("/work")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
	})

	t.Run("invalid env", func(t *testing.T) {
		l := newLoader(fstest.MapFS{}, map[string]string{"SCAFFOLD_VERBOSE": "perhaps"})

		_, err := l.Load("/work")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigEnvFailed.Error())
	})
}
