package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaffold/internal/app"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type logged struct {
	message string
	opts    domain.LogOptions
}

// recordingConsole is a ports.Console keeping every logged line in memory.
type recordingConsole struct {
	lines   []logged
	cleared int
}

func (c *recordingConsole) Log(message string, opts ...domain.LogOption) {
	c.lines = append(c.lines, logged{message: message, opts: domain.NewLogOptions(opts...)})
}

func (c *recordingConsole) ClearLogs() { c.cleared++ }

func (c *recordingConsole) State() domain.ConsoleState { return domain.ConsoleReady }

type fixture struct {
	loader    *mocks.MockConfigLoader
	validator *mocks.MockStructureValidator
	manifest  *mocks.MockManifestParser
	consoles  *mocks.MockConsoleFactory
	follower  *mocks.MockLogFollower
	logger    *mocks.MockLogger
	console   *recordingConsole
	cfg       *domain.Config
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		validator: mocks.NewMockStructureValidator(ctrl),
		manifest:  mocks.NewMockManifestParser(ctrl),
		consoles:  mocks.NewMockConsoleFactory(ctrl),
		follower:  mocks.NewMockLogFollower(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		console:   &recordingConsole{},
		cfg: &domain.Config{
			Project:     domain.Project{Title: "demo", Author: "Ada", Email: "ada@example.com", Version: "1.0.0"},
			Layout:      domain.Layout{Dirs: []string{"logs"}, Modules: []string{"dependencies.txt"}},
			Definitions: domain.NewDefinitions("/demo"),
			Manifest:    "/demo/dependencies.txt",
		},
	}
	f.app = app.New(f.loader, f.validator, f.manifest, f.consoles, f.follower, f.logger).WithWorkingDir("/demo/sub")

	f.loader.EXPECT().Load("/demo/sub").Return(f.cfg, nil).AnyTimes()
	f.consoles.EXPECT().Open(gomock.Any(), f.cfg.Definitions.LogConfig(false)).Return(f.console, nil).AnyTimes()

	return f
}

func okReport() *domain.StructureReport {
	r := &domain.StructureReport{}
	r.Add(domain.EntryDirectory, "logs", true)
	r.Add(domain.EntryModule, "dependencies.txt", true)
	return r
}

func TestApp_Check(t *testing.T) {
	f := newFixture(t)
	f.validator.EXPECT().Validate("/demo", f.cfg.Layout).Return(okReport(), nil)

	var out bytes.Buffer
	require.NoError(t, f.app.Check(context.Background(), &out))

	assert.Contains(t, out.String(), "directory: logs")
	assert.Contains(t, out.String(), "module: dependencies.txt")
	assert.Contains(t, out.String(), "project...OK")
	require.Len(t, f.console.lines, 1)
	assert.Equal(t, "check", f.console.lines[0].opts.Tag)
}

func TestApp_Check_Invalid(t *testing.T) {
	f := newFixture(t)
	report := &domain.StructureReport{}
	report.Add(domain.EntryDirectory, "logs", false)
	invalid := zerr.Wrap(domain.ErrInvalidDirectory, "directory: logs is invalid")
	f.validator.EXPECT().Validate("/demo", f.cfg.Layout).Return(report, invalid)

	var out bytes.Buffer
	err := f.app.Check(context.Background(), &out)

	require.ErrorIs(t, err, domain.ErrInvalidDirectory)
	assert.Equal(t, domain.ExitInvalidDirectory, domain.ExitCode(err))
	assert.Contains(t, out.String(), "directory: logs")
	assert.NotContains(t, out.String(), "project...OK")
	require.Len(t, f.console.lines, 1)
	assert.True(t, f.console.lines[0].opts.Error)
}

func TestApp_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, domain.ErrConfigParseFailed)

	a := app.New(loader, nil, nil, nil, nil, mocks.NewMockLogger(ctrl))
	err := a.Check(context.Background(), &bytes.Buffer{})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_ConsoleOpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	consoles := mocks.NewMockConsoleFactory(ctrl)
	loader.EXPECT().Load(".").Return(&domain.Config{}, nil)
	consoles.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConsoleOpenFailed)

	a := app.New(loader, nil, nil, consoles, nil, mocks.NewMockLogger(ctrl))
	require.ErrorIs(t, a.Log(context.Background(), "x"), domain.ErrConsoleOpenFailed)
}

func TestApp_Dependencies(t *testing.T) {
	f := newFixture(t)
	deps := []domain.Dependency{
		{Name: "requests", Version: "-1"},
		{Name: "flask", Version: "==2.3.0"},
	}
	f.manifest.EXPECT().Parse("/demo/dependencies.txt").Return(deps, nil)

	var out bytes.Buffer
	got, err := f.app.Dependencies(context.Background(), &out)
	require.NoError(t, err)

	assert.Equal(t, deps, got)
	assert.Equal(t, "requests (latest)\nflask==2.3.0\n", out.String())
}

func TestApp_Dependencies_Missing(t *testing.T) {
	f := newFixture(t)
	f.manifest.EXPECT().Parse("/demo/dependencies.txt").Return(nil, zerr.Wrap(domain.ErrManifestNotFound, "missing"))

	_, err := f.app.Dependencies(context.Background(), &bytes.Buffer{})
	assert.Equal(t, domain.ExitManifestNotFound, domain.ExitCode(err))
}

func TestApp_Setup(t *testing.T) {
	f := newFixture(t)
	f.validator.EXPECT().Validate("/demo", f.cfg.Layout).Return(okReport(), nil)
	f.manifest.EXPECT().Parse("/demo/dependencies.txt").Return([]domain.Dependency{{Name: "requests", Version: "-1"}}, nil)

	var out bytes.Buffer
	require.NoError(t, f.app.Setup(context.Background(), &out))

	for _, want := range []string{
		"demo", "Author: Ada", "Email: ada@example.com", "Version: 1.0.0",
		"checking project structure...", "project...OK",
		"setting up dependencies...", "requests\n", "quick setup finished",
	} {
		assert.Contains(t, out.String(), want)
	}
	assert.Len(t, f.console.lines, 3)
}

func TestApp_Setup_StopsOnInvalidStructure(t *testing.T) {
	f := newFixture(t)
	f.validator.EXPECT().Validate("/demo", f.cfg.Layout).Return(&domain.StructureReport{}, domain.ErrInvalidModule)

	var out bytes.Buffer
	err := f.app.Setup(context.Background(), &out)
	assert.Equal(t, domain.ExitInvalidModule, domain.ExitCode(err))
	assert.NotContains(t, out.String(), "setting up dependencies")
}

func TestApp_Log(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.Log(context.Background(), "hello", domain.AsError(), domain.WithTag("cli")))
	require.Len(t, f.console.lines, 1)
	assert.Equal(t, logged{message: "hello", opts: domain.LogOptions{Error: true, Tag: "cli"}}, f.console.lines[0])
}

func TestApp_ClearLogs(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info("logs cleared")

	require.NoError(t, f.app.ClearLogs(context.Background()))
	assert.Equal(t, 1, f.console.cleared)
}

func TestApp_Resource(t *testing.T) {
	f := newFixture(t)

	path, err := f.app.Resource(context.Background(), "Error Log")
	require.NoError(t, err)
	assert.Equal(t, f.cfg.Definitions.ErrorLog, path)

	_, err = f.app.Resource(context.Background(), "cache")
	require.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestApp_FollowLogs(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer

	f.logger.EXPECT().Info(gomock.Any()).Times(2)
	f.follower.EXPECT().Follow(gomock.Any(), f.cfg.Definitions.ErrorLog, &out).Return(context.Canceled)
	require.NoError(t, f.app.FollowLogs(context.Background(), &out, true))

	boom := errors.New("watch limit reached")
	f.follower.EXPECT().Follow(gomock.Any(), f.cfg.Definitions.InfoLog, &out).Return(boom)
	require.ErrorIs(t, f.app.FollowLogs(context.Background(), &out, false), boom)
}
