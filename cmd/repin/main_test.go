package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repin/internal/adapters/fs"
	"go.trai.ch/repin/internal/app"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger, *mocks.MockReporter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	reporter := mocks.NewMockReporter(ctrl)

	application := app.New(
		loader,
		fs.NewStore(),
		mocks.NewMockBackupStore(ctrl),
		reporter,
		log,
		mocks.NewMockWatcherFactory(ctrl),
	)
	return &app.Components{App: application, Logger: log}, loader, log, reporter
}

func providerFor(c *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return c, func() {}, nil
	}
}

func TestRun_Version(t *testing.T) {
	c, _, _, _ := newComponents(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), providerFor(c))

	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_MissingArguments(t *testing.T) {
	c, _, log, _ := newComponents(t)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrMissingArguments.Error())
	})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"installed.txt"}, stderr, providerFor(c))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRun_SnapshotNotFound(t *testing.T) {
	c, loader, log, _ := newComponents(t)
	dir := t.TempDir()
	loader.EXPECT().Load(".", "").Return(domain.DefaultConfig(), nil)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrSnapshotNotFound.Error())
	})

	args := []string{filepath.Join(dir, "missing.txt"), filepath.Join(dir, "requirements.txt")}
	exitCode := run(context.Background(), args, new(bytes.Buffer), providerFor(c))

	assert.Equal(t, 1, exitCode)
}

func TestRun_Sync(t *testing.T) {
	c, loader, _, reporter := newComponents(t)
	dir := t.TempDir()
	snap := filepath.Join(dir, "installed.txt")
	reqs := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(snap, []byte("requests==2.31.0\n"), domain.FilePerm))
	require.NoError(t, os.WriteFile(reqs, []byte("requests\n"), domain.FilePerm))

	loader.EXPECT().Load(dir, "").Return(domain.DefaultConfig(), nil)
	reporter.EXPECT().OnSnapshotLoading(snap)
	reporter.EXPECT().OnSnapshotLoaded(snap, 1)
	reporter.EXPECT().OnFileStart(reqs, false)
	reporter.EXPECT().OnFileDone(gomock.Any(), domain.DefaultReportLimit)

	withDir := func(a *app.App) { a.WithWorkDir(dir) }
	exitCode := run(context.Background(), []string{snap, reqs}, new(bytes.Buffer), providerFor(c), withDir)

	assert.Equal(t, 0, exitCode)
	data, err := os.ReadFile(reqs)
	require.NoError(t, err)
	assert.Equal(t, "requests==2.31.0\n", string(data))
}
