// Package app implements the application layer for repin.
package app

import (
	"context"
	"time"

	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports"
	"go.trai.ch/repin/internal/engine/rewrite"
	"go.trai.ch/repin/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

// DefaultDebounce is how long watch mode waits for the snapshot file to
// settle before syncing again.
const DefaultDebounce = 200 * time.Millisecond

// Log formats accepted by SetLogFormat.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.FileStore
	backups      ports.BackupStore
	reporter     ports.Reporter
	logger       ports.Logger
	watchers     ports.WatcherFactory
	workDir      string
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.FileStore,
	backups ports.BackupStore,
	reporter ports.Reporter,
	log ports.Logger,
	watchers ports.WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		backups:      backups,
		reporter:     reporter,
		logger:       log,
		watchers:     watchers,
		workDir:      ".",
		debounce:     DefaultDebounce,
	}
}

// WithWorkDir sets the directory searched for configuration files.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithDebounce sets the watch mode debounce window.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// SyncOptions holds the command line settings of a sync. They take
// precedence over the configuration file.
type SyncOptions struct {
	ConfigPath string
	Exempt     []string
	// ReportLimit overrides the configured limit when it is not negative.
	ReportLimit int
	DryRun      bool
	Backup      bool
	Watch       bool
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// SetLogFormat selects pretty or JSON log output.
func (a *App) SetLogFormat(format string) error {
	switch format {
	case LogFormatPretty, "":
		if l, ok := a.logger.(jsonSwitcher); ok {
			l.SetJSON(false)
		}
		return nil
	case LogFormatJSON:
		if l, ok := a.logger.(jsonSwitcher); ok {
			l.SetJSON(true)
		}
		return nil
	default:
		return zerr.With(domain.ErrInvalidLogFormat, "format", format)
	}
}

// Sync rewrites each declaration file in files with the versions found in
// the snapshot file. Only a missing or unreadable snapshot and a bad
// configuration are returned as errors; problems with individual files are
// logged and the remaining files are still processed. With opts.Watch set,
// Sync keeps running until ctx is done and syncs again whenever the
// snapshot file changes.
func (a *App) Sync(ctx context.Context, snapshotPath string, files []string, opts SyncOptions) error {
	if snapshotPath == "" || len(files) == 0 {
		return domain.ErrMissingArguments
	}

	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	rw := rewrite.NewRewriter(cfg.ExemptNames()...)
	if _, err := a.syncOnce(snapshotPath, files, cfg, rw); err != nil {
		return err
	}

	if !opts.Watch {
		return nil
	}
	return a.watch(ctx, snapshotPath, files, cfg, rw)
}

// resolveConfig loads the configuration file and applies the command line
// overrides on top of it.
func (a *App) resolveConfig(opts SyncOptions) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(a.workDir, opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	cfg.Exempt = append(cfg.Exempt, opts.Exempt...)
	if opts.ReportLimit >= 0 {
		cfg.ReportLimit = opts.ReportLimit
	}
	cfg.DryRun = cfg.DryRun || opts.DryRun
	cfg.Backup = cfg.Backup || opts.Backup

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// syncOnce runs one full pass: parse the snapshot, then rewrite every file
// in order.
func (a *App) syncOnce(
	snapshotPath string,
	files []string,
	cfg *domain.Config,
	rw *rewrite.Rewriter,
) ([]domain.FileSummary, error) {
	if !a.store.Exists(snapshotPath) {
		return nil, zerr.With(domain.ErrSnapshotNotFound, "path", snapshotPath)
	}

	a.reporter.OnSnapshotLoading(snapshotPath)
	lines, _, err := a.store.ReadLines(snapshotPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", snapshotPath)
	}
	snap := snapshot.Parse(lines)
	a.reporter.OnSnapshotLoaded(snapshotPath, snap.Len())

	summaries := make([]domain.FileSummary, 0, len(files))
	for _, path := range files {
		summary := a.syncFile(path, snap, cfg, rw)
		a.reporter.OnFileDone(summary, cfg.ReportLimit)
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (a *App) syncFile(
	path string,
	snap *domain.Snapshot,
	cfg *domain.Config,
	rw *rewrite.Rewriter,
) domain.FileSummary {
	summary := domain.FileSummary{Path: path}

	if !a.store.Exists(path) {
		a.logger.Warn(path + " not found, skipping")
		summary.Status = domain.FileSkipped
		return summary
	}

	a.reporter.OnFileStart(path, cfg.DryRun)

	lines, raw, err := a.store.ReadLines(path)
	if err != nil {
		a.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrDeclarationReadFailed.Error()), "path", path))
		summary.Status = domain.FileFailed
		return summary
	}

	result := rw.Rewrite(lines, snap)
	summary.Updated = result.Updated
	summary.NotFound = result.NotFound

	if cfg.DryRun {
		summary.Status = domain.FileDryRun
		return summary
	}

	if cfg.Backup {
		backupPath, err := a.backups.Save(path, raw)
		if err != nil {
			a.logger.Error(err)
			summary.Status = domain.FileFailed
			return summary
		}
		summary.BackupPath = backupPath
	}

	written, err := a.store.WriteLines(path, result.Lines, raw)
	if err != nil {
		a.logger.Error(err)
		summary.Status = domain.FileFailed
		return summary
	}

	summary.Status = domain.FileUnchanged
	if written {
		summary.Status = domain.FileWritten
	}
	return summary
}
