package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingArguments is returned when the snapshot file or every declaration file is missing from the command line.
	ErrMissingArguments = zerr.New("expected a snapshot file and at least one declaration file")

	// ErrSnapshotNotFound is returned when the installed package snapshot does not exist.
	ErrSnapshotNotFound = zerr.New("snapshot file not found")

	// ErrSnapshotReadFailed is returned when the snapshot file exists but cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot file")

	// ErrDeclarationNotFound is returned when a declaration file does not exist.
	ErrDeclarationNotFound = zerr.New("declaration file not found")

	// ErrDeclarationReadFailed is returned when a declaration file cannot be read.
	ErrDeclarationReadFailed = zerr.New("failed to read declaration file")

	// ErrDeclarationWriteFailed is returned when a rewritten declaration file cannot be written back.
	ErrDeclarationWriteFailed = zerr.New("failed to write declaration file")

	// ErrBackupCreateFailed is returned when the backup directory cannot be created.
	ErrBackupCreateFailed = zerr.New("failed to create backup directory")

	// ErrBackupWriteFailed is returned when the original content cannot be saved to the backup store.
	ErrBackupWriteFailed = zerr.New("failed to write backup")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidReportLimit is returned when the configured report limit is negative.
	ErrInvalidReportLimit = zerr.New("report limit must not be negative")

	// ErrInvalidLogFormat is returned when an unknown log format is requested.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrWatchFailed is returned when the snapshot file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch snapshot file")
)
