package ports

import "go.trai.ch/repin/internal/core/domain"

// Reporter presents sync progress to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnSnapshotLoading is called before the snapshot file is parsed.
	OnSnapshotLoading(path string)

	// OnSnapshotLoaded is called with the number of installed packages found.
	OnSnapshotLoaded(path string, packages int)

	// OnFileStart is called before a declaration file is rewritten.
	OnFileStart(path string, dryRun bool)

	// OnFileDone is called with the outcome of a declaration file. At most
	// reportLimit not-found names are listed.
	OnFileDone(summary domain.FileSummary, reportLimit int)
}
