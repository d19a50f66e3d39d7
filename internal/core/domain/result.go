package domain

// RewriteResult is the outcome of rewriting one declaration file in memory.
type RewriteResult struct {
	// Lines has the same length and order as the input lines.
	Lines []string
	// Updated counts the lines whose pinned version changed.
	Updated int
	// NotFound lists normalized package names with no snapshot entry, in first-seen order.
	NotFound []string
}

// FileStatus describes what happened to a declaration file during a sync.
type FileStatus int

const (
	// FileWritten means the rewritten content replaced the file.
	FileWritten FileStatus = iota
	// FileUnchanged means the rewritten content was identical and the file was not touched.
	FileUnchanged
	// FileDryRun means the file was only checked.
	FileDryRun
	// FileSkipped means the file did not exist.
	FileSkipped
	// FileFailed means reading, backing up or writing the file failed.
	FileFailed
)

// String returns the status name.
func (s FileStatus) String() string {
	switch s {
	case FileWritten:
		return "written"
	case FileUnchanged:
		return "unchanged"
	case FileDryRun:
		return "dry-run"
	case FileSkipped:
		return "skipped"
	case FileFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileSummary reports the sync outcome for one declaration file.
type FileSummary struct {
	Path     string
	Status   FileStatus
	Updated  int
	NotFound []string
	// BackupPath is where the original content was saved, if a backup was taken.
	BackupPath string
}
