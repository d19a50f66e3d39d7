package domain

import "path/filepath"

const (
	// PinOperator is the exact-version equality marker.
	PinOperator = "=="

	// CommentPrefix starts a comment line in snapshot and declaration files.
	CommentPrefix = "#"

	// VCSPrefix marks a declaration line that installs from a version control URL.
	VCSPrefix = "git+"

	// LocalFilePrefix marks a snapshot line that refers to a local path instead of a pinned release.
	LocalFilePrefix = "file://"

	// RepinDirName is the name of the internal working directory.
	RepinDirName = ".repin"

	// BackupDirName is the name of the backup store directory.
	BackupDirName = "backups"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = ".repin.yaml"

	// PyProjectFileName is the name of the Python project file that may carry a [tool.repin] table.
	PyProjectFileName = "pyproject.toml"

	// DefaultReportLimit is how many unmatched package names are listed per file.
	DefaultReportLimit = 5

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultExemptNames lists packages that are expected to be absent from a snapshot.
// They are accelerator builds installed from a separate index, so a missing
// snapshot entry for them is never reported. Configuration can extend the list.
var DefaultExemptNames = []string{"jax", "jaxlib"}

// DefaultBackupPath returns the default path for the backup store.
// It joins .repin and backups.
func DefaultBackupPath() string {
	return filepath.Join(RepinDirName, BackupDirName)
}
