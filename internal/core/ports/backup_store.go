package ports

// BackupStore keeps the original content of files before they are overwritten.
//
//go:generate go run go.uber.org/mock/mockgen -source=backup_store.go -destination=mocks/mock_backup_store.go -package=mocks
type BackupStore interface {
	// Save stores content as a backup of path and returns where it was stored.
	Save(path string, content []byte) (string, error)
}
