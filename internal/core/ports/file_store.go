package ports

// FileStore reads and writes line-oriented text files.
//
//go:generate go run go.uber.org/mock/mockgen -source=file_store.go -destination=mocks/mock_file_store.go -package=mocks
type FileStore interface {
	// Exists reports whether path names an existing regular file.
	Exists(path string) bool

	// ReadLines returns the lines of the file without their line endings,
	// together with the raw bytes that were read.
	ReadLines(path string) (lines []string, raw []byte, err error)

	// WriteLines replaces the file with lines, each followed by a newline.
	// It reports false when the encoded content equals current and nothing was written.
	WriteLines(path string, lines []string, current []byte) (bool, error)
}
