// Package linear writes the sync report as plain sequential lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/repin/internal/adapters/detector"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports"
	"go.trai.ch/repin/internal/ui/output"
	"go.trai.ch/repin/internal/ui/style"
)

// Reporter implements ports.Reporter. It is safe for concurrent use, which
// watch mode relies on.
type Reporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

var _ ports.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to w, or to stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{out: output.NewWithProfile(w, detector.ColorProfile)}
}

// OnSnapshotLoading announces the snapshot file being read.
func (r *Reporter) OnSnapshotLoading(path string) {
	r.printf(nil, "Reading installed packages from %s...\n", path)
}

// OnSnapshotLoaded prints the number of installed packages.
func (r *Reporter) OnSnapshotLoaded(_ string, packages int) {
	r.printf(nil, "Found %d installed packages\n\n", packages)
}

// OnFileStart announces a declaration file.
func (r *Reporter) OnFileStart(path string, dryRun bool) {
	verb := "Updating"
	if dryRun {
		verb = "Checking"
	}
	r.printf(nil, "%s %s...\n", verb, path)
}

// OnFileDone prints the outcome of a declaration file. Skipped files print
// nothing; the caller logs them.
func (r *Reporter) OnFileDone(summary domain.FileSummary, reportLimit int) {
	switch summary.Status {
	case domain.FileSkipped:
		return
	case domain.FileFailed:
		r.printf(nil, "\n")
		return
	}

	verb := "Updated"
	if summary.Status == domain.FileDryRun {
		verb = "Would update"
	}
	var color termenv.Color
	if summary.Updated > 0 {
		color = termenv.RGBColor(string(style.Green))
	}
	r.printf(color, "  %s %d package versions\n", verb, summary.Updated)

	if summary.BackupPath != "" {
		r.printf(termenv.RGBColor(string(style.Slate)), "  Backed up original to %s\n", summary.BackupPath)
	}

	if n := len(summary.NotFound); n > 0 {
		shown := summary.NotFound[:min(n, reportLimit)]
		warn := termenv.RGBColor(string(style.Yellow))
		if len(shown) == 0 {
			r.printf(warn, "  Warning: %d packages not found in installed packages\n", n)
		} else {
			r.printf(warn, "  Warning: %d packages not found in installed packages: %s\n",
				n, strings.Join(shown, ", "))
		}
		if len(shown) > 0 && n > len(shown) {
			r.printf(warn, "  ... and %d more\n", n-len(shown))
		}
	}

	r.printf(nil, "\n")
}

func (r *Reporter) printf(color termenv.Color, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if color != nil {
		msg = r.out.String(strings.TrimSuffix(msg, "\n")).Foreground(color).String() + "\n"
	}
	_, _ = r.out.WriteString(msg)
}
