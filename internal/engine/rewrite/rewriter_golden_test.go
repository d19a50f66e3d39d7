package rewrite_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/engine/rewrite"
	"go.trai.ch/repin/internal/engine/snapshot"
)

func readLines(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// TestRewrite_Golden rewrites a realistic requirements file. Run with
// -update to regenerate testdata/requirements.golden after a deliberate change.
func TestRewrite_Golden(t *testing.T) {
	snap := snapshot.Parse(readLines(t, "installed.txt"))
	require.Equal(t, 7, snap.Len())

	r := rewrite.NewRewriter(domain.DefaultExemptNames...)
	got := r.Rewrite(readLines(t, "requirements.txt"), snap)

	assert.Equal(t, 7, got.Updated)
	assert.Equal(t, []string{"scipy"}, got.NotFound)

	g := goldie.New(t)
	g.Assert(t, "requirements", []byte(strings.Join(got.Lines, "\n")+"\n"))
}
