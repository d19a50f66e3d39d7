package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/engine/classify"
	"go.trai.ch/repin/internal/engine/rewrite"
)

func snapshotOf(pairs ...string) *domain.Snapshot {
	snap := domain.NewSnapshot()
	for i := 0; i+1 < len(pairs); i += 2 {
		snap.Set(pairs[i], pairs[i+1])
	}
	return snap
}

func TestRewrite_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		snap         *domain.Snapshot
		line         string
		wantLine     string
		wantUpdated  int
		wantNotFound []string
	}{
		{
			name:        "replaces pinned version",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "requests==2.0.0",
			wantLine:    "requests==2.31.0",
			wantUpdated: 1,
		},
		{
			name:        "adds missing pin",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "requests",
			wantLine:    "requests==2.31.0",
			wantUpdated: 1,
		},
		{
			name:        "keeps extras",
			snap:        snapshotOf("numpy", "1.26.0"),
			line:        "numpy[extra]==1.20.0",
			wantLine:    "numpy[extra]==1.26.0",
			wantUpdated: 1,
		},
		{
			name:         "reports missing package",
			snap:         snapshotOf("requests", "2.31.0"),
			line:         "scipy==1.0.0",
			wantLine:     "scipy==1.0.0",
			wantNotFound: []string{"scipy"},
		},
		{
			name:     "exempt package is not reported",
			snap:     snapshotOf(),
			line:     "jaxlib==0.4.1",
			wantLine: "jaxlib==0.4.1",
		},
		{
			name:     "vcs line passes through",
			snap:     snapshotOf("pkg", "9.9.9"),
			line:     "git+https://example.com/pkg.git",
			wantLine: "git+https://example.com/pkg.git",
		},
		{
			name:        "case insensitive lookup on pin",
			snap:        snapshotOf("Foo", "1.2.3"),
			line:        "foo==0.0.1",
			wantLine:    "foo==1.2.3",
			wantUpdated: 1,
		},
		{
			name:        "case insensitive lookup on extras",
			snap:        snapshotOf("Foo", "1.2.3"),
			line:        "FOO[extra]",
			wantLine:    "FOO[extra]==1.2.3",
			wantUpdated: 1,
		},
		{
			name:     "same version is not counted",
			snap:     snapshotOf("requests", "2.31.0"),
			line:     "requests==2.31.0",
			wantLine: "requests==2.31.0",
		},
		{
			name:        "inline comment after pin is preserved",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "requests==2.0.0  # http client",
			wantLine:    "requests==2.31.0  # http client",
			wantUpdated: 1,
		},
		{
			name:        "inline comment stays after added pin",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "requests  # http client",
			wantLine:    "requests==2.31.0  # http client",
			wantUpdated: 1,
		},
		{
			name:        "trailing whitespace trimmed before added pin",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "requests   ",
			wantLine:    "requests==2.31.0",
			wantUpdated: 1,
		},
		{
			name:        "indentation kept",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "  requests==2.0.0",
			wantLine:    "  requests==2.31.0",
			wantUpdated: 1,
		},
		{
			name:        "spaces around operator kept",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "requests == 2.0.0",
			wantLine:    "requests == 2.31.0",
			wantUpdated: 1,
		},
		{
			name:        "empty pin is filled in",
			snap:        snapshotOf("requests", "2.31.0"),
			line:        "requests==",
			wantLine:    "requests==2.31.0",
			wantUpdated: 1,
		},
		{
			name:        "marker after extras kept after pin",
			snap:        snapshotOf("uvicorn", "0.30.1"),
			line:        "uvicorn[standard] ; python_version >= '3.9'",
			wantLine:    "uvicorn[standard]==0.30.1 ; python_version >= '3.9'",
			wantUpdated: 1,
		},
		{
			name:        "marker glued to extras is separated from pin",
			snap:        snapshotOf("uvicorn", "0.30.1"),
			line:        "uvicorn[standard]; python_version >= '3.9'",
			wantLine:    "uvicorn[standard]==0.30.1 ; python_version >= '3.9'",
			wantUpdated: 1,
		},
		{
			name:        "range after extras is kept",
			snap:        snapshotOf("celery", "5.3.6"),
			line:        "celery[redis]>=5",
			wantLine:    "celery[redis]==5.3.6 >=5",
			wantUpdated: 1,
		},
		{
			name:     "comment line passes through",
			snap:     snapshotOf("requests", "2.31.0"),
			line:     "# requests==1.0",
			wantLine: "# requests==1.0",
		},
		{
			name:     "blank line passes through",
			snap:     snapshotOf("requests", "2.31.0"),
			line:     "   ",
			wantLine: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rewrite.NewRewriter(domain.DefaultExemptNames...)
			got := r.Rewrite([]string{tt.line}, tt.snap)

			require.Len(t, got.Lines, 1)
			assert.Equal(t, tt.wantLine, got.Lines[0])
			assert.Equal(t, tt.wantUpdated, got.Updated)
			assert.Equal(t, tt.wantNotFound, got.NotFound)
		})
	}
}

func TestRewrite_PreservesLineCountAndPassThrough(t *testing.T) {
	lines := []string{
		"# header",
		"",
		"requests==2.0.0",
		"git+https://example.com/pkg.git",
		"-r base.txt",
		"scipy",
		"   # trailing comment",
	}
	snap := snapshotOf("requests", "2.31.0", "scipy", "1.11.0")

	got := rewrite.NewRewriter().Rewrite(lines, snap)

	require.Len(t, got.Lines, len(lines))
	for i, line := range lines {
		if !classify.Classify(line).IsPackage() {
			assert.Equal(t, line, got.Lines[i], "line %d must pass through", i)
		}
	}
	assert.Equal(t, "requests==2.31.0", got.Lines[2])
	assert.Equal(t, "scipy==1.11.0", got.Lines[5])
	assert.Equal(t, 2, got.Updated)
}

func TestRewrite_Idempotent(t *testing.T) {
	lines := []string{
		"requests==2.0.0  # pinned",
		"numpy[extra]",
		"Flask == 1.0",
		"missing-pkg",
		"uvicorn[standard] ; python_version >= '3.9'",
		"celery[redis]>=5",
		"uvicorn[standard]; python_version >= '3.9'",
	}
	snap := snapshotOf(
		"requests", "2.31.0",
		"numpy", "1.26.0",
		"flask", "3.0.3",
		"uvicorn", "0.30.1",
		"celery", "5.3.6",
	)
	r := rewrite.NewRewriter()

	first := r.Rewrite(lines, snap)
	require.Equal(t, 6, first.Updated)

	for range 2 {
		next := r.Rewrite(first.Lines, snap)
		assert.Equal(t, 0, next.Updated)
		assert.Equal(t, first.Lines, next.Lines)
		assert.Equal(t, first.NotFound, next.NotFound)
	}
}

func TestRewrite_NotFoundDeduplicated(t *testing.T) {
	lines := []string{"scipy==1.0", "SciPy", "torch", "scipy[extra]"}

	got := rewrite.NewRewriter().Rewrite(lines, snapshotOf())

	assert.Equal(t, []string{"scipy", "torch"}, got.NotFound)
	assert.Equal(t, lines, got.Lines)
}

func TestRewriter_IsExempt(t *testing.T) {
	r := rewrite.NewRewriter("JAX", " torch ")

	assert.True(t, r.IsExempt("jax"))
	assert.True(t, r.IsExempt("Torch"))
	assert.False(t, r.IsExempt("jaxlib"))
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		version string
		want    string
		wantOK  bool
	}{
		{name: "simple", line: "a==1", version: "2", want: "a==2", wantOK: true},
		{name: "first occurrence only", line: "a==1 # b==3", version: "2", want: "a==2 # b==3", wantOK: true},
		{name: "hash fragment kept", line: "a==1#frag", version: "2", want: "a==2#frag", wantOK: true},
		{name: "no operator", line: "a>=1", version: "2", want: "a>=1", wantOK: false},
		{name: "idempotent", line: "a==2", version: "2", want: "a==2", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rewrite.Substitute(tt.line, tt.version)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
