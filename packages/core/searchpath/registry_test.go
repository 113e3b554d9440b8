package searchpath

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeduplicates(t *testing.T) {
	r := New("/a", "/b", "/a")

	assert.Equal(t, []string{"/a", "/b"}, r.Entries())
	assert.Equal(t, 2, r.Len())
}

func TestAppend(t *testing.T) {
	var r Registry

	assert.True(t, r.Append("/a"))
	assert.False(t, r.Append("/a"))
	assert.True(t, r.Contains("/a"))
	assert.False(t, r.Contains("/b"))
	assert.Equal(t, 1, r.Len())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		paths    []string
		added    int
		expected []string
	}{
		{
			name:     "empty registry",
			paths:    []string{"/x", "/y"},
			added:    2,
			expected: []string{"/x", "/y"},
		},
		{
			name:     "pre-existing entry skipped",
			initial:  []string{"/y"},
			paths:    []string{"/x", "/y"},
			added:    1,
			expected: []string{"/y", "/x"},
		},
		{
			name:     "duplicates within input keep first occurrence",
			paths:    []string{"/x", "/y", "/x", "/z", "/y"},
			added:    3,
			expected: []string{"/x", "/y", "/z"},
		},
		{
			name:     "no normalization",
			initial:  []string{"/x"},
			paths:    []string{"/x/", "/x"},
			added:    1,
			expected: []string{"/x", "/x/"},
		},
		{
			name: "nothing to apply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.initial...)
			got := Apply(tt.paths, r, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			assert.Equal(t, tt.added, got)
			if tt.expected == nil {
				assert.Zero(t, r.Len())
			} else {
				assert.Equal(t, tt.expected, r.Entries())
			}
		})
	}
}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	r := New()
	paths := []string{"/x", "/y"}

	assert.Equal(t, 2, Apply(paths, r, nil))
	assert.Equal(t, 0, Apply(paths, r, nil))
	assert.Equal(t, 2, r.Len())
}

func TestApplyLogsCount(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Apply([]string{"/x", "/x"}, New(), logger)

	out := buf.String()
	assert.Contains(t, out, "added to search path")
	assert.Contains(t, out, "already in search path")
	assert.Contains(t, out, "added=1")
}

func TestEntriesReturnsCopy(t *testing.T) {
	r := New("/a")
	entries := r.Entries()
	entries[0] = "/changed"

	assert.Equal(t, []string{"/a"}, r.Entries())
}

func TestFromEnv(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("GVTEST_TEST_PATH", strings.Join([]string{"/a", "", "/b", "/a"}, sep))

	r := FromEnv("GVTEST_TEST_PATH")
	assert.Equal(t, []string{"/a", "/b"}, r.Entries())

	t.Setenv("GVTEST_TEST_PATH", "")
	assert.Zero(t, FromEnv("GVTEST_TEST_PATH").Len())
}

func TestEnviron(t *testing.T) {
	sep := string(os.PathListSeparator)
	env := []string{"HOME=/home/u", "PYTHONPATH=/old", "PYTHONPATHX=keep"}

	r := New("/old", "/new")
	got := r.Environ(env)

	require.Len(t, got, 3)
	assert.Equal(t, "HOME=/home/u", got[0])
	assert.Equal(t, "PYTHONPATHX=keep", got[1])
	assert.Equal(t, "PYTHONPATH=/old"+sep+"/new", got[2])

	assert.Equal(t, []string{"HOME=/home/u", "PYTHONPATHX=keep"}, New().Environ(env))
}

func TestProcessIsShared(t *testing.T) {
	assert.Same(t, Process(), Process())
}
