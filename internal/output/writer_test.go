package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirseerhq/context7-cli/internal/context7"
)

func score(f float64) *context7.Score {
	s := context7.Score(f)
	return &s
}

func TestWriter_SearchStarted(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).SearchStarted("setup ssr"); err != nil {
		t.Fatalf("SearchStarted failed: %v", err)
	}

	want := "Searching Context7 for libraries matching \"setup ssr\"...\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_SearchResults(t *testing.T) {
	tests := []struct {
		name string
		libs []context7.Library
		want string
	}{
		{
			name: "empty results",
			libs: []context7.Library{},
			want: "\n=== Search Results ===\n\nNo results found.\n",
		},
		{
			name: "nil results",
			libs: nil,
			want: "\n=== Search Results ===\n\nNo results found.\n",
		},
		{
			name: "full record",
			libs: []context7.Library{
				{
					ID:             "/vercel/next.js",
					Name:           "Next.js",
					TrustScore:     score(10),
					BenchmarkScore: score(91.5),
					Versions:       []string{"v15.1.0", "v14.2.3"},
				},
			},
			want: "\n=== Search Results ===\n\n" +
				"1. Next.js\n" +
				"   Trust Score: 10\n" +
				"   Benchmark: 91.5\n" +
				"   Versions: v15.1.0, v14.2.3\n" +
				"\n",
		},
		{
			name: "sparse records are numbered from one",
			libs: []context7.Library{
				{ID: "/a/one"},
				{ID: "/b/two", Name: "Two", Versions: []string{"1", "2", "3", "4", "5", "6", "7"}},
			},
			want: "\n=== Search Results ===\n\n" +
				"1. /a/one\n" +
				"   Trust Score: N/A\n" +
				"   Benchmark: N/A\n" +
				"\n" +
				"2. Two\n" +
				"   Trust Score: N/A\n" +
				"   Benchmark: N/A\n" +
				"   Versions: 1, 2, 3, 4, 5...\n" +
				"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(&buf).SearchResults(tt.libs); err != nil {
				t.Fatalf("SearchResults failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output =\n%q\nwant\n%q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriter_NoResultsHasNoListing(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).SearchResults(nil); err != nil {
		t.Fatalf("SearchResults failed: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "No results found.") != 1 {
		t.Errorf("expected exactly one 'No results found.' line, got %q", out)
	}
	if strings.Contains(out, "1. ") || strings.Contains(out, "Trust Score") {
		t.Errorf("empty results must not list records, got %q", out)
	}
}

func TestWriter_Context(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.ContextStarted("/facebook/react", "useState hook"); err != nil {
		t.Fatalf("ContextStarted failed: %v", err)
	}
	if err := w.ContextResult("line one\n\n  indented line two"); err != nil {
		t.Fatalf("ContextResult failed: %v", err)
	}

	want := "Getting context for: \"useState hook\" in /facebook/react...\n" +
		"\n=== Context Results ===\n\n" +
		"line one\n\n  indented line two\n"
	if buf.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_WriteError(t *testing.T) {
	w := NewWriter(failingWriter{})

	err := w.SearchResults(nil)
	if err == nil {
		t.Fatal("expected error from failing writer")
	}
	if !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("error = %v, want wrapped broken pipe", err)
	}
}
