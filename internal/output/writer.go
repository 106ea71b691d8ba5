package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirseerhq/context7-cli/internal/context7"
)

const (
	searchHeader  = "=== Search Results ==="
	contextHeader = "=== Context Results ==="
	noResults     = "No results found."
)

// Writer renders to an io.Writer. Each call issues a single write so
// output from one call is never interleaved with another.
type Writer struct {
	mu     sync.Mutex
	output io.Writer
}

// NewWriter creates a new text renderer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// SearchStarted implements Renderer.
func (w *Writer) SearchStarted(query string) error {
	return w.write(fmt.Sprintf("Searching Context7 for libraries matching \"%s\"...\n", query))
}

// SearchResults implements Renderer.
func (w *Writer) SearchResults(libs []context7.Library) error {
	var b strings.Builder
	b.WriteString("\n" + searchHeader + "\n\n")

	if len(libs) == 0 {
		b.WriteString(noResults + "\n")
		return w.write(b.String())
	}

	for i, lib := range libs {
		writeLibrary(&b, i+1, lib)
	}
	return w.write(b.String())
}

// writeLibrary formats one record with its 1-based position.
func writeLibrary(b *strings.Builder, n int, lib context7.Library) {
	fmt.Fprintf(b, "%d. %s\n", n, lib.DisplayName())
	fmt.Fprintf(b, "   Trust Score: %s\n", lib.TrustScoreText())
	fmt.Fprintf(b, "   Benchmark: %s\n", lib.BenchmarkScoreText())
	if len(lib.Versions) > 0 {
		fmt.Fprintf(b, "   Versions: %s\n", lib.VersionSummary())
	}
	b.WriteString("\n")
}

// ContextStarted implements Renderer.
func (w *Writer) ContextStarted(libraryID, query string) error {
	return w.write(fmt.Sprintf("Getting context for: \"%s\" in %s...\n", query, libraryID))
}

// ContextResult implements Renderer.
func (w *Writer) ContextResult(text string) error {
	return w.write("\n" + contextHeader + "\n\n" + text + "\n")
}

func (w *Writer) write(s string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := io.WriteString(w.output, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
