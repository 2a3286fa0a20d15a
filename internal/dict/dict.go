// internal/dict/dict.go
//
// Dictionary providers for the helper engine.
//
// Responsibilities:
//   - Define the Provider interface the server loads its word snapshot from.
//   - File-backed provider (one word per line) with an embedded default list
//     so the service runs even when nothing is configured.
//
// Providers hand entries to the engine as-is; case normalization and
// length/alphabetic filtering are the engine's job, so a provider never
// rejects a word itself.

package dict

import (
	"bufio"
	"context"
	_ "embed"
	"os"
	"strings"

	"github.com/roseu7/wordle-helper/internal/solver"
)

//go:embed default_words.txt
var embeddedWords string

// Provider supplies the (identifier, word) pairs the engine filters and
// ranks. Implementations must return a fresh slice per call.
type Provider interface {
	Entries(ctx context.Context) ([]solver.Entry, error)
}

// FileProvider reads one word per line from a text file.
type FileProvider struct {
	Path string
}

// Entries loads the file. Blank lines are skipped; IDs are line positions.
func (p FileProvider) Entries(ctx context.Context) ([]solver.Entry, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []solver.Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		out = append(out, solver.Entry{ID: int64(len(out) + 1), Word: w})
	}
	return out, sc.Err()
}

// EmbeddedProvider serves the compiled-in default word list.
type EmbeddedProvider struct{}

// Entries returns the embedded defaults.
func (EmbeddedProvider) Entries(ctx context.Context) ([]solver.Entry, error) {
	var out []solver.Entry
	for _, line := range strings.Split(embeddedWords, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		out = append(out, solver.Entry{ID: int64(len(out) + 1), Word: w})
	}
	return out, nil
}
