// Package review provides a read-only browser for the responses a
// completed discussion left behind. It scans a session folder for
// per-model stores and renders each model's answers newest-first with a
// short preview that expands to the full text.
//
// Review only ever reads stores after a run has finished; it never
// contends with the orchestrator's writes.
package review

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Iron-Ham/parley/internal/store"
)

// previewMaxChars bounds single-line previews when a response has fewer
// than two non-empty lines.
const previewMaxChars = 100

// Response is one stored answer prepared for display.
type Response struct {
	RoundNumber int
	Convergence float64
	Timestamp   string
	Preview     string
	Full        string
}

// ModelResponses groups one model's answers, newest round first.
type ModelResponses struct {
	Model     string
	Responses []Response
}

// LoadSession reads every per-model store in the session folder. Models
// are sorted by name; each model's responses are ordered by descending
// round number.
func LoadSession(folder string) ([]ModelResponses, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading session folder: %w", err)
	}

	var models []ModelResponses
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".db")

		responses, err := loadStore(filepath.Join(folder, entry.Name()))
		if err != nil {
			return nil, err
		}
		models = append(models, ModelResponses{Model: name, Responses: responses})
	}

	if len(models) == 0 {
		return nil, fmt.Errorf("no response stores found in %s", folder)
	}

	sort.Slice(models, func(i, j int) bool { return models[i].Model < models[j].Model })
	return models, nil
}

func loadStore(path string) ([]Response, error) {
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	records, err := s.ReadAll()
	if err != nil {
		return nil, err
	}

	// Newest round first for review.
	responses := make([]Response, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		responses = append(responses, Response{
			RoundNumber: r.RoundNumber,
			Convergence: r.Convergence,
			Timestamp:   r.Timestamp,
			Preview:     Preview(r.Response),
			Full:        r.Response,
		})
	}
	return responses, nil
}

// Preview derives a short display excerpt: the first two non-empty lines
// of the response, or when fewer exist, the first 100 characters with an
// ellipsis if the text was cut.
func Preview(response string) string {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
			if len(lines) == 2 {
				return strings.Join(lines, "\n")
			}
		}
	}

	if runes := []rune(response); len(runes) > previewMaxChars {
		return string(runes[:previewMaxChars]) + "..."
	}
	return response
}
