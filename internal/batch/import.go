package batch

import (
	"fmt"
	"os"
	"strings"
)

// CardEntry represents one card read from an import file.
type CardEntry struct {
	Front string
	Back  string
	// NeedsTranslation indicates the back side is missing and should be
	// machine translated from the front.
	NeedsTranslation bool
}

// ReadImportFile reads cards from a file, one per line.
// Supported formats:
// - Both sides: "cat = kedi"
// - Front only: "cat" (back side to be translated)
// Lines that are empty or have an empty front side are skipped.
func ReadImportFile(filename string) ([]CardEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	var entries []CardEntry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			front := strings.TrimSpace(parts[0])
			back := strings.TrimSpace(parts[1])

			if front == "" {
				continue
			}
			if back == "" {
				entries = append(entries, CardEntry{Front: front, NeedsTranslation: true})
			} else {
				entries = append(entries, CardEntry{Front: front, Back: back})
			}
		} else {
			entries = append(entries, CardEntry{Front: line, NeedsTranslation: true})
		}
	}

	return entries, nil
}
