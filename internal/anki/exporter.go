package anki

import (
	"encoding/csv"
	"fmt"
	"os"

	"codeberg.org/snonux/flipcard/internal"
	"codeberg.org/snonux/flipcard/internal/card"
	"codeberg.org/snonux/flipcard/internal/lang"
)

// ExporterOptions configures the Anki export
type ExporterOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultExporterOptions returns sensible defaults
func DefaultExporterOptions() *ExporterOptions {
	return &ExporterOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Exporter creates Anki-compatible import files from flashcards
type Exporter struct {
	options *ExporterOptions
	cards   []card.Flashcard
	byID    map[string]string // folder id -> folder name
}

// NewExporter creates a new Anki exporter
func NewExporter(options *ExporterOptions) *Exporter {
	if options == nil {
		options = DefaultExporterOptions()
	}
	return &Exporter{
		options: options,
		cards:   make([]card.Flashcard, 0),
		byID:    make(map[string]string),
	}
}

// AddCard adds a card to the export set
func (e *Exporter) AddCard(c card.Flashcard) {
	e.cards = append(e.cards, c)
}

// SetFolderName registers a folder name so exported cards can carry it
// as an Anki tag instead of a bare id.
func (e *Exporter) SetFolderName(id, name string) {
	e.byID[id] = name
}

// GenerateCSV creates a CSV file for Anki import
func (e *Exporter) GenerateCSV() error {
	file, err := os.Create(e.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if e.options.IncludeHeaders {
		headers := []string{"Front", "Back", "FrontLanguage", "BackLanguage", "Tags"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, c := range e.cards {
		record := []string{
			c.FrontText,
			c.BackText,
			lang.Label(c.FrontLang),
			lang.Label(c.BackLang),
			e.folderTag(c.FolderID),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// Count returns the number of cards queued for export
func (e *Exporter) Count() int {
	return len(e.cards)
}

// folderTag maps a folder id to an Anki tag. Anki tags are separated by
// spaces, so the folder name is sanitized first.
func (e *Exporter) folderTag(folderID string) string {
	if folderID == "" {
		return ""
	}
	if name, ok := e.byID[folderID]; ok {
		return internal.SanitizeFilename(name)
	}
	return folderID
}
