package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/flipcard/internal/card"
)

func TestGenerateCSV(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "anki_import.csv")
	exporter := NewExporter(&ExporterOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})

	exporter.SetFolderName("123", "Animals")
	exporter.AddCard(card.Flashcard{
		ID: 1, FrontText: "Cat", BackText: "Kedi",
		FrontLang: "en-US", BackLang: "tr-TR", FolderID: "123",
	})
	exporter.AddCard(card.Flashcard{
		ID: 2, FrontText: "привет", BackText: "hello",
		FrontLang: "ru-RU", BackLang: "en-US",
	})

	if err := exporter.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "Front" {
		t.Errorf("Missing headers: %v", records[0])
	}
	if records[1][0] != "Cat" || records[1][4] != "Animals" {
		t.Errorf("Unexpected first row: %v", records[1])
	}
	if records[2][0] != "привет" || records[2][4] != "" {
		t.Errorf("Unexpected second row: %v", records[2])
	}
}

func TestGenerateCSV_NoHeaders(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "anki_import.csv")
	exporter := NewExporter(&ExporterOptions{OutputPath: outputPath})

	exporter.AddCard(card.Flashcard{ID: 1, FrontText: "a", BackText: "b"})
	if err := exporter.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	file, _ := os.Open(outputPath)
	defer file.Close()
	records, _ := csv.NewReader(file).ReadAll()
	if len(records) != 1 {
		t.Errorf("Expected 1 row without headers, got %d", len(records))
	}
}

func TestGenerateCSV_UnknownFolderFallsBackToID(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "anki_import.csv")
	exporter := NewExporter(&ExporterOptions{OutputPath: outputPath})

	exporter.AddCard(card.Flashcard{ID: 1, FrontText: "a", BackText: "b", FolderID: "999"})
	if err := exporter.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	file, _ := os.Open(outputPath)
	defer file.Close()
	records, _ := csv.NewReader(file).ReadAll()
	if records[0][4] != "999" {
		t.Errorf("Expected folder id fallback, got %q", records[0][4])
	}
}

func TestGenerateCSV_FolderNameSanitizedForTag(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "anki_import.csv")
	exporter := NewExporter(&ExporterOptions{OutputPath: outputPath})

	exporter.SetFolderName("1", "My Animals")
	exporter.AddCard(card.Flashcard{ID: 1, FrontText: "a", BackText: "b", FolderID: "1"})
	if err := exporter.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	file, _ := os.Open(outputPath)
	defer file.Close()
	records, _ := csv.NewReader(file).ReadAll()
	if records[0][4] != "My_Animals" {
		t.Errorf("Tag not sanitized: %q", records[0][4])
	}
}

func TestCount(t *testing.T) {
	exporter := NewExporter(nil)
	if exporter.Count() != 0 {
		t.Error("Fresh exporter should have no cards")
	}
	exporter.AddCard(card.Flashcard{ID: 1, FrontText: "a", BackText: "b"})
	if exporter.Count() != 1 {
		t.Errorf("Count = %d, want 1", exporter.Count())
	}
}
