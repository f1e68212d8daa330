// Package backup snapshots the persisted collections to timestamped JSON
// files so a card library can be archived or moved between machines.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/flipcard/internal/storage"
)

// snapshot is the on-disk backup format.
type snapshot struct {
	CreatedAt  string          `json:"createdAt"`
	Folders    json.RawMessage `json:"folders"`
	Flashcards json.RawMessage `json:"flashcards"`
}

// Snapshot writes the folder and flashcard collections to a timestamped
// JSON file under dir and returns its path.
func Snapshot(kv storage.KV, dir string) (string, error) {
	folders, err := readCollection(kv, storage.KeyFolders)
	if err != nil {
		return "", err
	}
	cards, err := readCollection(kv, storage.KeyFlashcards)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	now := time.Now()
	path := filepath.Join(dir, fmt.Sprintf("flipcard-%s.json", now.Format("20060102-150405")))
	if _, err := os.Stat(path); err == nil {
		// Unlikely collision, add microseconds to make it unique
		path = filepath.Join(dir, fmt.Sprintf("flipcard-%s.json", now.Format("20060102-150405.000000")))
	}

	data, err := json.MarshalIndent(snapshot{
		CreatedAt:  now.Format(time.RFC3339),
		Folders:    folders,
		Flashcards: cards,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return path, nil
}

// Restore loads a snapshot file and overwrites both collections.
func Restore(kv storage.KV, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode backup file: %w", err)
	}

	if err := kv.Set(storage.KeyFolders, snap.Folders); err != nil {
		return err
	}
	return kv.Set(storage.KeyFlashcards, snap.Flashcards)
}

func readCollection(kv storage.KV, key string) (json.RawMessage, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return json.RawMessage("[]"), nil
	}
	return json.RawMessage(raw), nil
}
