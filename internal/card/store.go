package card

import (
	"encoding/json"
	"fmt"
	"strings"

	"codeberg.org/snonux/flipcard/internal"
	"codeberg.org/snonux/flipcard/internal/storage"
)

// Store owns the persisted flashcard collection.
type Store struct {
	kv storage.KV
}

// NewStore creates a card store over the given persistence substrate.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// ListAll returns the persisted cards. A collection that has never been
// written yields an empty slice, not an error.
func (s *Store) ListAll() ([]Flashcard, error) {
	raw, ok, err := s.kv.Get(storage.KeyFlashcards)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var cards []Flashcard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode flashcards: %w", err)
	}
	return cards, nil
}

// Append validates and persists a new card at the end of the collection.
// A zero ID is filled in from the process-wide id sequence.
func (s *Store) Append(c Flashcard) error {
	c.FrontText = strings.TrimSpace(c.FrontText)
	c.BackText = strings.TrimSpace(c.BackText)
	if c.FrontText == "" || c.BackText == "" {
		return ErrEmptyText
	}
	if c.ID == 0 {
		c.ID = internal.NextCardID()
	}

	cards, err := s.ListAll()
	if err != nil {
		return err
	}
	return s.persist(append(cards, c))
}

// DeleteAll clears the entire collection unconditionally.
func (s *Store) DeleteAll() error {
	return s.kv.Remove(storage.KeyFlashcards)
}

// DeleteByID removes the card with the given id. A missing id is a no-op,
// not an error.
func (s *Store) DeleteByID(id int64) error {
	cards, err := s.ListAll()
	if err != nil {
		return err
	}

	kept := make([]Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cards) {
		return nil
	}
	return s.persist(kept)
}

// FilterByFolder returns the cards filed under folderID, matched exactly.
// An empty folderID selects unfiled cards. When live is non-nil it reports
// whether a folder id still exists: cards left pointing at a deleted
// folder (the cascade crash window) then count as unfiled too. The store
// does not rewrite such cards; the repair happens on the read side only.
func (s *Store) FilterByFolder(folderID string, live func(id string) bool) ([]Flashcard, error) {
	cards, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	var matched []Flashcard
	for _, c := range cards {
		if folderID == "" {
			if c.FolderID == "" || (live != nil && !live(c.FolderID)) {
				matched = append(matched, c)
			}
		} else if c.FolderID == folderID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// ReassignFolder rewrites every card filed under oldID to newID. It
// exists for the folder cascade delete; an empty newID moves the cards to
// unfiled.
func (s *Store) ReassignFolder(oldID, newID string) error {
	cards, err := s.ListAll()
	if err != nil {
		return err
	}

	changed := false
	for i := range cards {
		if cards[i].FolderID == oldID {
			cards[i].FolderID = newID
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persist(cards)
}

func (s *Store) persist(cards []Flashcard) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to encode flashcards: %w", err)
	}
	return s.kv.Set(storage.KeyFlashcards, data)
}
