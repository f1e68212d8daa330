package folder

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"codeberg.org/snonux/flipcard/internal"
	"codeberg.org/snonux/flipcard/internal/storage"
)

// CardReassigner moves every card filed under one folder id to another.
// The card store implements it; the folder store reaches into card data
// only through this one cascade hook.
type CardReassigner interface {
	ReassignFolder(oldID, newID string) error
}

// Store owns the persisted folder collection.
type Store struct {
	kv    storage.KV
	cards CardReassigner
}

// NewStore creates a folder store over the given persistence substrate.
// cards receives the reassignment half of a cascade delete.
func NewStore(kv storage.KV, cards CardReassigner) *Store {
	return &Store{kv: kv, cards: cards}
}

// ListAll returns the persisted folders. A collection that has never been
// written yields an empty slice, not an error.
func (s *Store) ListAll() ([]Folder, error) {
	raw, ok, err := s.kv.Get(storage.KeyFolders)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var folders []Folder
	if err := json.Unmarshal(raw, &folders); err != nil {
		return nil, fmt.Errorf("failed to decode folders: %w", err)
	}
	return folders, nil
}

// Create validates name, persists a new folder and returns it.
func (s *Store) Create(name string) (Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Folder{}, ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLen {
		return Folder{}, ErrNameTooLong
	}

	folders, err := s.ListAll()
	if err != nil {
		return Folder{}, err
	}

	f := Folder{
		ID:        internal.NextFolderID(),
		Name:      name,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.persist(append(folders, f)); err != nil {
		return Folder{}, err
	}
	return f, nil
}

// Rename changes a folder's name. A blank newName is treated as a
// cancelled rename and does nothing; so does an unknown id.
func (s *Store) Rename(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil
	}
	if len([]rune(newName)) > MaxNameLen {
		return ErrNameTooLong
	}

	folders, err := s.ListAll()
	if err != nil {
		return err
	}

	changed := false
	for i := range folders {
		if folders[i].ID == id {
			folders[i].Name = newName
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persist(folders)
}

// DeleteCascade removes the folder with id and moves its cards to
// unfiled. The folder removal is persisted first and the card
// reassignment second: a crash or storage failure between the two leaves
// cards pointing at the deleted folder until the next successful cascade.
// The card store treats such dangling references as unfiled when reading,
// and the folder removal is deliberately not rolled back.
func (s *Store) DeleteCascade(id string) error {
	folders, err := s.ListAll()
	if err != nil {
		return err
	}

	kept := make([]Folder, 0, len(folders))
	for _, f := range folders {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if err := s.persist(kept); err != nil {
		return err
	}

	return s.cards.ReassignFolder(id, "")
}

// FindByName returns the first folder with the given name.
func (s *Store) FindByName(name string) (Folder, bool, error) {
	folders, err := s.ListAll()
	if err != nil {
		return Folder{}, false, err
	}
	for _, f := range folders {
		if f.Name == name {
			return f, true, nil
		}
	}
	return Folder{}, false, nil
}

func (s *Store) persist(folders []Folder) error {
	data, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("failed to encode folders: %w", err)
	}
	return s.kv.Set(storage.KeyFolders, data)
}
