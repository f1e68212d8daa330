package storage

import "fmt"

// Keys of the persisted collections.
const (
	KeyFlashcards = "flashcards"
	KeyFolders    = "folders"

	// KeyLastSelectedFolder is a scratch value written by the card
	// creation flow. Nothing reads it back.
	KeyLastSelectedFolder = "lastSelectedFolder"
)

// KV is the persistence substrate: string-keyed blobs, no transactions,
// no schema. A missing key is not an error.
type KV interface {
	// Get returns the blob stored under key. ok is false when the key
	// has never been written or has been removed.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous blob.
	Set(key string, value []byte) error

	// Remove deletes key. Removing a missing key is a no-op.
	Remove(key string) error
}

// Error wraps a substrate read or write failure. The stores never swallow
// it; callers treat it as fatal for the current operation.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
