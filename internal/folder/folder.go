package folder

import "errors"

// Folder is a named grouping of cards.
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// MaxNameLen bounds a folder name after trimming.
const MaxNameLen = 21

var (
	// ErrEmptyName rejects a folder whose name is empty after trimming.
	ErrEmptyName = errors.New("folder name cannot be empty")

	// ErrNameTooLong rejects a folder name longer than MaxNameLen.
	ErrNameTooLong = errors.New("folder name is too long")
)
