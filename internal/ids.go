package internal

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NextCardID returns a unique card ID derived from the current wall clock
// in milliseconds. IDs are strictly increasing within a process even when
// two cards are created in the same millisecond.
func NextCardID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// NextFolderID returns a unique folder ID string. Folder IDs share the
// card ID counter, which keeps them unique across both stores.
func NextFolderID() string {
	return strconv.FormatInt(NextCardID(), 10)
}
