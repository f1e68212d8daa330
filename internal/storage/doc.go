// Package storage provides the key-value persistence substrate used by
// the card and folder stores: string-keyed JSON blobs with get, set and
// remove operations and no transactions. The default implementation keeps
// the blobs in a single-table SQLite database.
package storage
