// Package folder owns the named folder collection cards can be filed
// under. Folders are persisted as one JSON array under the "folders"
// storage key. Deleting a folder cascades into the card collection
// through a single reassignment hook: the folder's cards become unfiled,
// they are never deleted with it.
package folder
