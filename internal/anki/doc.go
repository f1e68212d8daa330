// Package anki exports the stored flashcards as an Anki-importable CSV
// file.
package anki
