// Package card owns the canonical flashcard collection. Cards are
// persisted as one JSON array under the "flashcards" storage key; every
// mutation is a whole-collection read-modify-persist.
package card
