// Package translate turns raw input text into a displayable, speakable
// translation result. It wraps a remote translation provider, rejects
// oversized or rate-limited requests before any network call, and
// annotates Cyrillic output with a Latin transliteration.
package translate
