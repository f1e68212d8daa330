// Package translit converts Cyrillic text to a Latin phonetic
// approximation for display next to translation results. The mapping is a
// fixed per-letter table; anything outside the table passes through
// unchanged, so pure-Latin input comes back as-is.
package translit
