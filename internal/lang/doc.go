// Package lang defines the fixed set of languages supported for card
// sides and translations, and derives the two-letter codes the
// translation providers expect from BCP-47-style tags.
package lang
