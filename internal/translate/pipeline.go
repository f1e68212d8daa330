package translate

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/snonux/flipcard/internal/lang"
	"codeberg.org/snonux/flipcard/internal/translit"
)

// MaxInputLen is the longest input (in characters) accepted for a single
// translation.
const MaxInputLen = 100

// Result is a translation plus an optional Latin phonetic annotation.
// Latin is empty when the translation contains no Cyrillic.
type Result struct {
	Text  string
	Latin string
}

// Display renders the result the way the translate screen shows it:
// "текст (tekst)" when a transliteration exists, the bare text otherwise.
func (r Result) Display() string {
	if r.Latin != "" {
		return fmt.Sprintf("%s (%s)", r.Text, r.Latin)
	}
	return r.Text
}

// Pipeline composes a translation provider, the cooldown gate and the
// transliterator into one request/response cycle.
type Pipeline struct {
	provider Provider
	gate     *Gate
}

// NewPipeline creates a pipeline around provider, rate limited by gate.
func NewPipeline(provider Provider, gate *Gate) *Pipeline {
	return &Pipeline{provider: provider, gate: gate}
}

// Translate runs one translation cycle. fromTag and toTag are
// BCP-47-style tags such as "en-US"; the provider receives their
// two-letter prefixes. Input is validated and the cooldown gate checked
// before any network call; the gate is re-armed only when the provider
// call succeeds.
func (p *Pipeline) Translate(ctx context.Context, text, fromTag, toTag string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyText
	}
	if len([]rune(text)) > MaxInputLen {
		return Result{}, ErrInputTooLong
	}
	if !p.gate.TryAcquire() {
		return Result{}, ErrRateLimited
	}

	translated, err := p.provider.Translate(ctx, text, lang.Code(fromTag), lang.Code(toTag))
	if err != nil {
		return Result{}, err
	}
	p.gate.Arm()

	return PostProcess(translated), nil
}

// PostProcess pairs translated text with a Latin transliteration when it
// contains Cyrillic.
func PostProcess(translated string) Result {
	if translit.HasCyrillic(translated) {
		return Result{Text: translated, Latin: translit.ToLatin(translated)}
	}
	return Result{Text: translated}
}
