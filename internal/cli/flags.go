package cli

import (
	"codeberg.org/snonux/flipcard/internal/card"
	"codeberg.org/snonux/flipcard/internal/lang"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	DBPath  string

	// Card flags
	FrontColor string
	BackColor  string
	FrontLang  string
	BackLang   string
	Folder     string
	Unfiled    bool

	// Translate flags
	Provider string
	FromLang string
	ToLang   string
	SaveCard bool

	// Provider model flags
	OpenAIModel string
	GeminiModel string

	// Export/backup flags
	OutputPath string
	NoHeaders  bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		FrontColor: card.DefaultFrontColor,
		BackColor:  card.DefaultBackColor,
		FrontLang:  lang.DefaultFront,
		BackLang:   lang.DefaultBack,
		Provider:   "googleapis",
		FromLang:   lang.DefaultFront,
		ToLang:     lang.DefaultBack,
	}
}
