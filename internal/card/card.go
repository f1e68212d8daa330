package card

import "errors"

// Flashcard is a two-sided card: front/back text with a display color and
// a spoken-language tag per side. FolderID is a reference by id, not
// ownership; an empty FolderID means the card is unfiled.
type Flashcard struct {
	ID         int64  `json:"id"`
	FrontText  string `json:"frontText"`
	BackText   string `json:"backText"`
	FrontColor string `json:"frontColor"`
	BackColor  string `json:"backColor"`
	FrontLang  string `json:"frontLang"`
	BackLang   string `json:"backLang"`
	FolderID   string `json:"folderId,omitempty"`
}

// ErrEmptyText rejects a card whose front or back text is empty after
// trimming. Nothing is persisted when it is returned.
var ErrEmptyText = errors.New("front and back of the card cannot be empty")

// Palette is the fixed set of card background colors offered by the
// color picker. Stored values are not validated against it.
var Palette = []string{
	"#FFFFFF",
	"#FFE5B4",
	"#E5E5EA",
	"#90EE90",
	"#ADD8E6",
	"#FFB6C1",
	"#DDA0DD",
	"#F0E68C",
}

// Default side colors for new cards.
const (
	DefaultFrontColor = "#FFFFFF"
	DefaultBackColor  = "#1A659E"
)
