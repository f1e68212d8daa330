package lang

import "strings"

// Language pairs a BCP-47-style tag with its display label.
type Language struct {
	Tag   string
	Label string
}

// Default language tags for a new card's sides.
const (
	DefaultFront = "en-US"
	DefaultBack  = "tr-TR"
)

// Supported is the fixed set of languages offered by the language picker.
var Supported = []Language{
	{"en-US", "English"},
	{"tr-TR", "Türkçe"},
	{"ru-RU", "Русский"},
	{"de-DE", "Deutsch"},
	{"fr-FR", "Français"},
	{"es-ES", "Español"},
	{"it-IT", "Italiano"},
	{"pt-PT", "Português"},
	{"ja-JP", "日本語"},
	{"ko-KR", "한국어"},
	{"zh-CN", "中文"},
	{"ar-SA", "العربية"},
}

// IsSupported reports whether tag is in the supported set.
func IsSupported(tag string) bool {
	for _, l := range Supported {
		if l.Tag == tag {
			return true
		}
	}
	return false
}

// Label returns the display label for tag, or the tag itself when it is
// not in the supported set.
func Label(tag string) string {
	for _, l := range Supported {
		if l.Tag == tag {
			return l.Label
		}
	}
	return tag
}

// Code derives the two-letter language code from a tag by taking the
// prefix before the region subtag: "en-US" becomes "en". Tags without a
// region pass through whole.
func Code(tag string) string {
	code, _, _ := strings.Cut(tag, "-")
	return code
}
