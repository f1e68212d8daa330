package cli

import (
	"testing"

	"codeberg.org/snonux/flipcard/internal/lang"
)

func TestNewFlagsDefaults(t *testing.T) {
	flags := NewFlags()

	if flags.FrontColor != "#FFFFFF" {
		t.Errorf("Default front color = %s, want #FFFFFF", flags.FrontColor)
	}
	if flags.BackColor != "#1A659E" {
		t.Errorf("Default back color = %s, want #1A659E", flags.BackColor)
	}
	if flags.FrontLang != lang.DefaultFront || flags.BackLang != lang.DefaultBack {
		t.Errorf("Default languages = %s/%s, want %s/%s",
			flags.FrontLang, flags.BackLang, lang.DefaultFront, lang.DefaultBack)
	}
	if flags.Provider != "googleapis" {
		t.Errorf("Default provider = %s, want googleapis", flags.Provider)
	}
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "flipcard" {
		t.Errorf("Command use = %s, want flipcard", cmd.Use)
	}

	for _, name := range []string{"config", "db", "provider", "openai-model", "gemini-model"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Missing persistent flag: %s", name)
		}
	}
}
