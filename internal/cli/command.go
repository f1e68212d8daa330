package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/flipcard/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flipcard",
		Short: "Personal flashcard manager with machine translation",
		Long: `flipcard manages two-sided flashcards organized into folders and
turns machine-translated text into new cards.

Translations of Cyrillic output carry a Latin phonetic annotation, and
remote translation calls are rate limited with a 5 second cooldown.

Examples:
  flipcard add --front "Cat" --back "Kedi"      # Create a card
  flipcard translate "hello" --to tr-TR --save  # Translate and keep as card
  flipcard folder create Animals                # Create a folder
  flipcard list --folder Animals                # Show a folder's cards`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.flipcard.yaml)")
	cmd.PersistentFlags().StringVar(&flags.DBPath, "db", "", "card database path (default is ~/.local/state/flipcard/flipcard.db)")
	cmd.PersistentFlags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: googleapis, openai or gemini")
	cmd.PersistentFlags().StringVar(&flags.OpenAIModel, "openai-model", "", "OpenAI chat model used for translation")
	cmd.PersistentFlags().StringVar(&flags.GeminiModel, "gemini-model", "", "Gemini model used for translation")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("storage.path", cmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("translate.provider", cmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("translate.openai_model", cmd.PersistentFlags().Lookup("openai-model"))
	viper.BindPFlag("translate.gemini_model", cmd.PersistentFlags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".flipcard" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".flipcard")
	}

	// Environment variables
	viper.SetEnvPrefix("FLIPCARD")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetGoogleTranslateKey retrieves the Google Translate API key from
// environment or config
func GetGoogleTranslateKey() string {
	if key := os.Getenv("GOOGLE_TRANSLATE_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.google_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.gemini_key")
}
