package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/flipcard/internal/card"
	"codeberg.org/snonux/flipcard/internal/cli"
	"codeberg.org/snonux/flipcard/internal/lang"
	"codeberg.org/snonux/flipcard/internal/processor"
	"codeberg.org/snonux/flipcard/internal/storage"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	addCommands(rootCmd, flags)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withProcessor opens the card database, runs fn against a processor and
// closes the database again.
func withProcessor(flags *cli.Flags, fn func(*processor.Processor) error) error {
	path := flags.DBPath
	if path == "" {
		path = storage.DefaultPath()
	}

	kv, err := storage.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer kv.Close()

	return fn(processor.NewProcessor(flags, kv))
}

func addCommands(rootCmd *cobra.Command, flags *cli.Flags) {
	var front, back string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new flashcard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.AddCard(front, back)
			})
		},
	}
	addCmd.Flags().StringVar(&front, "front", "", "Front side text (required)")
	addCmd.Flags().StringVar(&back, "back", "", "Back side text (required)")
	addCmd.Flags().StringVar(&flags.FrontColor, "front-color", flags.FrontColor, "Front side color as hex value")
	addCmd.Flags().StringVar(&flags.BackColor, "back-color", flags.BackColor, "Back side color as hex value")
	addCmd.Flags().StringVar(&flags.FrontLang, "front-lang", flags.FrontLang, "Front side language tag")
	addCmd.Flags().StringVar(&flags.BackLang, "back-lang", flags.BackLang, "Back side language tag")
	addCmd.Flags().StringVar(&flags.Folder, "folder", "", "Folder name to file the card into")
	addCmd.MarkFlagRequired("front")
	addCmd.MarkFlagRequired("back")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.ListCards()
			})
		},
	}
	listCmd.Flags().StringVar(&flags.Folder, "folder", "", "Only show cards in this folder")
	listCmd.Flags().BoolVar(&flags.Unfiled, "unfiled", false, "Only show cards outside any folder")

	deleteCmd := &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a flashcard by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card id: %s", args[0])
			}
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.DeleteCard(id)
			})
		},
	}

	deleteAllCmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every flashcard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.DeleteAllCards()
			})
		},
	}

	translateCmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text, optionally saving it as a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.Translate(cmd.Context(), args[0])
			})
		},
	}
	translateCmd.Flags().StringVar(&flags.FromLang, "from", flags.FromLang, "Source language tag")
	translateCmd.Flags().StringVar(&flags.ToLang, "to", flags.ToLang, "Target language tag")
	translateCmd.Flags().BoolVar(&flags.SaveCard, "save", false, "Save the translation as a flashcard")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import cards from a text file, one card per line",
		Long: `Import cards from a text file. Each line holds one card:

  front = back    card with both sides
  front =         back side gets machine translated
  front           back side gets machine translated`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.ImportBatch(cmd.Context(), args[0])
			})
		},
	}
	importCmd.Flags().StringVar(&flags.FromLang, "from", flags.FromLang, "Source language tag for translated entries")
	importCmd.Flags().StringVar(&flags.ToLang, "to", flags.ToLang, "Target language tag for translated entries")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all cards as an Anki-importable CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.ExportCSV()
			})
		},
	}
	exportCmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output CSV path")
	exportCmd.Flags().BoolVar(&flags.NoHeaders, "no-headers", false, "Omit the CSV header row")
	exportCmd.Flags().StringVar(&flags.Folder, "folder", "", "Only export cards in this folder")

	backupCmd := &cobra.Command{
		Use:   "backup [dir]",
		Short: "Snapshot all cards and folders to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.Backup(dir)
			})
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all cards and folders with a backup snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.RestoreBackup(args[0])
			})
		},
	}

	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List the supported language tags",
		Run: func(cmd *cobra.Command, args []string) {
			for _, l := range lang.Supported {
				fmt.Printf("%s  %s\n", l.Tag, l.Label)
			}
		},
	}

	colorsCmd := &cobra.Command{
		Use:   "colors",
		Short: "List the card color palette",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range card.Palette {
				fmt.Println(c)
			}
		},
	}

	rootCmd.AddCommand(addCmd, listCmd, deleteCmd, deleteAllCmd,
		translateCmd, importCmd, exportCmd, backupCmd, restoreCmd,
		languagesCmd, colorsCmd, folderCommand(flags))
}

func folderCommand(flags *cli.Flags) *cobra.Command {
	folderCmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage card folders",
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.CreateFolder(args[0])
			})
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.RenameFolder(args[0], args[1])
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a folder, keeping its cards as unfiled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.DeleteFolder(args[0])
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(flags, func(p *processor.Processor) error {
				return p.ListFolders()
			})
		},
	}

	folderCmd.AddCommand(createCmd, renameCmd, deleteCmd, listCmd)
	return folderCmd
}
