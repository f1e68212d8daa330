package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/flipcard/internal/anki"
	"codeberg.org/snonux/flipcard/internal/backup"
	"codeberg.org/snonux/flipcard/internal/batch"
	"codeberg.org/snonux/flipcard/internal/card"
	"codeberg.org/snonux/flipcard/internal/cli"
	"codeberg.org/snonux/flipcard/internal/folder"
	"codeberg.org/snonux/flipcard/internal/lang"
	"codeberg.org/snonux/flipcard/internal/storage"
	"codeberg.org/snonux/flipcard/internal/translate"
)

// Processor handles the main card and translation logic
type Processor struct {
	flags   *cli.Flags
	kv      storage.KV
	cards   *card.Store
	folders *folder.Store
	gate    *translate.Gate

	// provider overrides flag-based provider construction when set
	provider translate.Provider
}

// NewProcessor creates a new processor on top of the given store
func NewProcessor(flags *cli.Flags, kv storage.KV) *Processor {
	cards := card.NewStore(kv)
	return &Processor{
		flags:   flags,
		kv:      kv,
		cards:   cards,
		folders: folder.NewStore(kv, cards),
		gate:    translate.NewGate(translate.DefaultCooldown),
	}
}

// AddCard creates a flashcard from the given front and back text. The
// target folder is resolved by name from the --folder flag.
func (p *Processor) AddCard(front, back string) error {
	folderID, err := p.resolveFolder()
	if err != nil {
		return err
	}

	c := card.Flashcard{
		FrontText:  front,
		BackText:   back,
		FrontColor: p.flags.FrontColor,
		BackColor:  p.flags.BackColor,
		FrontLang:  p.flags.FrontLang,
		BackLang:   p.flags.BackLang,
		FolderID:   folderID,
	}
	if err := p.cards.Append(c); err != nil {
		return err
	}

	// The folder selection does not stick across saves
	if err := p.kv.Set(storage.KeyLastSelectedFolder, []byte("")); err != nil {
		return err
	}

	fmt.Printf("Card created: %s / %s\n", front, back)
	return nil
}

// ListCards prints the card collection. With --folder only that folder's
// cards are shown, with --unfiled only cards outside any live folder.
func (p *Processor) ListCards() error {
	var cards []card.Flashcard
	var err error

	switch {
	case p.flags.Folder != "":
		f, ok, ferr := p.folders.FindByName(p.flags.Folder)
		if ferr != nil {
			return ferr
		}
		if !ok {
			return fmt.Errorf("no such folder: %s", p.flags.Folder)
		}
		cards, err = p.cards.FilterByFolder(f.ID, p.folderLive())
	case p.flags.Unfiled:
		cards, err = p.cards.FilterByFolder("", p.folderLive())
	default:
		cards, err = p.cards.ListAll()
	}
	if err != nil {
		return err
	}

	if len(cards) == 0 {
		fmt.Println("No cards found")
		return nil
	}

	for _, c := range cards {
		fmt.Printf("%d  %s / %s  [%s -> %s]\n",
			c.ID, c.FrontText, c.BackText, lang.Label(c.FrontLang), lang.Label(c.BackLang))
	}
	fmt.Printf("\n%d card(s)\n", len(cards))
	return nil
}

// DeleteCard removes a single card by its id
func (p *Processor) DeleteCard(id int64) error {
	if err := p.cards.DeleteByID(id); err != nil {
		return err
	}
	fmt.Printf("Card %d deleted\n", id)
	return nil
}

// DeleteAllCards removes the whole card collection
func (p *Processor) DeleteAllCards() error {
	if err := p.cards.DeleteAll(); err != nil {
		return err
	}
	fmt.Println("All cards deleted")
	return nil
}

// CreateFolder creates a new folder with the given name
func (p *Processor) CreateFolder(name string) error {
	f, err := p.folders.Create(name)
	if err != nil {
		return err
	}
	fmt.Printf("Folder created: %s (id %s)\n", f.Name, f.ID)
	return nil
}

// RenameFolder renames a folder, looked up by its current name
func (p *Processor) RenameFolder(name, newName string) error {
	f, ok, err := p.folders.FindByName(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no such folder: %s", name)
	}
	if err := p.folders.Rename(f.ID, newName); err != nil {
		return err
	}
	fmt.Printf("Folder renamed: %s -> %s\n", name, newName)
	return nil
}

// DeleteFolder removes a folder by name. Its cards survive and become
// unfiled.
func (p *Processor) DeleteFolder(name string) error {
	f, ok, err := p.folders.FindByName(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no such folder: %s", name)
	}
	if err := p.folders.DeleteCascade(f.ID); err != nil {
		return err
	}
	fmt.Printf("Folder deleted: %s (cards kept as unfiled)\n", name)
	return nil
}

// ListFolders prints all folders with their card counts
func (p *Processor) ListFolders() error {
	folders, err := p.folders.ListAll()
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		fmt.Println("No folders found")
		return nil
	}

	live := p.folderLive()
	for _, f := range folders {
		cards, err := p.cards.FilterByFolder(f.ID, live)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s  (%d cards)\n", f.ID, f.Name, len(cards))
	}
	return nil
}

// Translate runs the given text through the translation pipeline and
// prints the result. With --save the translation is kept as a new card.
func (p *Processor) Translate(ctx context.Context, text string) error {
	for _, tag := range []string{p.flags.FromLang, p.flags.ToLang} {
		if !lang.IsSupported(tag) {
			return fmt.Errorf("unsupported language tag: %s", tag)
		}
	}

	provider, err := p.translationProvider(ctx)
	if err != nil {
		return err
	}

	pipeline := translate.NewPipeline(provider, p.gate)
	result, err := pipeline.Translate(ctx, text, p.flags.FromLang, p.flags.ToLang)
	if err != nil {
		return err
	}

	fmt.Println(result.Display())

	if p.flags.SaveCard {
		return p.saveTranslation(text, result)
	}
	return nil
}

// saveTranslation stores a translation as a flashcard with the sides
// swapped, so the translated text is the question and the source text
// the answer.
func (p *Processor) saveTranslation(source string, result translate.Result) error {
	c := card.Flashcard{
		FrontText:  strings.TrimSpace(result.Display()),
		BackText:   source,
		FrontColor: card.DefaultFrontColor,
		BackColor:  card.DefaultBackColor,
		FrontLang:  p.flags.ToLang,
		BackLang:   p.flags.FromLang,
	}
	if err := p.cards.Append(c); err != nil {
		return err
	}
	if err := p.kv.Set(storage.KeyLastSelectedFolder, []byte("")); err != nil {
		return err
	}
	fmt.Println("Saved as flashcard")
	return nil
}

// ImportBatch reads cards from an import file, translating entries that
// carry no back side. Entries that fail to translate are skipped with a
// warning so the rest of the batch still goes through.
func (p *Processor) ImportBatch(ctx context.Context, filename string) error {
	entries, err := batch.ReadImportFile(filename)
	if err != nil {
		return err
	}

	var provider translate.Provider
	var pipeline *translate.Pipeline

	imported := 0
	skipped := 0
	for i, entry := range entries {
		fmt.Printf("[%d/%d] %s\n", i+1, len(entries), entry.Front)

		back := entry.Back
		frontLang := p.flags.FrontLang
		backLang := p.flags.BackLang

		if entry.NeedsTranslation {
			if pipeline == nil {
				provider, err = p.translationProvider(ctx)
				if err != nil {
					return err
				}
				pipeline = translate.NewPipeline(provider, p.gate)
			}

			result, err := p.translateWithCooldown(ctx, pipeline, entry.Front)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping '%s': %v\n", entry.Front, err)
				skipped++
				continue
			}
			back = strings.TrimSpace(result.Display())
		}

		c := card.Flashcard{
			FrontText:  entry.Front,
			BackText:   back,
			FrontColor: p.flags.FrontColor,
			BackColor:  p.flags.BackColor,
			FrontLang:  frontLang,
			BackLang:   backLang,
		}
		if err := p.cards.Append(c); err != nil {
			return err
		}
		imported++
	}

	fmt.Printf("\nImported %d card(s)", imported)
	if skipped > 0 {
		fmt.Printf(", skipped %d", skipped)
	}
	fmt.Println()
	return nil
}

// translateWithCooldown retries a translation once after waiting out the
// cooldown window.
func (p *Processor) translateWithCooldown(ctx context.Context, pipeline *translate.Pipeline, text string) (translate.Result, error) {
	result, err := pipeline.Translate(ctx, text, p.flags.FromLang, p.flags.ToLang)
	if errors.Is(err, translate.ErrRateLimited) {
		wait := p.gate.Remaining()
		fmt.Printf("Cooling down for %v...\n", wait.Round(time.Millisecond))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return translate.Result{}, ctx.Err()
		}
		result, err = pipeline.Translate(ctx, text, p.flags.FromLang, p.flags.ToLang)
	}
	return result, err
}

// ExportCSV writes the card collection as an Anki-importable CSV file.
// With --folder only that folder's cards are exported.
func (p *Processor) ExportCSV() error {
	var cards []card.Flashcard
	var err error
	if p.flags.Folder != "" {
		f, ok, ferr := p.folders.FindByName(p.flags.Folder)
		if ferr != nil {
			return ferr
		}
		if !ok {
			return fmt.Errorf("no such folder: %s", p.flags.Folder)
		}
		cards, err = p.cards.FilterByFolder(f.ID, p.folderLive())
	} else {
		cards, err = p.cards.ListAll()
	}
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return fmt.Errorf("no cards to export")
	}

	options := anki.DefaultExporterOptions()
	if p.flags.OutputPath != "" {
		options.OutputPath = p.flags.OutputPath
	}
	options.IncludeHeaders = !p.flags.NoHeaders

	exporter := anki.NewExporter(options)
	for _, c := range cards {
		exporter.AddCard(c)
	}

	folders, err := p.folders.ListAll()
	if err != nil {
		return err
	}
	for _, f := range folders {
		exporter.SetFolderName(f.ID, f.Name)
	}

	if err := exporter.GenerateCSV(); err != nil {
		return err
	}
	fmt.Printf("Exported %d card(s) to %s\n", exporter.Count(), options.OutputPath)
	return nil
}

// Backup snapshots both collections to a timestamped file under dir
func (p *Processor) Backup(dir string) error {
	path, err := backup.Snapshot(p.kv, dir)
	if err != nil {
		return err
	}
	fmt.Printf("Backup written to %s\n", path)
	return nil
}

// RestoreBackup replaces both collections with the contents of a
// snapshot file
func (p *Processor) RestoreBackup(path string) error {
	if err := backup.Restore(p.kv, path); err != nil {
		return err
	}
	fmt.Printf("Restored collections from %s\n", path)
	return nil
}

// resolveFolder maps the --folder flag to a folder id. An empty flag
// means the card stays unfiled.
func (p *Processor) resolveFolder() (string, error) {
	if p.flags.Folder == "" {
		return "", nil
	}
	f, ok, err := p.folders.FindByName(p.flags.Folder)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no such folder: %s", p.flags.Folder)
	}
	return f.ID, nil
}

// folderLive returns a membership check over the current folder ids, so
// cards pointing at removed folders show up as unfiled.
func (p *Processor) folderLive() func(id string) bool {
	ids := make(map[string]bool)
	if folders, err := p.folders.ListAll(); err == nil {
		for _, f := range folders {
			ids[f.ID] = true
		}
	}
	return func(id string) bool { return ids[id] }
}

// translationProvider builds the provider from flags and configured API
// keys, unless a provider has been injected.
func (p *Processor) translationProvider(ctx context.Context) (translate.Provider, error) {
	if p.provider != nil {
		return p.provider, nil
	}

	config := translate.DefaultProviderConfig()
	config.Provider = p.flags.Provider
	config.GoogleAPIKey = cli.GetGoogleTranslateKey()
	config.OpenAIKey = cli.GetOpenAIKey()
	config.GeminiAPIKey = cli.GetGeminiKey()
	if p.flags.OpenAIModel != "" {
		config.OpenAIModel = p.flags.OpenAIModel
	}
	if p.flags.GeminiModel != "" {
		config.GeminiModel = p.flags.GeminiModel
	}
	return translate.NewProvider(ctx, config)
}
