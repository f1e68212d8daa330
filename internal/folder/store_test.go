package folder

import (
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/flipcard/internal/card"
	"codeberg.org/snonux/flipcard/internal/storage"
	"codeberg.org/snonux/flipcard/internal/testutil"
)

func newTestStores(t *testing.T) (*Store, *card.Store, *testutil.MemoryKV) {
	t.Helper()
	kv := testutil.NewMemoryKV()
	cards := card.NewStore(kv)
	return NewStore(kv, cards), cards, kv
}

func TestCreate(t *testing.T) {
	store, _, _ := newTestStores(t)

	f, err := store.Create("Animals")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if f.ID == "" {
		t.Error("Created folder has no id")
	}
	if f.Name != "Animals" {
		t.Errorf("Unexpected name: %q", f.Name)
	}
	if f.CreatedAt == 0 {
		t.Error("CreatedAt not set")
	}

	folders, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(folders) != 1 || folders[0].ID != f.ID {
		t.Errorf("Folder not persisted: %+v", folders)
	}
}

func TestCreate_TrimsName(t *testing.T) {
	store, _, _ := newTestStores(t)

	f, err := store.Create("  Animals  ")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if f.Name != "Animals" {
		t.Errorf("Name not trimmed: %q", f.Name)
	}
}

func TestCreate_EmptyNameFails(t *testing.T) {
	store, _, _ := newTestStores(t)

	if _, err := store.Create("   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}

	folders, _ := store.ListAll()
	if len(folders) != 0 {
		t.Error("Collection mutated on validation failure")
	}
}

func TestCreate_NameTooLongFails(t *testing.T) {
	store, _, _ := newTestStores(t)

	if _, err := store.Create(strings.Repeat("a", MaxNameLen+1)); !errors.Is(err, ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}

	// Exactly the limit is fine
	if _, err := store.Create(strings.Repeat("a", MaxNameLen)); err != nil {
		t.Errorf("Create at the length limit failed: %v", err)
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	store, _, _ := newTestStores(t)

	a, _ := store.Create("First")
	b, _ := store.Create("Second")
	if a.ID == b.ID {
		t.Errorf("Folders share id %q", a.ID)
	}
}

func TestRename(t *testing.T) {
	store, _, _ := newTestStores(t)

	f, _ := store.Create("Animols")
	if err := store.Rename(f.ID, "Animals"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	folders, _ := store.ListAll()
	if folders[0].Name != "Animals" {
		t.Errorf("Rename not persisted: %+v", folders[0])
	}
}

func TestRename_BlankIsCancel(t *testing.T) {
	store, _, _ := newTestStores(t)

	f, _ := store.Create("Animals")
	if err := store.Rename(f.ID, "   "); err != nil {
		t.Fatalf("Blank rename must be a no-op, got %v", err)
	}

	folders, _ := store.ListAll()
	if folders[0].Name != "Animals" {
		t.Errorf("Blank rename changed the name: %+v", folders[0])
	}
}

func TestRename_UnknownIDIsNoop(t *testing.T) {
	store, _, kv := newTestStores(t)
	store.Create("Animals")

	before := len(kv.Calls)
	if err := store.Rename("missing", "Plants"); err != nil {
		t.Fatalf("Rename of unknown id failed: %v", err)
	}
	for _, call := range kv.Calls[before:] {
		if strings.HasPrefix(call, "SET") {
			t.Error("Rename of unknown id persisted")
		}
	}
}

func TestDeleteCascade(t *testing.T) {
	store, cards, _ := newTestStores(t)

	f, _ := store.Create("Animals")
	cards.Append(card.Flashcard{ID: 1, FrontText: "Cat", BackText: "Kedi", FolderID: f.ID})
	cards.Append(card.Flashcard{ID: 2, FrontText: "Dog", BackText: "Köpek", FolderID: f.ID})
	cards.Append(card.Flashcard{ID: 3, FrontText: "Bread", BackText: "Ekmek"})

	if err := store.DeleteCascade(f.ID); err != nil {
		t.Fatalf("DeleteCascade failed: %v", err)
	}

	folders, _ := store.ListAll()
	if len(folders) != 0 {
		t.Errorf("Folder still present after cascade: %+v", folders)
	}

	all, _ := cards.ListAll()
	for _, c := range all {
		if c.FolderID != "" {
			t.Errorf("Card %d still filed under %q after cascade", c.ID, c.FolderID)
		}
	}
}

func TestDeleteCascade_UnknownIDIsNoop(t *testing.T) {
	store, cards, _ := newTestStores(t)

	store.Create("Animals")
	cards.Append(card.Flashcard{ID: 1, FrontText: "a", BackText: "b"})

	if err := store.DeleteCascade("missing"); err != nil {
		t.Fatalf("DeleteCascade of unknown id failed: %v", err)
	}
	folders, _ := store.ListAll()
	if len(folders) != 1 {
		t.Errorf("Unknown-id cascade removed a folder: %+v", folders)
	}
}

func TestDeleteCascade_ReassignFailureLeavesFolderRemoved(t *testing.T) {
	kv := testutil.NewMemoryKV()
	cards := card.NewStore(kv)
	store := NewStore(kv, cards)

	f, _ := store.Create("Animals")
	cards.Append(card.Flashcard{ID: 1, FrontText: "Cat", BackText: "Kedi", FolderID: f.ID})

	// Step 2 of the cascade fails after step 1 persisted
	kv.SetErrors[storage.KeyFlashcards] = &storage.Error{Op: "set", Key: storage.KeyFlashcards, Err: errors.New("disk full")}

	err := store.DeleteCascade(f.ID)
	if err == nil {
		t.Fatal("Expected the reassignment failure to surface")
	}

	// The folder removal is not rolled back; the card keeps its now
	// dangling reference until the read side repairs it.
	folders, _ := store.ListAll()
	if len(folders) != 0 {
		t.Errorf("Folder removal was rolled back: %+v", folders)
	}

	delete(kv.SetErrors, storage.KeyFlashcards)
	all, _ := cards.ListAll()
	if all[0].FolderID != f.ID {
		t.Errorf("Card reference unexpectedly rewritten: %+v", all[0])
	}

	unfiled, _ := cards.FilterByFolder("", func(string) bool { return false })
	if len(unfiled) != 1 {
		t.Error("Dangling card not readable as unfiled")
	}
}

func TestFindByName(t *testing.T) {
	store, _, _ := newTestStores(t)

	created, _ := store.Create("Animals")

	f, ok, err := store.FindByName("Animals")
	if err != nil || !ok {
		t.Fatalf("FindByName failed: ok=%v err=%v", ok, err)
	}
	if f.ID != created.ID {
		t.Errorf("Found wrong folder: %+v", f)
	}

	_, ok, err = store.FindByName("Plants")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if ok {
		t.Error("Found a folder that does not exist")
	}
}
