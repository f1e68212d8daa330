package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKV_GetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	value, ok, err := kv.Get("flashcards")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected ok=false for missing key")
	}
	if value != nil {
		t.Errorf("Expected nil value for missing key, got %q", value)
	}
}

func TestSQLiteKV_SetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("folders", []byte(`[{"id":"1","name":"Animals"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := kv.Get("folders")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected ok=true after Set")
	}
	if string(value) != `[{"id":"1","name":"Animals"}]` {
		t.Errorf("Unexpected value: %s", value)
	}
}

func TestSQLiteKV_SetOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("flashcards", []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("flashcards", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Second Set failed: %v", err)
	}

	value, ok, err := kv.Get("flashcards")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(value) != `[{"id":1}]` {
		t.Errorf("Expected overwritten value, got %s", value)
	}
}

func TestSQLiteKV_Remove(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Set("flashcards", []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Remove("flashcards"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	_, ok, err := kv.Get("flashcards")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected key to be gone after Remove")
	}

	// Removing a missing key is a no-op
	if err := kv.Remove("flashcards"); err != nil {
		t.Errorf("Remove of missing key failed: %v", err)
	}
}

func TestSQLiteKV_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := kv.Set("folders", []byte(`["kept"]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	kv.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("folders")
	if err != nil || !ok {
		t.Fatalf("Get after reopen failed: ok=%v err=%v", ok, err)
	}
	if string(value) != `["kept"]` {
		t.Errorf("Value did not survive reopen: %s", value)
	}
}

func TestSQLiteKV_ErrorAfterClose(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	kv.Close()

	err = kv.Set("flashcards", []byte("[]"))
	if err == nil {
		t.Fatal("Expected error writing to closed database")
	}

	var storageErr *Error
	if !errors.As(err, &storageErr) {
		t.Errorf("Expected *storage.Error, got %T: %v", err, err)
	}
}
