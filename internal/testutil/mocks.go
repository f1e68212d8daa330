package testutil

import (
	"context"
	"fmt"
)

// MemoryKV is an in-memory key-value substrate for tests. Errors can be
// injected per key and operation, and all calls are recorded.
type MemoryKV struct {
	Data      map[string][]byte
	GetErrors map[string]error
	SetErrors map[string]error
	Calls     []string
}

// NewMemoryKV creates an empty in-memory substrate.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		Data:      make(map[string][]byte),
		GetErrors: make(map[string]error),
		SetErrors: make(map[string]error),
	}
}

// Get returns the stored blob for key.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("GET %s", key))

	if err, ok := m.GetErrors[key]; ok {
		return nil, false, err
	}
	value, ok := m.Data[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.Calls = append(m.Calls, fmt.Sprintf("SET %s (%d bytes)", key, len(value)))

	if err, ok := m.SetErrors[key]; ok {
		return err
	}
	m.Data[key] = value
	return nil
}

// Remove deletes key.
func (m *MemoryKV) Remove(key string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("REMOVE %s", key))

	if err, ok := m.SetErrors[key]; ok {
		return err
	}
	delete(m.Data, key)
	return nil
}

// MockProvider mocks a remote translation provider.
type MockProvider struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// NewMockProvider creates a provider with no canned translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: make(map[string]string),
		Errors:       make(map[string]error),
	}
}

// Translate returns the canned translation for text.
func (m *MockProvider) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (%s->%s)", text, sourceCode, targetCode))

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Name returns the provider name.
func (m *MockProvider) Name() string { return "mock" }
