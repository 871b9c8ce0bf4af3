package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// JSONBackend keeps every key in one JSON object file that is rewritten on
// each change. Values that are JSON objects or arrays are embedded as-is so
// the file stays readable; anything else is stored as a JSON string.
type JSONBackend struct {
	path string
	data map[string]json.RawMessage
}

func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

func (s *JSONBackend) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		// Existing data is kept
		return s.read()
	}
	s.data = map[string]json.RawMessage{}
	return s.save()
}

func (s *JSONBackend) Load() error {
	if s.data != nil {
		return nil
	}
	return s.read()
}

func (s *JSONBackend) read() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
		}
	}
	s.data = data
	return nil
}

func (s *JSONBackend) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a sibling file first so a failed write leaves the old file intact
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONBackend) Close() error {
	s.data = nil
	return nil
}

func (s *JSONBackend) Get(key string) (string, bool, error) {
	if s.data == nil {
		return "", false, ErrNotLoaded
	}
	raw, ok := s.data[key]
	if !ok {
		return "", false, nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return "", false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
		}
		return str, true, nil
	}
	return string(raw), true, nil
}

func (s *JSONBackend) Set(key, value string) error {
	if s.data == nil {
		return ErrNotLoaded
	}

	prev, had := s.data[key]
	s.data[key] = encodeValue(value)
	if err := s.save(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func encodeValue(value string) json.RawMessage {
	trimmed := bytes.TrimSpace([]byte(value))
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(value)
	return quoted
}

func (s *JSONBackend) Delete(key string) error {
	if s.data == nil {
		return ErrNotLoaded
	}
	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := s.save(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

func (s *JSONBackend) Keys() ([]string, error) {
	if s.data == nil {
		return nil, ErrNotLoaded
	}
	return slices.Sorted(maps.Keys(s.data)), nil
}

func (s *JSONBackend) GetConfigPath() string {
	return s.path
}
