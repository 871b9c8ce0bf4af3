package storage

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBackend stores one file per key in a directory.
type DiskvBackend struct {
	path string
	d    *diskv.Diskv
}

func NewDiskvBackend(path string) *DiskvBackend {
	return &DiskvBackend{path: path}
}

// Keys are a handful of fixed names, so every file lives directly in path.
func flatTransform(string) []string { return []string{} }

func (s *DiskvBackend) open() {
	s.d = diskv.New(diskv.Options{
		BasePath:     s.path,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})
}

func (s *DiskvBackend) Init() error {
	if err := os.MkdirAll(s.path, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	s.open()
	return nil
}

func (s *DiskvBackend) Load() error {
	if s.d != nil {
		return nil
	}
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("failed to read store directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store path %s is not a directory", s.path)
	}
	s.open()
	return nil
}

func (s *DiskvBackend) Close() error {
	s.d = nil
	return nil
}

func (s *DiskvBackend) Get(key string) (string, bool, error) {
	if s.d == nil {
		return "", false, ErrNotLoaded
	}
	if !s.d.Has(key) {
		return "", false, nil
	}
	v, err := s.d.Read(key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(v), true, nil
}

func (s *DiskvBackend) Set(key, value string) error {
	if s.d == nil {
		return ErrNotLoaded
	}
	if err := s.d.WriteString(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvBackend) Delete(key string) error {
	if s.d == nil {
		return ErrNotLoaded
	}
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *DiskvBackend) Keys() ([]string, error) {
	if s.d == nil {
		return nil, ErrNotLoaded
	}
	var keys []string
	for k := range s.d.Keys(nil) {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *DiskvBackend) GetConfigPath() string {
	return s.path
}
