package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Document is the parsed ado.yaml mapping. Keys the tool does not know
// about are preserved verbatim across read-merge-write cycles.
type Document = map[string]any

// DefaultPath returns the per-user config file location,
// <user-config-dir>/fus/ado.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}

	return filepath.Join(dir, "fus", "ado.yaml"), nil
}

// Read parses the config file. A missing file is an empty document, not
// an error.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}

		return nil, fmt.Errorf("read config file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

// Write serializes the full document to path, creating the parent
// directory if absent. The replace is atomic so a crash mid-write never
// leaves a torn file.
func Write(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// SetNested sets a dotted key, creating intermediate mappings as needed.
// An intermediate value that is not a mapping is overwritten with a fresh
// one; that loss is accepted behavior, matching the tool's documented
// config semantics.
func SetNested(doc Document, dottedKey string, value any) {
	segments := strings.Split(dottedKey, ".")
	current := doc

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}

		current = next
	}

	current[segments[len(segments)-1]] = value
}
