package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const schemaFileName = "config.schema.json"

const configHeader = "#:schema ./" + schemaFileName + "\n# floaty configuration\n\n"

// WriteConfig encodes cfg as TOML and writes it to path on fs, creating the
// parent directory.
func WriteConfig(fs afero.Fs, cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefaultConfig writes the default configuration to path unless a file
// already exists there. It reports whether a file was written.
func WriteDefaultConfig(fs afero.Fs, path string) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	return true, WriteConfig(fs, DefaultConfig(), path)
}

// Init writes the default configuration to TargetFile unless a file exists
// there.
func (m *Manager) Init() (path string, written bool, err error) {
	path = m.TargetFile()
	written, err = WriteDefaultConfig(m.fs, path)
	return path, written, err
}

// SchemaFile returns where the JSON schema referenced by the config header
// lives: next to the config file.
func (m *Manager) SchemaFile() string {
	return filepath.Join(filepath.Dir(m.TargetFile()), schemaFileName)
}

// WriteSchema writes the JSON schema to SchemaFile and returns its path.
func (m *Manager) WriteSchema() (string, error) {
	data, err := NewSchemaProvider().JSONSchema()
	if err != nil {
		return "", err
	}
	path := m.SchemaFile()
	if err := m.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(m.fs, path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
