package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigFileName is the settings file name inside the config directory.
const ConfigFileName = "config.toml"

// ConfigStore is a read-only driven.ConfigStore backed by a TOML file.
// The file is parsed once when the store is opened.
type ConfigStore struct {
	filePath string
	tree     map[string]any
}

// NewConfigStore opens <configDir>/config.toml.
// If configDir is empty, defaults to ~/.minigrep.
// A missing file or directory yields an empty store; nothing is created on disk.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".minigrep")
	}

	s := &ConfigStore{filePath: filepath.Join(configDir, ConfigFileName)}

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, &s.tree); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	return s, nil
}

// GetString returns the string at key.
func (s *ConfigStore) GetString(key string) (string, bool) {
	str, ok := s.lookup(key).(string)
	return str, ok
}

// GetBool returns the boolean at key.
func (s *ConfigStore) GetBool(key string) (bool, bool) {
	b, ok := s.lookup(key).(bool)
	return b, ok
}

// Path returns the settings file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// lookup walks nested tables along the dotted key. It returns nil when
// any segment is missing or an intermediate value is not a table.
func (s *ConfigStore) lookup(key string) any {
	var node any = s.tree
	for _, part := range strings.Split(key, ".") {
		table, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		if node, ok = table[part]; !ok {
			return nil
		}
	}
	return node
}
