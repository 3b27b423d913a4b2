package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileProfile is the secure channel for the display name: a TOML file written
// with 0600 permissions, separate from the recents database. A missing file
// reads as the empty default.
type FileProfile struct {
	path string
}

func NewFileProfile(path string) *FileProfile {
	return &FileProfile{path: path}
}

type profileFile struct {
	DisplayName string `toml:"display-name"`
}

// LoadName reads the stored display name, returning "" if no profile exists yet.
func (p *FileProfile) LoadName() (string, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading profile: %w", err)
	}

	var prof profileFile
	if err := toml.Unmarshal(data, &prof); err != nil {
		return "", fmt.Errorf("error parsing profile: %w", err)
	}
	return prof.DisplayName, nil
}

// SaveName overwrites the stored display name.
func (p *FileProfile) SaveName(name string) error {
	data, err := toml.Marshal(profileFile{DisplayName: name})
	if err != nil {
		return fmt.Errorf("marshaling error: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o750); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}
	return os.WriteFile(p.path, data, 0o600)
}
