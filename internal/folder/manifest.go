package folder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the bundle descriptor expected at the bundle root.
const ManifestFileName = "manifest.yaml"

// Manifest describes a folder bundle. Name is required; a bundle without
// a readable, well-formed manifest is invalid.
type Manifest struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// Manifest errors.
var (
	ErrManifestMissing = errors.New("bundle manifest missing")
	ErrManifestName    = errors.New("bundle manifest has no name")
)

// readManifest loads and validates the manifest at the bundle root.
func readManifest(root string) (Manifest, error) {
	var m Manifest

	data, err := os.ReadFile(filepath.Join(root, ManifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return m, fmt.Errorf("%w: %s", ErrManifestMissing, root)
		}
		return m, fmt.Errorf("read manifest: %w", err)
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Name == "" {
		return m, fmt.Errorf("%w: %s", ErrManifestName, root)
	}
	return m, nil
}
