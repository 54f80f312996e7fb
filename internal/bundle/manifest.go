package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file that marks a directory as a bundle.
const ManifestName = "manifest.yaml"

// Manifest declares what a folder bundle offers. Catalog listings come
// straight from here; resolution works off the directory layout.
type Manifest struct {
	// Human-friendly bundle name.
	Name string `yaml:"name"`
	// Puyo skin names this bundle provides.
	Skins []string `yaml:"skins"`
	// Background set names.
	Backgrounds []string `yaml:"backgrounds"`
	// Character skin names.
	CharSkins []string `yaml:"char_skins"`
	// Sound effect set names.
	Sfx []string `yaml:"sfx"`
}

// LoadManifest reads and parses dir/manifest.yaml.
func LoadManifest(dir string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	return m, nil
}
