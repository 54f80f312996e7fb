package bundle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	data := "name: Mod Pack\nskins:\n  - classic\n  - neon\n"
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "Mod Pack" || len(m.Skins) != 2 {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	if _, err := LoadManifest(t.TempDir()); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestLoadManifest_Invalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte("skins: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadManifest(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
