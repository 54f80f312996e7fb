// Package registry discovers bundle directories on disk.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"assetd/internal/bundle"
	"assetd/internal/common/fsutil"
	"assetd/pkg/types"
)

// LoadDir scans a directory for bundle subdirectories (those carrying a
// manifest) and builds descriptors from them. ID is the directory name; Path
// is absolute. Results are sorted by name so load order is deterministic:
// the scan order on disk becomes resolution priority.
func LoadDir(dir string) ([]types.BundleInfo, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var bundles []types.BundleInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := filepath.Join(abs, e.Name())
		if !fsutil.PathExists(filepath.Join(p, bundle.ManifestName)) {
			continue
		}
		info := types.BundleInfo{ID: e.Name(), Name: e.Name(), Path: p}
		if m, err := bundle.LoadManifest(p); err == nil && m.Name != "" {
			info.Name = m.Name
		}
		bundles = append(bundles, info)
	}
	sort.Slice(bundles, func(i, j int) bool { return bundles[i].ID < bundles[j].ID })
	return bundles, nil
}
