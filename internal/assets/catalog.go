package assets

import "sort"

// Catalog queries aggregate across every bundle rather than falling back:
// the result is the deduplicated union of each bundle's listing, sorted.
// They feed UI enumeration (skin pickers), not token resolution.

// ListPuyoSkins returns every puyo skin name known to any bundle.
func (m *Manager) ListPuyoSkins() []string {
	return m.union(Bundle.ListPuyoSkins)
}

// ListBackgrounds returns every background name known to any bundle.
func (m *Manager) ListBackgrounds() []string {
	return m.union(Bundle.ListBackgrounds)
}

// ListCharacterSkins returns every character skin name known to any bundle.
func (m *Manager) ListCharacterSkins() []string {
	return m.union(Bundle.ListCharacterSkins)
}

// ListSfx returns every sound effect set name known to any bundle.
func (m *Manager) ListSfx() []string {
	return m.union(Bundle.ListSfx)
}

func (m *Manager) union(list func(Bundle) []string) []string {
	seen := make(map[string]struct{})
	for _, b := range m.bundles {
		for _, name := range list(b) {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
