package assets

import (
	"github.com/rs/zerolog"
)

// Clone produces an independent Manager over clones of the held bundles.
// Each clone is fed back through LoadBundle, so it is re-initialized and
// re-validated against the same frontend as the original rather than frozen
// as a bit-identical snapshot; a clone that fails validation is dropped from
// the copy. The new manager is then activated with the original's frontend
// and logger. Mutating either manager's chain never affects the other.
func (m *Manager) Clone() *Manager {
	current := NewWithConfig(ManagerConfig{Frontend: m.front, Publisher: m.publisher})
	for _, b := range m.bundles {
		current.LoadBundle(b.Clone(), 0)
	}
	var log *zerolog.Logger
	if m.hasLogger {
		log = &m.log
	}
	current.Activate(m.front, log)
	return current
}
