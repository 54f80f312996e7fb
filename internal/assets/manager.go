package assets

import (
	"time"

	"github.com/rs/zerolog"
)

// Manager owns an ordered collection of bundles and resolves typed asset
// requests against them, first match wins. Insertion order is resolution
// priority; nothing ever re-sorts the collection.
type Manager struct {
	bundles   []Bundle
	front     Frontend
	log       zerolog.Logger
	hasLogger bool
	activated bool

	publisher EventPublisher
	startTime time.Time

	loadsTotal   uint64
	rejectsTotal uint64
	missesTotal  uint64
}

// New constructs a Manager bound to a frontend and logger. Either may be nil;
// resolution is only safe once Activate has been given both.
func New(fe Frontend, log *zerolog.Logger) *Manager {
	return NewWithConfig(ManagerConfig{Frontend: fe, Logger: log})
}

// Activated reports whether the manager holds both a frontend and a logger.
// It is recomputed by Activate and never set directly.
func (m *Manager) Activated() bool { return m.activated }

// BundleCount returns the number of live bundles in the chain.
func (m *Manager) BundleCount() int { return len(m.bundles) }

// Close detaches the manager from its bundles, closing each one. The bundle
// slice is emptied so a closed manager resolves nothing.
func (m *Manager) Close() error {
	for _, b := range m.bundles {
		_ = b.Close()
	}
	m.bundles = nil
	bundlesLive.Set(0)
	if m.hasLogger {
		m.log.Debug().Msg("asset manager destroyed")
	}
	return nil
}
