package assets

import (
	"time"

	"github.com/rs/zerolog"
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	// Frontend bundles render into. May be nil until Activate.
	Frontend Frontend
	// Logger for diagnostics. nil means no logger is bound yet; the manager
	// substitutes a no-op logger internally so failure paths stay safe.
	Logger *zerolog.Logger
	// Publisher receives lifecycle events. nil installs a no-op publisher.
	Publisher EventPublisher
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		front: cfg.Frontend,
		log:   zerolog.Nop(),
	}
	if cfg.Logger != nil {
		m.log = *cfg.Logger
		m.hasLogger = true
	}
	if cfg.Publisher != nil {
		m.publisher = cfg.Publisher
	} else {
		m.publisher = noopPublisher{}
	}
	m.activated = m.front != nil && m.hasLogger
	m.startTime = time.Now()
	if m.hasLogger {
		m.log.Debug().Msg("asset manager loaded")
	}
	return m
}
