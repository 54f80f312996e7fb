package assets

import (
	"github.com/rs/zerolog"
)

// Activate rebinds the frontend and logger, reloads every held bundle against
// the new frontend, and recomputes the activated flag. Passing nil for either
// reference deactivates the manager without dropping bundles.
func (m *Manager) Activate(fe Frontend, log *zerolog.Logger) {
	m.front = fe
	if log != nil {
		m.log = *log
		m.hasLogger = true
	} else {
		m.log = zerolog.Nop()
		m.hasLogger = false
	}
	m.ReloadBundles()
	// Do not activate unless every failure path has a logger to land on.
	m.activated = m.front != nil && m.hasLogger
}

// LoadBundle initializes a bundle against the current frontend, reloads it
// once, binds the logger, and appends it to the chain iff it validates.
// Invalid bundles are discarded, not retained. The returned bool is the
// bundle's post-reload validity.
//
// priority is accepted for interface stability but has no effect: bundles are
// always appended, so effective priority is strictly load order.
func (m *Manager) LoadBundle(b Bundle, priority int) bool {
	_ = priority
	b.Init(m.front)
	b.Reload()
	if m.hasLogger {
		b.SetLogger(&m.log)
	} else {
		b.SetLogger(nil)
	}
	if !b.Valid() {
		m.rejectsTotal++
		bundleRejectsTotal.Inc()
		m.publisher.Publish(Event{Name: "bundle_rejected"})
		return false
	}
	m.bundles = append(m.bundles, b)
	m.loadsTotal++
	bundleLoadsTotal.Inc()
	bundlesLive.Set(float64(len(m.bundles)))
	m.publisher.Publish(Event{Name: "bundle_load", Fields: map[string]any{"position": len(m.bundles) - 1}})
	return true
}

// DeleteBundle removes a bundle from the chain and closes it. The return
// value is always false: it signals "operation completed, nothing further to
// report", not an error.
func (m *Manager) DeleteBundle(b Bundle) bool {
	for i, held := range m.bundles {
		if held == b {
			m.bundles = append(m.bundles[:i], m.bundles[i+1:]...)
			break
		}
	}
	_ = b.Close()
	bundlesLive.Set(float64(len(m.bundles)))
	m.publisher.Publish(Event{Name: "bundle_delete"})
	return false
}

// UnloadAll sweeps tombstoned bundles out of the chain, closing each one and
// preserving the relative order of survivors. It returns true only when the
// chain was already empty on entry; otherwise false, meaning "more may
// remain, call again". Callers repeat the sweep until it reports true or
// bundles stop going inactive.
func (m *Manager) UnloadAll() bool {
	if len(m.bundles) == 0 {
		return true
	}
	kept := m.bundles[:0]
	swept := 0
	for _, b := range m.bundles {
		if b.Active() {
			kept = append(kept, b)
			continue
		}
		_ = b.Close()
		swept++
	}
	m.bundles = kept
	bundlesLive.Set(float64(len(m.bundles)))
	m.publisher.Publish(Event{Name: "unload_sweep", Fields: map[string]any{"swept": swept}})
	return false
}

// ReloadBundles reloads every bundle against the current frontend, in order.
// It reports whether at least one bundle was reloaded.
func (m *Manager) ReloadBundles() bool {
	for _, b := range m.bundles {
		b.ReloadWith(m.front)
	}
	if len(m.bundles) == 0 {
		return false
	}
	m.publisher.Publish(Event{Name: "reload", Fields: map[string]any{"count": len(m.bundles)}})
	return true
}
