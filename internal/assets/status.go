package assets

import (
	"time"

	"assetd/pkg/types"
)

// BundleIDer lets a bundle expose a stable identifier for status reporting.
// Bundles that do not implement it are reported with an empty ID.
type BundleIDer interface {
	ID() string
}

// Status builds a status response describing the chain.
func (m *Manager) Status() types.StatusResponse {
	resp := types.StatusResponse{
		Activated:      m.activated,
		LoadsTotal:     m.loadsTotal,
		RejectsTotal:   m.rejectsTotal,
		MissesTotal:    m.missesTotal,
		UptimeSeconds:  int64(time.Since(m.startTime).Seconds()),
		ServerTimeUnix: time.Now().Unix(),
	}
	resp.Bundles = make([]types.BundleStatus, 0, len(m.bundles))
	for i, b := range m.bundles {
		st := types.BundleStatus{
			Position: i,
			Valid:    b.Valid(),
			Active:   b.Active(),
		}
		if ider, ok := b.(BundleIDer); ok {
			st.ID = ider.ID()
		}
		resp.Bundles = append(resp.Bundles, st)
	}
	return resp
}
