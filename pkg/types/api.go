package types

// BundleInfo describes a discoverable bundle directory on disk.
type BundleInfo struct {
	// Stable identifier for the bundle (directory name).
	// example: base
	ID string `json:"id" example:"base"`
	// Human-friendly name from the bundle manifest.
	// example: Base Assets
	Name string `json:"name" example:"Base Assets"`
	// Absolute path to the bundle directory on disk.
	// example: /home/user/assets/base
	Path string `json:"path" example:"/home/user/assets/base"`
}

// BundleStatus summarizes a loaded bundle for /status.
type BundleStatus struct {
	// ID of the bundle.
	// example: base
	ID string `json:"id" example:"base"`
	// Position in the resolution chain (0 = tried first).
	// example: 0
	Position int `json:"position" example:"0"`
	// Whether the bundle passed validation on its last reload.
	// example: true
	Valid bool `json:"valid" example:"true"`
	// Whether the bundle is live (false = tombstoned, swept on next unload pass).
	// example: true
	Active bool `json:"active" example:"true"`
}

// BundlesResponse wraps the list of bundles returned by GET /bundles.
type BundlesResponse struct {
	// Loaded bundles in resolution order.
	Bundles []BundleStatus `json:"bundles"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Loaded bundles in resolution order.
	Bundles []BundleStatus `json:"bundles"`
	// Whether the manager has both a frontend and a logger bound.
	// example: true
	Activated bool `json:"activated" example:"true"`
	// Total number of bundle load attempts accepted.
	// example: 3
	LoadsTotal uint64 `json:"loads_total" example:"3"`
	// Total number of bundles rejected for failing validation.
	// example: 1
	RejectsTotal uint64 `json:"rejects_total" example:"1"`
	// Total number of resolution misses across all asset kinds.
	// example: 7
	MissesTotal uint64 `json:"misses_total" example:"7"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// CatalogResponse is returned by GET /catalog/{kind}.
type CatalogResponse struct {
	// Catalog kind: skins, backgrounds, charskins, or sfx.
	// example: skins
	Kind string `json:"kind" example:"skins"`
	// Deduplicated union of names across all bundles, sorted.
	// example: ["classic","neon"]
	Names []string `json:"names" example:"classic,neon"`
}

// ResolveRequest asks the server to resolve one token through the bundle chain.
type ResolveRequest struct {
	// Asset kind: image, char_image, sound, char_sound, animation, char_animation.
	// example: image
	Kind string `json:"kind" example:"image"`
	// Token name for image/sound/animation kinds.
	// example: background
	Token string `json:"token,omitempty" example:"background"`
	// Custom name (skin/variant) for image and sound kinds.
	// example: classic
	Custom string `json:"custom,omitempty" example:"classic"`
	// Character name for char-scoped kinds.
	// example: arle
	Character string `json:"character,omitempty" example:"arle"`
	// Script name for the animation kind.
	// example: win.xml
	Script string `json:"script,omitempty" example:"win.xml"`
}

// ResolveResponse reports the outcome of a resolution.
type ResolveResponse struct {
	// Whether a bundle satisfied the request.
	// example: true
	Found bool `json:"found" example:"true"`
	// Resolved path on disk, empty on a miss.
	// example: /home/user/assets/base/images/background.png
	Path string `json:"path,omitempty" example:"/home/user/assets/base/images/background.png"`
}

// ReloadResponse is returned by POST /reload.
type ReloadResponse struct {
	// Whether any bundle was reloaded (false when none are loaded).
	// example: true
	Reloaded bool `json:"reloaded" example:"true"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
