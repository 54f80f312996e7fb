// Package assets provides resolution and lifecycle management for game asset
// bundles. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructors, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - bundle.go: the Bundle capability contract plus Frontend/Image/Sound handles.
//   - lifecycle.go: LoadBundle, DeleteBundle, UnloadAll, ReloadBundles, Activate.
//   - clone.go: deep-clone snapshotting of a whole manager.
//   - resolve.go: typed first-match-wins resolution across the bundle chain.
//   - catalog.go: aggregated catalog queries (skins, backgrounds, sfx).
//   - events.go: lifecycle event publishing (EventPublisher, noop default).
//   - eventpub_memory.go: in-memory publisher for tests.
//   - metrics.go: Prometheus counters for loads, rejections, and misses.
//   - status.go: status reporting for the HTTP layer.
//   - guarded.go: RWMutex adapter for concurrent callers (HTTP server).
//
// The Manager itself is synchronous and unlocked: it assumes a single caller,
// and the bundle slice is owned and mutated only by the Manager holding it.
// Concurrent consumers must go through Guarded (or provide equivalent external
// synchronization).
//
// External packages should treat this package as the orchestration layer:
// concrete bundle formats, image/sound decoding, and the rendering/audio
// front-end live elsewhere and plug in through the Bundle and Frontend
// contracts.
package assets
