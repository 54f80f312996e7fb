package assets

import (
	"sync"

	"assetd/pkg/types"
)

// Guarded wraps a Manager with an RWMutex so concurrent callers (the HTTP
// server, the filesystem watcher) can share it. The Manager itself stays
// synchronization-free; Guarded is the single place that serializes access.
type Guarded struct {
	mu sync.RWMutex
	m  *Manager
}

// Guard wraps m. The caller must stop touching m directly afterwards.
func Guard(m *Manager) *Guarded {
	return &Guarded{m: m}
}

func (g *Guarded) Status() types.StatusResponse {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.m.Status()
}

func (g *Guarded) Ready() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.m.Activated() && g.m.BundleCount() > 0
}

func (g *Guarded) ReloadBundles() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.ReloadBundles()
}

func (g *Guarded) ListPuyoSkins() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.m.ListPuyoSkins()
}

func (g *Guarded) ListBackgrounds() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.m.ListBackgrounds()
}

func (g *Guarded) ListCharacterSkins() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.m.ListCharacterSkins()
}

func (g *Guarded) ListSfx() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.m.ListSfx()
}

// Resolve serves the HTTP resolve endpoint: one entry point for every
// resolution category, keyed by request kind. It takes the write lock, not
// the read lock: a total miss bumps the manager's miss counters.
func (g *Guarded) Resolve(req types.ResolveRequest) (types.ResolveResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch req.Kind {
	case "image":
		token, ok := types.ParseImageToken(req.Token)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownToken(req.Token)
		}
		return imageResult(g.m.LoadImage(token, req.Custom)), nil
	case "char_image":
		token, ok := types.ParseImageToken(req.Token)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownToken(req.Token)
		}
		ch, ok := types.ParseCharacter(req.Character)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownCharacter(req.Character)
		}
		return imageResult(g.m.LoadCharImage(token, ch)), nil
	case "sound":
		token, ok := types.ParseSoundToken(req.Token)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownToken(req.Token)
		}
		return soundResult(g.m.LoadSound(token, req.Custom)), nil
	case "char_sound":
		token, ok := types.ParseSoundToken(req.Token)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownToken(req.Token)
		}
		ch, ok := types.ParseCharacter(req.Character)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownCharacter(req.Character)
		}
		return soundResult(g.m.LoadCharSound(token, ch)), nil
	case "animation":
		token, ok := types.ParseAnimationToken(req.Token)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownToken(req.Token)
		}
		folder := g.m.AnimationFolder(token, req.Script)
		return types.ResolveResponse{Found: folder != "", Path: folder}, nil
	case "char_animation":
		ch, ok := types.ParseCharacter(req.Character)
		if !ok {
			return types.ResolveResponse{}, ErrUnknownCharacter(req.Character)
		}
		folder := g.m.CharAnimationsFolder(ch)
		return types.ResolveResponse{Found: folder != "", Path: folder}, nil
	default:
		return types.ResolveResponse{}, ErrUnknownKind(req.Kind)
	}
}

func imageResult(img Image) types.ResolveResponse {
	if img == nil || img.Err() != nil {
		return types.ResolveResponse{}
	}
	return types.ResolveResponse{Found: true, Path: img.Path()}
}

func soundResult(snd Sound) types.ResolveResponse {
	if snd == nil || snd.Err() != nil {
		return types.ResolveResponse{}
	}
	return types.ResolveResponse{Found: true, Path: snd.Path()}
}
