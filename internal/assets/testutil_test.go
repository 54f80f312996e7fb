package assets

import (
	"errors"

	"github.com/rs/zerolog"

	"assetd/pkg/types"
)

type fakeHandle struct {
	path string
	err  error
}

func (h *fakeHandle) Path() string { return h.path }
func (h *fakeHandle) Err() error   { return h.err }

type fakeFrontend struct{}

func (fakeFrontend) NewImage(path string) Image { return &fakeHandle{path: path} }
func (fakeFrontend) NewSound(path string) Sound { return &fakeHandle{path: path} }

// fakeBundle is a scriptable in-memory bundle. Lookups are keyed by
// "token|qualifier"; a handle with err set simulates present-but-errored.
type fakeBundle struct {
	id     string
	valid  bool
	active bool

	images  map[string]*fakeHandle
	sounds  map[string]*fakeHandle
	folders map[string]string

	skins       []string
	backgrounds []string
	charSkins   []string
	sfx         []string

	fe     Frontend
	logger *zerolog.Logger

	inits      int
	reloads    int
	imageCalls int
	soundCalls int
	closed     bool
}

func newFakeBundle(id string) *fakeBundle {
	return &fakeBundle{
		id:      id,
		valid:   true,
		active:  true,
		images:  make(map[string]*fakeHandle),
		sounds:  make(map[string]*fakeHandle),
		folders: make(map[string]string),
	}
}

func (b *fakeBundle) withImage(token types.ImageToken, qual, path string) *fakeBundle {
	b.images[token.String()+"|"+qual] = &fakeHandle{path: path}
	return b
}

func (b *fakeBundle) withErroredImage(token types.ImageToken, qual string) *fakeBundle {
	b.images[token.String()+"|"+qual] = &fakeHandle{path: b.id + "/broken", err: errors.New("decode failed")}
	return b
}

func (b *fakeBundle) withSound(token types.SoundToken, qual, path string) *fakeBundle {
	b.sounds[token.String()+"|"+qual] = &fakeHandle{path: path}
	return b
}

func (b *fakeBundle) withErroredSound(token types.SoundToken, qual string) *fakeBundle {
	b.sounds[token.String()+"|"+qual] = &fakeHandle{path: b.id + "/broken", err: errors.New("decode failed")}
	return b
}

func (b *fakeBundle) Init(fe Frontend) { b.fe = fe; b.inits++ }
func (b *fakeBundle) Reload()          { b.reloads++ }
func (b *fakeBundle) ReloadWith(fe Frontend) {
	b.fe = fe
	b.reloads++
}

func (b *fakeBundle) Clone() Bundle {
	c := newFakeBundle(b.id)
	c.valid = b.valid
	c.active = b.active
	for k, v := range b.images {
		c.images[k] = &fakeHandle{path: v.path, err: v.err}
	}
	for k, v := range b.sounds {
		c.sounds[k] = &fakeHandle{path: v.path, err: v.err}
	}
	for k, v := range b.folders {
		c.folders[k] = v
	}
	c.skins = append([]string(nil), b.skins...)
	c.backgrounds = append([]string(nil), b.backgrounds...)
	c.charSkins = append([]string(nil), b.charSkins...)
	c.sfx = append([]string(nil), b.sfx...)
	return c
}

func (b *fakeBundle) SetLogger(log *zerolog.Logger) { b.logger = log }
func (b *fakeBundle) Close() error                  { b.closed = true; return nil }
func (b *fakeBundle) Valid() bool                   { return b.valid }
func (b *fakeBundle) Active() bool                  { return b.active }
func (b *fakeBundle) ID() string                    { return b.id }

func (b *fakeBundle) LoadImage(token types.ImageToken, custom string) Image {
	b.imageCalls++
	if h, ok := b.images[token.String()+"|"+custom]; ok {
		return h
	}
	return nil
}

func (b *fakeBundle) LoadCharImage(token types.ImageToken, ch types.Character) Image {
	b.imageCalls++
	if h, ok := b.images[token.String()+"|"+ch.String()]; ok {
		return h
	}
	return nil
}

func (b *fakeBundle) LoadSound(token types.SoundToken, custom string) Sound {
	b.soundCalls++
	if h, ok := b.sounds[token.String()+"|"+custom]; ok {
		return h
	}
	return nil
}

func (b *fakeBundle) LoadCharSound(token types.SoundToken, ch types.Character) Sound {
	b.soundCalls++
	if h, ok := b.sounds[token.String()+"|"+ch.String()]; ok {
		return h
	}
	return nil
}

func (b *fakeBundle) CharAnimationsFolder(ch types.Character) string {
	return b.folders[ch.String()]
}

func (b *fakeBundle) AnimationFolder(token types.AnimationToken, script string) string {
	return b.folders[token.String()+"|"+script]
}

func (b *fakeBundle) ListPuyoSkins() []string     { return b.skins }
func (b *fakeBundle) ListBackgrounds() []string   { return b.backgrounds }
func (b *fakeBundle) ListCharacterSkins() []string { return b.charSkins }
func (b *fakeBundle) ListSfx() []string           { return b.sfx }

// newTestManager builds an activated manager over the given bundles.
func newTestManager(t interface{ Fatalf(string, ...any) }, bundles ...*fakeBundle) *Manager {
	log := zerolog.Nop()
	m := New(fakeFrontend{}, &log)
	for _, b := range bundles {
		if !m.LoadBundle(b, 0) {
			t.Fatalf("LoadBundle(%s) rejected", b.id)
		}
	}
	return m
}
