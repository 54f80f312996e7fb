// Package bundle implements concrete asset bundles. A folder bundle is one
// directory tree on disk:
//
//	<dir>/manifest.yaml
//	<dir>/images/<token>.<ext>             base images
//	<dir>/images/<variant>/<token>.<ext>   per-skin overrides
//	<dir>/sounds/<token>.<ext>             base sounds, same variant scheme
//	<dir>/characters/<name>/images/...     char-scoped images
//	<dir>/characters/<name>/sounds/...     char-scoped sounds
//	<dir>/characters/<name>/animations/    char animation folder
//	<dir>/animations/<token>/<script>      named animation scripts
//
// The bundle never decodes anything: it locates files and asks the frontend
// for handles.
package bundle

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"assetd/internal/assets"
	"assetd/internal/common/fsutil"
	"assetd/pkg/types"
)

var (
	imageExts = []string{".png", ".jpg", ".bmp"}
	soundExts = []string{".ogg", ".wav"}
)

// Folder is an assets.Bundle backed by a directory tree.
type Folder struct {
	dir      string
	id       string
	manifest Manifest

	fe  assets.Frontend
	log *zerolog.Logger

	valid  bool
	active bool
}

// NewFolder builds a folder bundle over dir. Validation happens on Reload,
// which Manager.LoadBundle drives; until then the bundle reports invalid.
func NewFolder(dir string) *Folder {
	return &Folder{
		dir:    dir,
		id:     filepath.Base(dir),
		active: true,
	}
}

// ID returns the bundle identifier (directory base name).
func (b *Folder) ID() string { return b.id }

// Dir returns the backing directory.
func (b *Folder) Dir() string { return b.dir }

func (b *Folder) Init(fe assets.Frontend) { b.fe = fe }

func (b *Folder) Reload() {
	m, err := LoadManifest(b.dir)
	if err != nil {
		b.valid = false
		if b.log != nil {
			b.log.Error().Err(err).Str("bundle", b.id).Msg("bundle reload failed")
		}
		return
	}
	b.manifest = m
	b.valid = true
	if b.log != nil {
		b.log.Debug().Str("bundle", b.id).Msg("bundle reloaded")
	}
}

func (b *Folder) ReloadWith(fe assets.Frontend) {
	b.fe = fe
	b.Reload()
}

func (b *Folder) Clone() assets.Bundle {
	c := NewFolder(b.dir)
	c.manifest = b.manifest
	c.active = b.active
	return c
}

func (b *Folder) SetLogger(log *zerolog.Logger) { b.log = log }

func (b *Folder) Close() error {
	b.active = false
	return nil
}

func (b *Folder) Valid() bool  { return b.valid }
func (b *Folder) Active() bool { return b.active }

// Deactivate tombstones the bundle; the next unload sweep removes it.
func (b *Folder) Deactivate() { b.active = false }

func (b *Folder) LoadImage(token types.ImageToken, custom string) assets.Image {
	path := b.find("images", custom, token.String(), imageExts)
	if path == "" || b.fe == nil {
		return nil
	}
	return b.fe.NewImage(path)
}

func (b *Folder) LoadCharImage(token types.ImageToken, ch types.Character) assets.Image {
	path := b.find(filepath.Join("characters", ch.String(), "images"), "", token.String(), imageExts)
	if path == "" || b.fe == nil {
		return nil
	}
	return b.fe.NewImage(path)
}

func (b *Folder) LoadSound(token types.SoundToken, custom string) assets.Sound {
	path := b.find("sounds", custom, token.String(), soundExts)
	if path == "" || b.fe == nil {
		return nil
	}
	return b.fe.NewSound(path)
}

func (b *Folder) LoadCharSound(token types.SoundToken, ch types.Character) assets.Sound {
	path := b.find(filepath.Join("characters", ch.String(), "sounds"), "", token.String(), soundExts)
	if path == "" || b.fe == nil {
		return nil
	}
	return b.fe.NewSound(path)
}

func (b *Folder) CharAnimationsFolder(ch types.Character) string {
	dir := filepath.Join(b.dir, "characters", ch.String(), "animations")
	if !fsutil.IsDir(dir) {
		return ""
	}
	return dir
}

func (b *Folder) AnimationFolder(token types.AnimationToken, script string) string {
	dir := filepath.Join(b.dir, "animations", token.String())
	if script == "" || !fsutil.PathExists(filepath.Join(dir, script)) {
		return ""
	}
	return dir
}

func (b *Folder) ListPuyoSkins() []string      { return b.manifest.Skins }
func (b *Folder) ListBackgrounds() []string    { return b.manifest.Backgrounds }
func (b *Folder) ListCharacterSkins() []string { return b.manifest.CharSkins }
func (b *Folder) ListSfx() []string            { return b.manifest.Sfx }

// find locates a token file under sub, preferring a variant directory when
// one is named. A variant lookup does not fall back to the base file; layer
// fallback is the manager's job, not the bundle's.
func (b *Folder) find(sub, variant, name string, exts []string) string {
	dir := filepath.Join(b.dir, sub)
	if variant != "" {
		dir = filepath.Join(dir, variant)
	}
	candidates := make([]string, 0, len(exts))
	for _, ext := range exts {
		candidates = append(candidates, filepath.Join(dir, name+ext))
	}
	return fsutil.FirstExisting(candidates...)
}
