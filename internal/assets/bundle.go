package assets

import (
	"github.com/rs/zerolog"

	"assetd/pkg/types"
)

// Image is a handle to a materialized image asset. A handle may be present
// but carry an error; resolution treats such handles as misses.
type Image interface {
	Path() string
	Err() error
}

// Sound is a handle to a materialized sound asset.
type Sound interface {
	Path() string
	Err() error
}

// Frontend materializes asset handles for bundles. The manager passes it
// through to bundles at init/reload time and never inspects it.
type Frontend interface {
	NewImage(path string) Image
	NewSound(path string) Sound
}

// Bundle is one loadable source of assets. Bundles are stacked like override
// layers: a bundle loaded later shadows earlier ones for the tokens it serves.
//
// Lifecycle contract: the owner constructs a bundle and hands it to
// Manager.LoadBundle, which calls Init, then Reload, then SetLogger, and
// retains the bundle only if Valid reports true afterwards. A bundle whose
// Active reports false is a tombstone: the next UnloadAll sweep removes and
// closes it.
type Bundle interface {
	// Init binds the bundle to a frontend. Called once per LoadBundle.
	Init(fe Frontend)
	// Reload re-reads bundle state from its backing source.
	Reload()
	// ReloadWith rebinds the frontend and reloads.
	ReloadWith(fe Frontend)
	// Clone returns a new bundle with bundle-private state duplicated.
	Clone() Bundle
	// SetLogger binds the diagnostic logger. nil detaches it.
	SetLogger(log *zerolog.Logger)
	// Close releases bundle resources.
	Close() error

	// Valid reports whether the last load/reload succeeded.
	Valid() bool
	// Active reports whether the bundle is live; false marks a tombstone.
	Active() bool

	LoadImage(token types.ImageToken, custom string) Image
	LoadCharImage(token types.ImageToken, ch types.Character) Image
	LoadSound(token types.SoundToken, custom string) Sound
	LoadCharSound(token types.SoundToken, ch types.Character) Sound

	// CharAnimationsFolder returns the animation folder for a character,
	// or "" when the bundle does not carry one.
	CharAnimationsFolder(ch types.Character) string
	// AnimationFolder returns the folder holding the named animation script,
	// or "" when the bundle does not carry it.
	AnimationFolder(token types.AnimationToken, script string) string

	ListPuyoSkins() []string
	ListBackgrounds() []string
	ListCharacterSkins() []string
	ListSfx() []string
}
