package assets

import (
	"assetd/pkg/types"
)

// Resolution walks the bundle chain in insertion order and stops at the first
// bundle that satisfies the request. A total miss is logged once at error
// level with identifying context.
//
// Misses return differently by category: image lookups hand back whatever the
// last bundle produced (possibly a present-but-errored handle), sound lookups
// normalize to nil, folder lookups return "".

// LoadImage resolves an image token with a custom (skin/variant) name.
func (m *Manager) LoadImage(token types.ImageToken, custom string) Image {
	var target Image
	for _, b := range m.bundles {
		target = b.LoadImage(token, custom)
		if target != nil && target.Err() == nil {
			return target
		}
	}
	m.missImage("custom", custom, token)
	return target
}

// LoadCharImage resolves a character-scoped image token.
func (m *Manager) LoadCharImage(token types.ImageToken, ch types.Character) Image {
	var target Image
	for _, b := range m.bundles {
		target = b.LoadCharImage(token, ch)
		if target != nil && target.Err() == nil {
			return target
		}
	}
	m.missImage("character", ch.String(), token)
	return target
}

// LoadSound resolves a sound token with a custom (skin/variant) name.
// Unlike images, a total miss always yields nil.
func (m *Manager) LoadSound(token types.SoundToken, custom string) Sound {
	var target Sound
	for _, b := range m.bundles {
		target = b.LoadSound(token, custom)
		if target != nil && target.Err() == nil {
			return target
		}
		target = nil
	}
	m.missSound("custom", custom, token)
	return nil
}

// LoadCharSound resolves a character-scoped sound token. Misses yield nil.
func (m *Manager) LoadCharSound(token types.SoundToken, ch types.Character) Sound {
	var target Sound
	for _, b := range m.bundles {
		target = b.LoadCharSound(token, ch)
		if target != nil && target.Err() == nil {
			return target
		}
		target = nil
	}
	m.missSound("character", ch.String(), token)
	return nil
}

// CharAnimationsFolder resolves the animation folder for a character.
// Misses yield "".
func (m *Manager) CharAnimationsFolder(ch types.Character) string {
	for _, b := range m.bundles {
		if target := b.CharAnimationsFolder(ch); target != "" {
			return target
		}
	}
	m.log.Error().
		Str("character", ch.String()).
		Msg("error loading animation script")
	m.miss("char_animation")
	return ""
}

// AnimationFolder resolves the folder holding a named animation script.
// Misses yield "".
func (m *Manager) AnimationFolder(token types.AnimationToken, script string) string {
	for _, b := range m.bundles {
		if target := b.AnimationFolder(token, script); target != "" {
			return target
		}
	}
	m.log.Error().
		Str("token", token.String()).
		Str("script", script).
		Msg("error loading animation script")
	m.miss("animation")
	return ""
}

func (m *Manager) missImage(key, value string, token types.ImageToken) {
	m.log.Error().
		Str("token", token.String()).
		Str(key, value).
		Msg("error loading image")
	if key == "character" {
		m.miss("char_image")
	} else {
		m.miss("image")
	}
}

func (m *Manager) missSound(key, value string, token types.SoundToken) {
	m.log.Error().
		Str("token", token.String()).
		Str(key, value).
		Msg("error loading sound")
	if key == "character" {
		m.miss("char_sound")
	} else {
		m.miss("sound")
	}
}

func (m *Manager) miss(kind string) {
	m.missesTotal++
	resolveMissesTotal.WithLabelValues(kind).Inc()
	m.publisher.Publish(Event{Name: "resolve_miss", Fields: map[string]any{"kind": kind}})
}
