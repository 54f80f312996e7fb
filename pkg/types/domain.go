package types

import "fmt"

// ImageToken identifies a logical image asset resolved through the bundle chain.
type ImageToken int

const (
	ImageNone ImageToken = iota
	ImagePuyo
	ImageBackground
	ImageField
	ImageBorder
	ImageMenu
	ImageChain
	ImageCursor
	ImageFeverBack
	ImageCharSelect
	ImageCharIcon
	ImageCharPortrait
)

var imageTokenNames = map[ImageToken]string{
	ImageNone:         "none",
	ImagePuyo:         "puyo",
	ImageBackground:   "background",
	ImageField:        "field",
	ImageBorder:       "border",
	ImageMenu:         "menu",
	ImageChain:        "chain",
	ImageCursor:       "cursor",
	ImageFeverBack:    "fever_back",
	ImageCharSelect:   "char_select",
	ImageCharIcon:     "char_icon",
	ImageCharPortrait: "char_portrait",
}

func (t ImageToken) String() string {
	if s, ok := imageTokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("image(%d)", int(t))
}

// ParseImageToken maps a wire/CLI name back to a token.
func ParseImageToken(s string) (ImageToken, bool) {
	for t, name := range imageTokenNames {
		if name == s {
			return t, true
		}
	}
	return ImageNone, false
}

// SoundToken identifies a logical sound effect.
type SoundToken int

const (
	SoundNone SoundToken = iota
	SoundChain
	SoundNuisance
	SoundDrop
	SoundRotate
	SoundFever
	SoundFeverSuccess
	SoundCursorMove
	SoundChoose
	SoundWin
	SoundLose
	SoundCharVoice
)

var soundTokenNames = map[SoundToken]string{
	SoundNone:         "none",
	SoundChain:        "chain",
	SoundNuisance:     "nuisance",
	SoundDrop:         "drop",
	SoundRotate:       "rotate",
	SoundFever:        "fever",
	SoundFeverSuccess: "fever_success",
	SoundCursorMove:   "cursor_move",
	SoundChoose:       "choose",
	SoundWin:          "win",
	SoundLose:         "lose",
	SoundCharVoice:    "char_voice",
}

func (t SoundToken) String() string {
	if s, ok := soundTokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("sound(%d)", int(t))
}

// ParseSoundToken maps a wire/CLI name back to a token.
func ParseSoundToken(s string) (SoundToken, bool) {
	for t, name := range soundTokenNames {
		if name == s {
			return t, true
		}
	}
	return SoundNone, false
}

// AnimationToken identifies an animation script group.
type AnimationToken int

const (
	AnimNone AnimationToken = iota
	AnimCharacter
	AnimBattle
	AnimMenu
)

var animationTokenNames = map[AnimationToken]string{
	AnimNone:      "none",
	AnimCharacter: "character",
	AnimBattle:    "battle",
	AnimMenu:      "menu",
}

func (t AnimationToken) String() string {
	if s, ok := animationTokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("animation(%d)", int(t))
}

// ParseAnimationToken maps a wire/CLI name back to a token.
func ParseAnimationToken(s string) (AnimationToken, bool) {
	for t, name := range animationTokenNames {
		if name == s {
			return t, true
		}
	}
	return AnimNone, false
}

// Character identifies a playable character for char-scoped lookups.
type Character int

const (
	CharArle Character = iota
	CharSchezo
	CharRulue
	CharSatan
	CharCarbuncle
	CharDraco
	CharWitch
	CharSuketoudara
	CharAmitie
	CharRaffina
	CharSig
	CharKlug
	CharRingo
	CharMaguro
	CharRisukuma
	CharEcolo
	CharFeli
	CharLemres
	CharAccord
	CharOcean
	CharDongurigaeru
	CharOshareBones
	CharRider
	CharYu
)

var characterNames = map[Character]string{
	CharArle:         "arle",
	CharSchezo:       "schezo",
	CharRulue:        "rulue",
	CharSatan:        "satan",
	CharCarbuncle:    "carbuncle",
	CharDraco:        "draco",
	CharWitch:        "witch",
	CharSuketoudara:  "suketoudara",
	CharAmitie:       "amitie",
	CharRaffina:      "raffina",
	CharSig:          "sig",
	CharKlug:         "klug",
	CharRingo:        "ringo",
	CharMaguro:       "maguro",
	CharRisukuma:     "risukuma",
	CharEcolo:        "ecolo",
	CharFeli:         "feli",
	CharLemres:       "lemres",
	CharAccord:       "accord",
	CharOcean:        "ocean_prince",
	CharDongurigaeru: "dongurigaeru",
	CharOshareBones:  "oshare_bones",
	CharRider:        "rider",
	CharYu:           "yu",
}

func (c Character) String() string {
	if s, ok := characterNames[c]; ok {
		return s
	}
	return fmt.Sprintf("character(%d)", int(c))
}

// ParseCharacter maps a wire/CLI name back to a character.
func ParseCharacter(s string) (Character, bool) {
	for c, name := range characterNames {
		if name == s {
			return c, true
		}
	}
	return CharArle, false
}
