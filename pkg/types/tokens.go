package types

import (
	"errors"
	"fmt"
)

// ImageToken names a logical image asset independent of which bundle
// supplies it.
type ImageToken int

// Image tokens. Values are stable; bundles key their image data on them.
const (
	ImageNone ImageToken = iota
	ImagePuyo
	ImageBackground
	ImageFieldA
	ImageFieldB
	ImageBorderA
	ImageBorderB
	ImageFieldFever
	ImageNextBackground
	ImageFeverGauge
	ImageChainPopup
	ImageCursor
	ImageCharHolder
	ImageCharName
	ImageCharSelect
	ImagePortrait
	ImageMenuBackground
	ImageLogo
)

var imageTokenNames = map[ImageToken]string{
	ImageNone:           "none",
	ImagePuyo:           "puyo",
	ImageBackground:     "background",
	ImageFieldA:         "field_a",
	ImageFieldB:         "field_b",
	ImageBorderA:        "border_a",
	ImageBorderB:        "border_b",
	ImageFieldFever:     "field_fever",
	ImageNextBackground: "next_background",
	ImageFeverGauge:     "fever_gauge",
	ImageChainPopup:     "chain_popup",
	ImageCursor:         "cursor",
	ImageCharHolder:     "char_holder",
	ImageCharName:       "char_name",
	ImageCharSelect:     "char_select",
	ImagePortrait:       "portrait",
	ImageMenuBackground: "menu_background",
	ImageLogo:           "logo",
}

// String returns the canonical lowercase name for the token.
// Unknown values render as "image(<n>)".
func (t ImageToken) String() string {
	if name, ok := imageTokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("image(%d)", int(t))
}

// SoundEffectToken names a logical sound asset.
type SoundEffectToken int

// Sound effect tokens. Character-qualified lookups resolve the voice
// variant of the same token.
const (
	SoundNone SoundEffectToken = iota
	SoundMove
	SoundRotate
	SoundDrop
	SoundLand
	SoundChain
	SoundAllClear
	SoundNuisance
	SoundFever
	SoundReady
	SoundGo
	SoundWin
	SoundLose
)

var soundTokenNames = map[SoundEffectToken]string{
	SoundNone:     "none",
	SoundMove:     "move",
	SoundRotate:   "rotate",
	SoundDrop:     "drop",
	SoundLand:     "land",
	SoundChain:    "chain",
	SoundAllClear: "all_clear",
	SoundNuisance: "nuisance",
	SoundFever:    "fever",
	SoundReady:    "ready",
	SoundGo:       "go",
	SoundWin:      "win",
	SoundLose:     "lose",
}

// String returns the canonical lowercase name for the token.
// Unknown values render as "sound(<n>)".
func (t SoundEffectToken) String() string {
	if name, ok := soundTokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("sound(%d)", int(t))
}

// AnimationToken names a class of animation scripts resolved to an
// on-disk folder.
type AnimationToken int

// Animation tokens.
const (
	AnimationNone AnimationToken = iota
	AnimationCharacter
	AnimationBackground
	AnimationFever
	AnimationIntro
)

var animationTokenNames = map[AnimationToken]string{
	AnimationNone:       "none",
	AnimationCharacter:  "character",
	AnimationBackground: "background",
	AnimationFever:      "fever",
	AnimationIntro:      "intro",
}

// String returns the canonical lowercase name for the token.
// Unknown values render as "animation(<n>)".
func (t AnimationToken) String() string {
	if name, ok := animationTokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("animation(%d)", int(t))
}

// ErrUnknownToken is returned when a token name cannot be parsed.
var ErrUnknownToken = errors.New("unknown asset token")

// ParseImageToken resolves a canonical name back to its ImageToken.
// Returns ErrUnknownToken for unrecognized names.
func ParseImageToken(name string) (ImageToken, error) {
	for t, n := range imageTokenNames {
		if n == name {
			return t, nil
		}
	}
	return ImageNone, fmt.Errorf("%w: image %q", ErrUnknownToken, name)
}

// ParseSoundEffectToken resolves a canonical name back to its SoundEffectToken.
// Returns ErrUnknownToken for unrecognized names.
func ParseSoundEffectToken(name string) (SoundEffectToken, error) {
	for t, n := range soundTokenNames {
		if n == name {
			return t, nil
		}
	}
	return SoundNone, fmt.Errorf("%w: sound %q", ErrUnknownToken, name)
}

// ParseAnimationToken resolves a canonical name back to its AnimationToken.
// Returns ErrUnknownToken for unrecognized names.
func ParseAnimationToken(name string) (AnimationToken, error) {
	for t, n := range animationTokenNames {
		if n == name {
			return t, nil
		}
	}
	return AnimationNone, fmt.Errorf("%w: animation %q", ErrUnknownToken, name)
}
