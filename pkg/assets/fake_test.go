package assets

import (
	"fmt"

	"github.com/openpuyo/assetman/pkg/types"
)

// recordLog captures DebugLog entries for assertions.
type recordLog struct {
	entries []string
	kinds   []types.MessageKind
}

func (r *recordLog) Log(message string, kind types.MessageKind) {
	r.entries = append(r.entries, message)
	r.kinds = append(r.kinds, kind)
}

func (r *recordLog) errors() []string {
	var out []string
	for i, k := range r.kinds {
		if k == types.MessageError {
			out = append(out, r.entries[i])
		}
	}
	return out
}

// fakeBundle is a scriptable in-memory bundle for resolver and lifecycle
// tests.
type fakeBundle struct {
	name    string
	valid   bool
	active  bool
	closed  bool
	dbg     types.DebugLog
	initErr error
	loadErr error

	initCalls   int
	reloadCalls int
	lookupCalls int

	images  map[string]types.Image
	sounds  map[string]types.Sound
	folders map[string]string

	puyoSkins   []string
	backgrounds []string
	charSkins   []string
	sfx         []string

	clonedFrom *fakeBundle
}

func newFakeBundle(name string) *fakeBundle {
	return &fakeBundle{
		name:    name,
		valid:   true,
		active:  true,
		images:  map[string]types.Image{},
		sounds:  map[string]types.Sound{},
		folders: map[string]string{},
	}
}

func imageKey(token types.ImageToken, qualifier string) string {
	return fmt.Sprintf("img/%s/%s", token, qualifier)
}

func soundKey(token types.SoundEffectToken, qualifier string) string {
	return fmt.Sprintf("snd/%s/%s", token, qualifier)
}

// addImage registers a clean image for the token+qualifier pair.
func (f *fakeBundle) addImage(token types.ImageToken, qualifier string) *types.ImageData {
	img := &types.ImageData{Path: f.name + "/" + token.String()}
	f.images[imageKey(token, qualifier)] = img
	return img
}

// addErroredImage registers a non-nil image that reports an error.
func (f *fakeBundle) addErroredImage(token types.ImageToken, qualifier string) *types.ImageData {
	img := &types.ImageData{Path: f.name + "/" + token.String(), Err: fmt.Errorf("decode failed")}
	f.images[imageKey(token, qualifier)] = img
	return img
}

func (f *fakeBundle) addSound(token types.SoundEffectToken, qualifier string) *types.SoundData {
	snd := &types.SoundData{Path: f.name + "/" + token.String()}
	f.sounds[soundKey(token, qualifier)] = snd
	return snd
}

func (f *fakeBundle) addErroredSound(token types.SoundEffectToken, qualifier string) *types.SoundData {
	snd := &types.SoundData{Path: f.name + "/" + token.String(), Err: fmt.Errorf("decode failed")}
	f.sounds[soundKey(token, qualifier)] = snd
	return snd
}

func (f *fakeBundle) Init(fe types.Frontend) error {
	f.initCalls++
	if f.initErr != nil {
		f.valid = false
		return f.initErr
	}
	return nil
}

func (f *fakeBundle) Reload(fe types.Frontend) error {
	f.reloadCalls++
	return f.loadErr
}

func (f *fakeBundle) SetDebugLog(dbg types.DebugLog) { f.dbg = dbg }
func (f *fakeBundle) Valid() bool                    { return f.valid }
func (f *fakeBundle) Active() bool                   { return f.active }
func (f *fakeBundle) Deactivate()                    { f.active = false }

func (f *fakeBundle) Clone() types.Bundle {
	clone := newFakeBundle(f.name + "-clone")
	clone.valid = f.valid
	for k, v := range f.images {
		clone.images[k] = v
	}
	for k, v := range f.sounds {
		clone.sounds[k] = v
	}
	for k, v := range f.folders {
		clone.folders[k] = v
	}
	clone.puyoSkins = append([]string(nil), f.puyoSkins...)
	clone.backgrounds = append([]string(nil), f.backgrounds...)
	clone.charSkins = append([]string(nil), f.charSkins...)
	clone.sfx = append([]string(nil), f.sfx...)
	clone.clonedFrom = f
	return clone
}

func (f *fakeBundle) Close() error {
	f.closed = true
	return nil
}

func (f *fakeBundle) LoadImage(token types.ImageToken, custom string) types.Image {
	f.lookupCalls++
	img, ok := f.images[imageKey(token, custom)]
	if !ok {
		return nil
	}
	return img
}

func (f *fakeBundle) LoadCharImage(token types.ImageToken, c types.PuyoCharacter) types.Image {
	f.lookupCalls++
	img, ok := f.images[imageKey(token, c.String())]
	if !ok {
		return nil
	}
	return img
}

func (f *fakeBundle) LoadSound(token types.SoundEffectToken, custom string) types.Sound {
	f.lookupCalls++
	snd, ok := f.sounds[soundKey(token, custom)]
	if !ok {
		return nil
	}
	return snd
}

func (f *fakeBundle) LoadCharSound(token types.SoundEffectToken, c types.PuyoCharacter) types.Sound {
	f.lookupCalls++
	snd, ok := f.sounds[soundKey(token, c.String())]
	if !ok {
		return nil
	}
	return snd
}

func (f *fakeBundle) CharAnimationsFolder(c types.PuyoCharacter) string {
	f.lookupCalls++
	return f.folders["char/"+c.String()]
}

func (f *fakeBundle) AnimationFolder(token types.AnimationToken, name string) string {
	f.lookupCalls++
	return f.folders["anim/"+token.String()+"/"+name]
}

func (f *fakeBundle) ListPuyoSkins() []string      { return f.puyoSkins }
func (f *fakeBundle) ListBackgrounds() []string    { return f.backgrounds }
func (f *fakeBundle) ListCharacterSkins() []string { return f.charSkins }
func (f *fakeBundle) ListSfx() []string            { return f.sfx }
