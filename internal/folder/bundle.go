// Package folder implements a bundle rooted at a directory tree.
//
// Layout under the bundle root:
//
//	manifest.yaml
//	images/<token>.<ext>                     base images
//	images/custom/<name>/<token>.<ext>       custom overrides
//	sounds/<token>.<ext>                     base sounds
//	sounds/custom/<name>/<token>.<ext>       custom overrides
//	characters/<char>/images/<token>.<ext>   per-character images
//	characters/<char>/sounds/<token>.<ext>   per-character voices
//	characters/<char>/animations/            character animation scripts
//	animations/<class>/<name>/               named animation scripts
//	skins/puyo/<name>.<ext>                  puyo skin sheets
//	skins/characters/<name>/                 character skins
//	backgrounds/<name>/                      background sets
//	sfx/<name>/                              sound effect sets
package folder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/openpuyo/assetman/pkg/types"
)

// File extensions tried for image and sound lookups, in order.
var (
	imageExts = []string{".png", ".jpg", ".bmp"}
	soundExts = []string{".ogg", ".wav"}
)

// Compile-time interface check: Bundle must implement types.Bundle.
var _ types.Bundle = (*Bundle)(nil)

// Bundle is a filesystem-backed asset bundle.
type Bundle struct {
	root     string
	id       string
	manifest Manifest
	dbg      types.DebugLog
	valid    bool
	active   bool
	closed   bool
}

// New creates a bundle rooted at dir. The bundle is not usable until a
// registry (or the caller) runs Init and Reload.
func New(dir string) *Bundle {
	return &Bundle{root: dir, active: true}
}

// Name returns the manifest name, or the root directory before a
// successful reload.
func (b *Bundle) Name() string {
	if b.manifest.Name != "" {
		return b.manifest.Name
	}
	return filepath.Base(b.root)
}

// ID returns the bundle instance identifier assigned at Init.
func (b *Bundle) ID() string {
	return b.id
}

// Root returns the bundle root directory.
func (b *Bundle) Root() string {
	return b.root
}

// Init verifies the bundle root and assigns an instance ID. The
// front-end handle is accepted for the Bundle contract; a folder bundle
// has no use for it.
func (b *Bundle) Init(fe types.Frontend) error {
	if b.closed {
		return types.ErrBundleClosed
	}
	if b.id == "" {
		b.id = uuid.NewString()
	}

	info, err := os.Stat(b.root)
	if err != nil {
		b.valid = false
		return fmt.Errorf("bundle root: %w", err)
	}
	if !info.IsDir() {
		b.valid = false
		return fmt.Errorf("bundle root %s is not a directory", b.root)
	}
	return nil
}

// Reload re-reads the manifest and revalidates the bundle.
func (b *Bundle) Reload(fe types.Frontend) error {
	if b.closed {
		b.valid = false
		return types.ErrBundleClosed
	}

	manifest, err := readManifest(b.root)
	if err != nil {
		b.valid = false
		return err
	}
	b.manifest = manifest
	b.valid = true
	b.log(fmt.Sprintf("folder bundle %s reloaded", b.Name()), types.MessageDebug)
	return nil
}

// SetDebugLog attaches the logging collaborator.
func (b *Bundle) SetDebugLog(dbg types.DebugLog) {
	b.dbg = dbg
}

// Valid reports whether the last Init/Reload sequence succeeded.
func (b *Bundle) Valid() bool {
	return b.valid
}

// Active reports whether the bundle has not been tombstoned.
func (b *Bundle) Active() bool {
	return b.active
}

// Deactivate tombstones the bundle for a later pruning pass.
func (b *Bundle) Deactivate() {
	b.active = false
}

// Clone returns an independent bundle over the same root. The clone
// carries no runtime state; the registry it is loaded into re-runs
// Init and Reload.
func (b *Bundle) Clone() types.Bundle {
	return New(b.root)
}

// Close marks the bundle unusable. Idempotent.
func (b *Bundle) Close() error {
	b.closed = true
	b.valid = false
	return nil
}

// LoadImage resolves an image token. A non-empty custom qualifier is
// strict: only the custom override path is consulted, so bundles without
// the override defer to the next bundle in the registry.
func (b *Bundle) LoadImage(token types.ImageToken, custom string) types.Image {
	base := b.assetBase("images", custom, token.String())
	if base == "" {
		return nil
	}
	path, data, err := readFirst(base, imageExts)
	if path == "" {
		return nil
	}
	return &types.ImageData{Path: path, Bytes: data, Err: err}
}

// LoadCharImage resolves the per-character variant of an image token.
func (b *Bundle) LoadCharImage(token types.ImageToken, character types.PuyoCharacter) types.Image {
	if !b.valid {
		return nil
	}
	base := filepath.Join(b.root, "characters", character.String(), "images", token.String())
	path, data, err := readFirst(base, imageExts)
	if path == "" {
		return nil
	}
	return &types.ImageData{Path: path, Bytes: data, Err: err}
}

// LoadSound resolves a sound token, custom qualifier handled as in
// LoadImage.
func (b *Bundle) LoadSound(token types.SoundEffectToken, custom string) types.Sound {
	base := b.assetBase("sounds", custom, token.String())
	if base == "" {
		return nil
	}
	path, data, err := readFirst(base, soundExts)
	if path == "" {
		return nil
	}
	return &types.SoundData{Path: path, Bytes: data, Err: err}
}

// LoadCharSound resolves the per-character voice variant of a sound token.
func (b *Bundle) LoadCharSound(token types.SoundEffectToken, character types.PuyoCharacter) types.Sound {
	if !b.valid {
		return nil
	}
	base := filepath.Join(b.root, "characters", character.String(), "sounds", token.String())
	path, data, err := readFirst(base, soundExts)
	if path == "" {
		return nil
	}
	return &types.SoundData{Path: path, Bytes: data, Err: err}
}

// CharAnimationsFolder returns the character's animation script folder,
// or "" when the bundle has none.
func (b *Bundle) CharAnimationsFolder(character types.PuyoCharacter) string {
	if !b.valid {
		return ""
	}
	dir := filepath.Join(b.root, "characters", character.String(), "animations")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}

// AnimationFolder returns the folder of a named animation script.
func (b *Bundle) AnimationFolder(token types.AnimationToken, name string) string {
	if !b.valid || name == "" {
		return ""
	}
	dir := filepath.Join(b.root, "animations", token.String(), name)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}

// ListPuyoSkins enumerates skins/puyo. File entries are listed without
// their extension.
func (b *Bundle) ListPuyoSkins() []string {
	return b.listDir(filepath.Join(b.root, "skins", "puyo"), true)
}

// ListBackgrounds enumerates backgrounds/.
func (b *Bundle) ListBackgrounds() []string {
	return b.listDir(filepath.Join(b.root, "backgrounds"), false)
}

// ListCharacterSkins enumerates skins/characters/.
func (b *Bundle) ListCharacterSkins() []string {
	return b.listDir(filepath.Join(b.root, "skins", "characters"), false)
}

// ListSfx enumerates sfx/.
func (b *Bundle) ListSfx() []string {
	return b.listDir(filepath.Join(b.root, "sfx"), false)
}

// assetBase maps a kind ("images"/"sounds") and custom qualifier to the
// extensionless candidate path, or "" when the lookup cannot match.
func (b *Bundle) assetBase(kind, custom, file string) string {
	if !b.valid {
		return ""
	}
	if custom != "" {
		return filepath.Join(b.root, kind, "custom", custom, file)
	}
	return filepath.Join(b.root, kind, file)
}

// listDir returns the entry names of dir; stripExt drops file
// extensions. A missing directory lists as empty.
func (b *Bundle) listDir(dir string, stripExt bool) []string {
	if !b.valid {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if stripExt && !e.IsDir() {
			name = strings.TrimSuffix(name, filepath.Ext(name))
		}
		out = append(out, name)
	}
	return out
}

// log writes to the debug collaborator when one is attached.
func (b *Bundle) log(message string, kind types.MessageKind) {
	if b.dbg != nil {
		b.dbg.Log(message, kind)
	}
}

// readFirst reads the first base+ext candidate that exists. It returns
// the matched path with the file contents, or a non-nil error when the
// file exists but cannot be read (an errored handle for the resolver to
// discard). An empty path means no candidate exists.
func readFirst(base string, exts []string) (string, []byte, error) {
	for _, ext := range exts {
		path := base + ext
		if _, err := os.Stat(path); err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		return path, data, err
	}
	return "", nil, nil
}
