package types

import "errors"

// Bundle is a self-contained source of game assets (images, sounds,
// animation folders). A bundle is owned by exactly one registry once
// loaded; on a failed load the caller keeps ownership and must Close it.
type Bundle interface {
	// Init prepares the bundle against the given front-end. A bundle that
	// fails to initialize reports Valid() == false.
	Init(fe Frontend) error

	// Reload re-reads the bundle's asset data against the given front-end.
	Reload(fe Frontend) error

	// SetDebugLog attaches the logging collaborator. A nil value detaches it.
	SetDebugLog(dbg DebugLog)

	// Valid reports whether the bundle initialized successfully.
	Valid() bool

	// Active reports whether the bundle has not been tombstoned.
	Active() bool

	// Deactivate tombstones the bundle; a later pruning pass removes it
	// from the registry.
	Deactivate()

	// Clone returns a deep, independent copy of the bundle. The copy is
	// re-initialized by the registry it is loaded into.
	Clone() Bundle

	// Close releases the bundle's resources. Idempotent.
	Close() error

	// LoadImage resolves an image token, optionally qualified by a custom
	// name override. Returns nil if the bundle has no matching asset.
	LoadImage(token ImageToken, custom string) Image

	// LoadCharImage resolves the per-character variant of an image token.
	LoadCharImage(token ImageToken, character PuyoCharacter) Image

	// LoadSound resolves a sound token, optionally qualified by a custom
	// name override.
	LoadSound(token SoundEffectToken, custom string) Sound

	// LoadCharSound resolves the per-character voice variant of a sound token.
	LoadCharSound(token SoundEffectToken, character PuyoCharacter) Sound

	// CharAnimationsFolder returns the folder holding the character's
	// animation scripts, or "" if the bundle has none.
	CharAnimationsFolder(character PuyoCharacter) string

	// AnimationFolder returns the folder for a named animation script of
	// the given class, or "" if the bundle has none.
	AnimationFolder(token AnimationToken, name string) string

	// ListPuyoSkins returns the puyo skin names this bundle supplies.
	ListPuyoSkins() []string

	// ListBackgrounds returns the background names this bundle supplies.
	ListBackgrounds() []string

	// ListCharacterSkins returns the character skin names this bundle supplies.
	ListCharacterSkins() []string

	// ListSfx returns the sound effect set names this bundle supplies.
	ListSfx() []string
}

// Bundle lifecycle errors.
var (
	ErrBundleClosed   = errors.New("bundle is closed")
	ErrBundleNotFound = errors.New("bundle not found")
)
