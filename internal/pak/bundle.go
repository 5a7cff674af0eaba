package pak

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/openpuyo/assetman/pkg/types"
)

// Compile-time interface check: Bundle must implement types.Bundle.
var _ types.Bundle = (*Bundle)(nil)

// Pak errors.
var (
	ErrPakMissing = errors.New("pak file missing")
	ErrPakName    = errors.New("pak manifest has no name")
)

// Bundle is a packed asset bundle read from a single SQLite file.
// Animation folder references stored in the pak are resolved relative to
// the pak file's directory.
type Bundle struct {
	path    string
	id      string
	name    string
	version string
	db      *sql.DB
	dbg     types.DebugLog
	valid   bool
	active  bool
	closed  bool
}

// New creates a bundle over the pak file at path. The bundle is not
// usable until a registry (or the caller) runs Init and Reload.
func New(path string) *Bundle {
	return &Bundle{path: path, active: true}
}

// Name returns the pak manifest name, or the file name before a
// successful reload.
func (b *Bundle) Name() string {
	if b.name != "" {
		return b.name
	}
	return filepath.Base(b.path)
}

// ID returns the bundle instance identifier assigned at Init.
func (b *Bundle) ID() string {
	return b.id
}

// Path returns the pak file path.
func (b *Bundle) Path() string {
	return b.path
}

// Init opens the pak file. The front-end handle is accepted for the
// Bundle contract; a pak has no use for it.
func (b *Bundle) Init(fe types.Frontend) error {
	if b.closed {
		return types.ErrBundleClosed
	}
	if b.id == "" {
		b.id = uuid.NewString()
	}

	if _, err := os.Stat(b.path); err != nil {
		b.valid = false
		return fmt.Errorf("%w: %s", ErrPakMissing, b.path)
	}
	if b.db == nil {
		db, err := sql.Open("sqlite", b.path)
		if err != nil {
			b.valid = false
			return fmt.Errorf("open pak: %w", err)
		}
		b.db = db
	}
	return nil
}

// Reload re-reads the pak manifest and revalidates the bundle.
func (b *Bundle) Reload(fe types.Frontend) error {
	if b.closed {
		b.valid = false
		return types.ErrBundleClosed
	}
	if b.db == nil {
		if err := b.Init(fe); err != nil {
			return err
		}
	}

	name, err := b.manifestValue(manifestName)
	if err != nil {
		b.valid = false
		return fmt.Errorf("read pak manifest: %w", err)
	}
	if name == "" {
		b.valid = false
		return fmt.Errorf("%w: %s", ErrPakName, b.path)
	}
	b.name = name
	b.version, _ = b.manifestValue(manifestVersion)
	b.valid = true
	b.log(fmt.Sprintf("pak bundle %s reloaded", b.name), types.MessageDebug)
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

// Clone returns an independent bundle over the same pak file with its
// own database connection. The registry it is loaded into re-runs Init
// and Reload.
func (b *Bundle) Clone() types.Bundle {
	return New(b.path)
}

// Close releases the database connection. Idempotent.
func (b *Bundle) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.valid = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

// LoadImage resolves an image token. A non-empty custom qualifier only
// matches rows stored in the custom scope.
func (b *Bundle) LoadImage(token types.ImageToken, custom string) types.Image {
	scope, qualifier := scopeBase, ""
	if custom != "" {
		scope, qualifier = scopeCustom, custom
	}
	path, data, err := b.queryBlob("images", token.String(), int(token), scope, qualifier)
	if path == "" && err == nil {
		return nil
	}
	return &types.ImageData{Path: path, Bytes: data, Err: err}
}

// LoadCharImage resolves the per-character variant of an image token.
func (b *Bundle) LoadCharImage(token types.ImageToken, character types.PuyoCharacter) types.Image {
	path, data, err := b.queryBlob("images", token.String(), int(token), scopeCharacter, character.String())
	if path == "" && err == nil {
		return nil
	}
	return &types.ImageData{Path: path, Bytes: data, Err: err}
}

// LoadSound resolves a sound token, custom qualifier handled as in
// LoadImage.
func (b *Bundle) LoadSound(token types.SoundEffectToken, custom string) types.Sound {
	scope, qualifier := scopeBase, ""
	if custom != "" {
		scope, qualifier = scopeCustom, custom
	}
	path, data, err := b.queryBlob("sounds", token.String(), int(token), scope, qualifier)
	if path == "" && err == nil {
		return nil
	}
	return &types.SoundData{Path: path, Bytes: data, Err: err}
}

// LoadCharSound resolves the per-character voice variant of a sound token.
func (b *Bundle) LoadCharSound(token types.SoundEffectToken, character types.PuyoCharacter) types.Sound {
	path, data, err := b.queryBlob("sounds", token.String(), int(token), scopeCharacter, character.String())
	if path == "" && err == nil {
		return nil
	}
	return &types.SoundData{Path: path, Bytes: data, Err: err}
}

// CharAnimationsFolder returns the character's animation folder resolved
// against the pak's directory, or "" when the pak has none.
func (b *Bundle) CharAnimationsFolder(character types.PuyoCharacter) string {
	return b.queryFolder(int(types.AnimationCharacter), character.String())
}

// AnimationFolder returns the folder of a named animation script.
func (b *Bundle) AnimationFolder(token types.AnimationToken, name string) string {
	if name == "" {
		return ""
	}
	return b.queryFolder(int(token), name)
}

// ListPuyoSkins enumerates the puyo skin listing.
func (b *Bundle) ListPuyoSkins() []string {
	return b.queryListing(ListPuyoSkin)
}

// ListBackgrounds enumerates the background listing.
func (b *Bundle) ListBackgrounds() []string {
	return b.queryListing(ListBackground)
}

// ListCharacterSkins enumerates the character skin listing.
func (b *Bundle) ListCharacterSkins() []string {
	return b.queryListing(ListCharacterSkin)
}

// ListSfx enumerates the sound effect set listing.
func (b *Bundle) ListSfx() []string {
	return b.queryListing(ListSfxSet)
}

// manifestValue reads one manifest key; a missing key reads as "".
func (b *Bundle) manifestValue(key string) (string, error) {
	var value string
	err := b.db.QueryRow("SELECT value FROM manifest WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// queryBlob fetches one asset row. A missing row returns ("", nil, nil);
// a query failure returns a non-nil error so the caller can produce an
// errored handle for the resolver to discard.
func (b *Bundle) queryBlob(table, tokenName string, token int, scope, qualifier string) (string, []byte, error) {
	if !b.valid {
		return "", nil, nil
	}
	var path string
	var data []byte
	err := b.db.QueryRow(
		"SELECT path, data FROM "+table+" WHERE token = ? AND scope = ? AND qualifier = ?",
		token, scope, qualifier,
	).Scan(&path, &data)
	if err == sql.ErrNoRows {
		return "", nil, nil
	}
	if err != nil {
		return b.path, nil, fmt.Errorf("pak %s: reading %s %s: %w", b.Name(), table, tokenName, err)
	}
	return path, data, nil
}

// queryFolder resolves an animation folder reference against the pak's
// directory.
func (b *Bundle) queryFolder(token int, name string) string {
	if !b.valid {
		return ""
	}
	var folder string
	err := b.db.QueryRow(
		"SELECT folder FROM animations WHERE token = ? AND name = ?",
		token, name,
	).Scan(&folder)
	if err != nil {
		return ""
	}
	if filepath.IsAbs(folder) {
		return folder
	}
	return filepath.Join(filepath.Dir(b.path), folder)
}

// queryListing returns every listing name of the given kind.
func (b *Bundle) queryListing(kind string) []string {
	if !b.valid {
		return nil
	}
	rows, err := b.db.Query("SELECT name FROM listings WHERE kind = ?", kind)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return out
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
