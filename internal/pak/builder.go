package pak

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/openpuyo/assetman/pkg/types"
)

// Builder authors a pak file. Rows are written inside a single
// transaction committed by Close, so an abandoned build leaves no
// partial pak content behind.
type Builder struct {
	db *sql.DB
	tx *sql.Tx
}

// NewBuilder creates or overwrites the pak at path and opens a build
// transaction. Name is required.
func NewBuilder(path, name, version string) (*Builder, error) {
	if name == "" {
		return nil, ErrPakName
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("create pak: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create pak schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin pak build: %w", err)
	}

	b := &Builder{db: db, tx: tx}
	if err := b.setManifest(manifestName, name); err != nil {
		b.Abort()
		return nil, err
	}
	if version != "" {
		if err := b.setManifest(manifestVersion, version); err != nil {
			b.Abort()
			return nil, err
		}
	}
	return b, nil
}

// AddImage stores a base image blob for the token.
func (b *Builder) AddImage(token types.ImageToken, path string, data []byte) error {
	return b.addBlob("images", int(token), scopeBase, "", path, data)
}

// AddCustomImage stores a custom-named image override.
func (b *Builder) AddCustomImage(token types.ImageToken, custom, path string, data []byte) error {
	return b.addBlob("images", int(token), scopeCustom, custom, path, data)
}

// AddCharImage stores a per-character image variant.
func (b *Builder) AddCharImage(token types.ImageToken, character types.PuyoCharacter, path string, data []byte) error {
	return b.addBlob("images", int(token), scopeCharacter, character.String(), path, data)
}

// AddSound stores a base sound blob for the token.
func (b *Builder) AddSound(token types.SoundEffectToken, path string, data []byte) error {
	return b.addBlob("sounds", int(token), scopeBase, "", path, data)
}

// AddCustomSound stores a custom-named sound override.
func (b *Builder) AddCustomSound(token types.SoundEffectToken, custom, path string, data []byte) error {
	return b.addBlob("sounds", int(token), scopeCustom, custom, path, data)
}

// AddCharSound stores a per-character voice variant.
func (b *Builder) AddCharSound(token types.SoundEffectToken, character types.PuyoCharacter, path string, data []byte) error {
	return b.addBlob("sounds", int(token), scopeCharacter, character.String(), path, data)
}

// AddAnimation stores a named animation folder reference. Relative
// folders resolve against the pak file's directory at load time.
func (b *Builder) AddAnimation(token types.AnimationToken, name, folder string) error {
	_, err := b.tx.Exec(
		"INSERT OR REPLACE INTO animations (token, name, folder) VALUES (?, ?, ?)",
		int(token), name, folder,
	)
	if err != nil {
		return fmt.Errorf("add animation %s/%s: %w", token, name, err)
	}
	return nil
}

// AddCharAnimations stores a character's animation folder reference.
func (b *Builder) AddCharAnimations(character types.PuyoCharacter, folder string) error {
	return b.AddAnimation(types.AnimationCharacter, character.String(), folder)
}

// AddListing records a name under one of the listing kinds.
func (b *Builder) AddListing(kind, name string) error {
	_, err := b.tx.Exec(
		"INSERT OR REPLACE INTO listings (kind, name) VALUES (?, ?)",
		kind, name,
	)
	if err != nil {
		return fmt.Errorf("add listing %s/%s: %w", kind, name, err)
	}
	return nil
}

// Close commits the build and releases the database.
func (b *Builder) Close() error {
	if err := b.tx.Commit(); err != nil {
		b.db.Close()
		return fmt.Errorf("commit pak build: %w", err)
	}
	return b.db.Close()
}

// Abort rolls the build back and releases the database.
func (b *Builder) Abort() error {
	b.tx.Rollback()
	return b.db.Close()
}

func (b *Builder) setManifest(key, value string) error {
	_, err := b.tx.Exec(
		"INSERT OR REPLACE INTO manifest (key, value) VALUES (?, ?)",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set pak manifest %s: %w", key, err)
	}
	return nil
}

func (b *Builder) addBlob(table string, token int, scope, qualifier, path string, data []byte) error {
	_, err := b.tx.Exec(
		"INSERT OR REPLACE INTO "+table+" (token, scope, qualifier, path, data) VALUES (?, ?, ?, ?, ?)",
		token, scope, qualifier, path, data,
	)
	if err != nil {
		return fmt.Errorf("add %s row: %w", table, err)
	}
	return nil
}
