// Package pak implements a packed asset bundle: a single SQLite file
// holding the bundle manifest, image and sound blobs, animation folder
// references, and listing names.
package pak

// Schema DDL for a pak file.
const (
	createManifest = `CREATE TABLE IF NOT EXISTS manifest (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createImages = `CREATE TABLE IF NOT EXISTS images (
    token INTEGER NOT NULL,
    scope TEXT NOT NULL CHECK (scope IN ('base', 'custom', 'character')),
    qualifier TEXT NOT NULL,
    path TEXT NOT NULL,
    data BLOB NOT NULL,
    PRIMARY KEY (token, scope, qualifier)
);`

	createSounds = `CREATE TABLE IF NOT EXISTS sounds (
    token INTEGER NOT NULL,
    scope TEXT NOT NULL CHECK (scope IN ('base', 'custom', 'character')),
    qualifier TEXT NOT NULL,
    path TEXT NOT NULL,
    data BLOB NOT NULL,
    PRIMARY KEY (token, scope, qualifier)
);`

	createAnimations = `CREATE TABLE IF NOT EXISTS animations (
    token INTEGER NOT NULL,
    name TEXT NOT NULL,
    folder TEXT NOT NULL,
    PRIMARY KEY (token, name)
);`

	createListings = `CREATE TABLE IF NOT EXISTS listings (
    kind TEXT NOT NULL CHECK (kind IN ('puyo_skin', 'background', 'character_skin', 'sfx')),
    name TEXT NOT NULL,
    PRIMARY KEY (kind, name)
);`
)

// schemaDDL is applied in order when authoring a pak.
var schemaDDL = []string{
	createManifest,
	createImages,
	createSounds,
	createAnimations,
	createListings,
}

// Listing kinds.
const (
	ListPuyoSkin      = "puyo_skin"
	ListBackground    = "background"
	ListCharacterSkin = "character_skin"
	ListSfxSet        = "sfx"
)

// Lookup scopes.
const (
	scopeBase      = "base"
	scopeCustom    = "custom"
	scopeCharacter = "character"
)

// Manifest keys.
const (
	manifestName    = "name"
	manifestVersion = "version"
)
