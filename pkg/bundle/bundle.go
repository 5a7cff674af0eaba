// Package bundle provides the public factories for the built-in bundle
// implementations, keeping the implementation packages internal.
package bundle

import (
	"github.com/openpuyo/assetman/internal/folder"
	"github.com/openpuyo/assetman/internal/pak"
	"github.com/openpuyo/assetman/pkg/types"
)

// NewFolder creates a bundle over a directory tree with a manifest.yaml
// at its root. The bundle is initialized by the manager it is loaded
// into.
//
// Example:
//
//	m := assets.NewActivated(frontend, dbg)
//	if !m.LoadBundle(bundle.NewFolder("bundles/base"), 0) {
//	    // invalid bundle: caller keeps ownership
//	}
func NewFolder(dir string) types.Bundle {
	return folder.New(dir)
}

// NewPak creates a bundle over a packed SQLite asset file.
func NewPak(path string) types.Bundle {
	return pak.New(path)
}

// New creates a bundle from a validated Config.
func New(cfg types.Config) (types.Bundle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case types.KindPak:
		return NewPak(cfg.Path), nil
	default:
		return NewFolder(cfg.Path), nil
	}
}
