package types

import "errors"

// Config describes one bundle source for the built-in bundle
// implementations.
type Config struct {
	Kind string `json:"kind" yaml:"kind"`
	Path string `json:"path" yaml:"path"`
}

// Supported bundle kinds.
const (
	KindFolder = "folder"
	KindPak    = "pak"
)

// Config validation errors.
var (
	ErrKindEmpty   = errors.New("bundle kind must not be empty")
	ErrKindUnknown = errors.New("unknown bundle kind")
	ErrPathEmpty   = errors.New("bundle path must not be empty")
)

// knownKinds lists the bundle kinds that Validate accepts.
var knownKinds = map[string]bool{
	KindFolder: true,
	KindPak:    true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Kind == "" {
		return ErrKindEmpty
	}
	if !knownKinds[c.Kind] {
		return ErrKindUnknown
	}
	if c.Path == "" {
		return ErrPathEmpty
	}
	return nil
}
