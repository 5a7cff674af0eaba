package types

// Image is an image asset handle returned by a bundle lookup.
// Error reports whether the handle failed to load; callers must check it
// even on non-nil handles.
type Image interface {
	Error() bool
}

// Sound is a sound asset handle returned by a bundle lookup.
type Sound interface {
	Error() bool
}

// ImageData is the concrete image handle produced by the built-in bundle
// implementations. Path is the source the data was read from.
type ImageData struct {
	Path  string
	Bytes []byte
	Err   error
}

// Error reports whether the image failed to load.
func (d *ImageData) Error() bool {
	return d == nil || d.Err != nil
}

// SoundData is the concrete sound handle produced by the built-in bundle
// implementations.
type SoundData struct {
	Path  string
	Bytes []byte
	Err   error
}

// Error reports whether the sound failed to load.
func (d *SoundData) Error() bool {
	return d == nil || d.Err != nil
}
