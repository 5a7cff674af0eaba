// Pak authoring round-trip: assets written with the builder resolve
// through a manager-loaded pak bundle.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpuyo/assetman/internal/pak"
	"github.com/openpuyo/assetman/pkg/assets"
	"github.com/openpuyo/assetman/pkg/bundle"
	"github.com/openpuyo/assetman/pkg/types"
)

func TestPakBuildAndResolve(t *testing.T) {
	dir := t.TempDir()
	pakPath := filepath.Join(dir, "charpack.pak")

	b, err := pak.NewBuilder(pakPath, "charpack", "1.0")
	require.NoError(t, err)
	require.NoError(t, b.AddImage(types.ImageCursor, "ui/cursor.png", []byte("cursor")))
	require.NoError(t, b.AddCustomImage(types.ImageCursor, "neon", "ui/neon/cursor.png", []byte("neon-cursor")))
	require.NoError(t, b.AddCharImage(types.ImagePortrait, types.CharDraco, "draco/portrait.png", []byte("draco")))
	require.NoError(t, b.AddCharSound(types.SoundWin, types.CharDraco, "draco/win.ogg", []byte("draco-win")))
	require.NoError(t, b.AddAnimation(types.AnimationFever, "storm", "anims/fever/storm"))
	require.NoError(t, b.AddCharAnimations(types.CharDraco, "anims/characters/draco"))
	require.NoError(t, b.Close())

	m := assets.NewActivated(stubFrontend{}, &traceLog{})
	t.Cleanup(func() { m.Close() })
	require.True(t, m.LoadBundle(bundle.NewPak(pakPath), 0))

	cursor := m.LoadImage(types.ImageCursor, "")
	require.NotNil(t, cursor)
	img := cursor.(*types.ImageData)
	assert.Equal(t, []byte("cursor"), img.Bytes)
	assert.Equal(t, "ui/cursor.png", img.Path)

	neon := m.LoadImage(types.ImageCursor, "neon")
	require.NotNil(t, neon)
	assert.Equal(t, []byte("neon-cursor"), neon.(*types.ImageData).Bytes)

	portrait := m.LoadCharImage(types.ImagePortrait, types.CharDraco)
	require.NotNil(t, portrait)
	assert.Equal(t, []byte("draco"), portrait.(*types.ImageData).Bytes)

	win := m.LoadCharSound(types.SoundWin, types.CharDraco)
	require.NotNil(t, win)
	assert.Equal(t, []byte("draco-win"), win.(*types.SoundData).Bytes)

	// Relative animation folders resolve against the pak's directory.
	assert.Equal(t, filepath.Join(dir, "anims", "fever", "storm"),
		m.AnimationFolder(types.AnimationFever, "storm"))
	assert.Equal(t, filepath.Join(dir, "anims", "characters", "draco"),
		m.CharAnimationsFolder(types.CharDraco))
}

func TestPakBuilderAbortLeavesNoContent(t *testing.T) {
	pakPath := filepath.Join(t.TempDir(), "aborted.pak")

	b, err := pak.NewBuilder(pakPath, "aborted", "")
	require.NoError(t, err)
	require.NoError(t, b.AddImage(types.ImagePuyo, "puyo.png", []byte("puyo")))
	require.NoError(t, b.Abort())

	// The file exists with an empty schema; opening it fails the
	// manifest read, so a manager refuses the bundle.
	m := assets.New()
	assert.False(t, m.LoadBundle(bundle.NewPak(pakPath), 0))
	assert.Equal(t, 0, m.Len())
}
