// End-to-end resolution tests: a pak mod layered over a folder base
// bundle, resolved through the manager in insertion order.
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

// newLayeredManager builds a manager with a pak mod in front of a folder
// base bundle. The mod overrides the puyo sheet; the base alone carries
// the background.
func newLayeredManager(t *testing.T) (*assets.Manager, *traceLog) {
	t.Helper()

	base := folderFixture(t, "base", map[string][]byte{
		"images/puyo.png":                     []byte("base-puyo"),
		"images/background.png":               []byte("base-background"),
		"images/custom/fireball/puyo.png":     []byte("base-fireball-puyo"),
		"sounds/chain.ogg":                    []byte("base-chain"),
		"characters/arle/images/portrait.png": []byte("arle-portrait"),
		"characters/arle/sounds/win.ogg":      []byte("arle-win"),
	})
	folderDir(t, base, "characters/arle/animations")

	pakPath := filepath.Join(t.TempDir(), "mod.pak")
	b, err := pak.NewBuilder(pakPath, "mod", "2.0")
	require.NoError(t, err)
	require.NoError(t, b.AddImage(types.ImagePuyo, "mod/puyo.png", []byte("mod-puyo")))
	require.NoError(t, b.AddSound(types.SoundChain, "mod/chain.ogg", []byte("mod-chain")))
	require.NoError(t, b.Close())

	log := &traceLog{}
	m := assets.NewActivated(stubFrontend{}, log)
	t.Cleanup(func() { m.Close() })

	require.True(t, m.LoadBundle(bundle.NewPak(pakPath), 0))
	require.True(t, m.LoadBundle(bundle.NewFolder(base), 0))
	require.Equal(t, 2, m.Len())
	return m, log
}

func TestResolutionOverrideAndFallback(t *testing.T) {
	m, _ := newLayeredManager(t)

	puyo := m.LoadImage(types.ImagePuyo, "")
	require.NotNil(t, puyo)
	img := puyo.(*types.ImageData)
	assert.Equal(t, []byte("mod-puyo"), img.Bytes, "mod pak should shadow the base sheet")

	background := m.LoadImage(types.ImageBackground, "")
	require.NotNil(t, background)
	assert.Equal(t, []byte("base-background"), background.(*types.ImageData).Bytes,
		"asset absent from the mod falls through to the base bundle")

	chain := m.LoadSound(types.SoundChain, "")
	require.NotNil(t, chain)
	assert.Equal(t, []byte("mod-chain"), chain.(*types.SoundData).Bytes)
}

func TestResolutionCustomQualifierFallsThrough(t *testing.T) {
	m, _ := newLayeredManager(t)

	// The mod pak has no fireball override, so the base bundle supplies
	// it even though the mod resolves first.
	got := m.LoadImage(types.ImagePuyo, "fireball")
	require.NotNil(t, got)
	assert.Equal(t, []byte("base-fireball-puyo"), got.(*types.ImageData).Bytes)
}

func TestResolutionExhaustionLogsOnce(t *testing.T) {
	m, log := newLayeredManager(t)

	got := m.LoadImage(types.ImageLogo, "")
	assert.Nil(t, got)

	errs := log.errors()
	require.Len(t, errs, 1, "a miss across all bundles logs exactly one error")
	assert.Contains(t, errs[0], types.ImageLogo.String())
}

func TestResolutionCharacterAssets(t *testing.T) {
	m, _ := newLayeredManager(t)

	portrait := m.LoadCharImage(types.ImagePortrait, types.CharArle)
	require.NotNil(t, portrait)
	assert.Equal(t, []byte("arle-portrait"), portrait.(*types.ImageData).Bytes)

	win := m.LoadCharSound(types.SoundWin, types.CharArle)
	require.NotNil(t, win)
	assert.Equal(t, []byte("arle-win"), win.(*types.SoundData).Bytes)

	dir := m.CharAnimationsFolder(types.CharArle)
	assert.NotEmpty(t, dir)
	assert.Equal(t, "animations", filepath.Base(dir))

	assert.Empty(t, m.CharAnimationsFolder(types.CharDraco))
}

func TestEnumerationUnionAcrossBundleKinds(t *testing.T) {
	base := folderFixture(t, "base", nil)
	folderDir(t, base, "backgrounds/forest")
	folderDir(t, base, "backgrounds/sea")
	folderDir(t, base, "skins/characters/classic")

	pakPath := filepath.Join(t.TempDir(), "extra.pak")
	b, err := pak.NewBuilder(pakPath, "extra", "")
	require.NoError(t, err)
	require.NoError(t, b.AddListing(pak.ListBackground, "sea"))
	require.NoError(t, b.AddListing(pak.ListBackground, "volcano"))
	require.NoError(t, b.AddListing(pak.ListSfxSet, "arcade"))
	require.NoError(t, b.Close())

	m := assets.NewActivated(stubFrontend{}, &traceLog{})
	t.Cleanup(func() { m.Close() })
	require.True(t, m.LoadBundle(bundle.NewFolder(base), 0))
	require.True(t, m.LoadBundle(bundle.NewPak(pakPath), 0))

	assert.Equal(t, []string{"forest", "sea", "volcano"}, m.ListBackgrounds(),
		"union is deduplicated and sorted")
	assert.Equal(t, []string{"classic"}, m.ListCharacterSkins())
	assert.Equal(t, []string{"arcade"}, m.ListSfx())
	assert.Empty(t, m.ListPuyoSkins())
}
