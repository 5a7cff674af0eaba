package assets

import (
	"fmt"
	"sort"

	"github.com/openpuyo/assetman/pkg/types"
)

// Resolution policy: bundles are consulted in insertion order and the
// first clean result wins. An errored candidate is always discarded
// before moving to the next bundle, so an exhausted lookup returns nil
// (or "") rather than a stale errored handle. Exhaustion is a soft
// failure: it logs one error entry and never propagates.

// LoadImage resolves an image token with an optional custom name override.
// Returns nil, with one error log entry, if no bundle supplies the asset.
func (m *Manager) LoadImage(token types.ImageToken, custom string) types.Image {
	for _, b := range m.bundles {
		if target := b.LoadImage(token, custom); target != nil && !target.Error() {
			return target
		}
	}
	m.log(fmt.Sprintf("error loading image token %s custom %q", token, custom), types.MessageError)
	return nil
}

// LoadCharImage resolves the per-character variant of an image token.
func (m *Manager) LoadCharImage(token types.ImageToken, character types.PuyoCharacter) types.Image {
	for _, b := range m.bundles {
		if target := b.LoadCharImage(token, character); target != nil && !target.Error() {
			return target
		}
	}
	m.log(fmt.Sprintf("error loading image token %s character %s", token, character), types.MessageError)
	return nil
}

// LoadSound resolves a sound token with an optional custom name override.
func (m *Manager) LoadSound(token types.SoundEffectToken, custom string) types.Sound {
	for _, b := range m.bundles {
		if target := b.LoadSound(token, custom); target != nil && !target.Error() {
			return target
		}
	}
	m.log(fmt.Sprintf("error loading sound token %s custom %q", token, custom), types.MessageError)
	return nil
}

// LoadCharSound resolves the per-character voice variant of a sound token.
func (m *Manager) LoadCharSound(token types.SoundEffectToken, character types.PuyoCharacter) types.Sound {
	for _, b := range m.bundles {
		if target := b.LoadCharSound(token, character); target != nil && !target.Error() {
			return target
		}
	}
	m.log(fmt.Sprintf("error loading sound token %s character %s", token, character), types.MessageError)
	return nil
}

// CharAnimationsFolder resolves the animation script folder for a
// character. Returns "" with one error log entry on exhaustion.
func (m *Manager) CharAnimationsFolder(character types.PuyoCharacter) string {
	for _, b := range m.bundles {
		if target := b.CharAnimationsFolder(character); target != "" {
			return target
		}
	}
	m.log(fmt.Sprintf("error loading animation script character %s", character), types.MessageError)
	return ""
}

// AnimationFolder resolves the folder of a named animation script.
func (m *Manager) AnimationFolder(token types.AnimationToken, name string) string {
	for _, b := range m.bundles {
		if target := b.AnimationFolder(token, name); target != "" {
			return target
		}
	}
	m.log(fmt.Sprintf("error loading animation script token %s", token), types.MessageError)
	return ""
}

// ListPuyoSkins returns the union of puyo skin names across all bundles,
// deduplicated and sorted.
func (m *Manager) ListPuyoSkins() []string {
	return m.union(types.Bundle.ListPuyoSkins)
}

// ListBackgrounds returns the union of background names across all bundles.
func (m *Manager) ListBackgrounds() []string {
	return m.union(types.Bundle.ListBackgrounds)
}

// ListCharacterSkins returns the union of character skin names across all
// bundles.
func (m *Manager) ListCharacterSkins() []string {
	return m.union(types.Bundle.ListCharacterSkins)
}

// ListSfx returns the union of sound effect set names across all bundles.
func (m *Manager) ListSfx() []string {
	return m.union(types.Bundle.ListSfx)
}

// union merges one listing across every bundle. Duplicates collapse; the
// result is sorted so output is deterministic.
func (m *Manager) union(list func(types.Bundle) []string) []string {
	seen := map[string]bool{}
	for _, b := range m.bundles {
		for _, name := range list(b) {
			seen[name] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
