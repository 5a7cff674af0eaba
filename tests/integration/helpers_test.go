// Package integration provides shared fixtures for end-to-end tests of
// the asset manager over real folder and pak bundles.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openpuyo/assetman/pkg/types"
)

// stubFrontend stands in for the engine's rendering collaborator; bundle
// implementations never inspect it.
type stubFrontend struct{}

// traceLog captures debug-log traffic for assertions.
type traceLog struct {
	entries []string
	kinds   []types.MessageKind
}

func (l *traceLog) Log(message string, kind types.MessageKind) {
	l.entries = append(l.entries, message)
	l.kinds = append(l.kinds, kind)
}

func (l *traceLog) errors() []string {
	var out []string
	for i, e := range l.entries {
		if l.kinds[i] == types.MessageError {
			out = append(out, e)
		}
	}
	return out
}

// folderFixture builds a folder bundle directory under t.TempDir with a
// manifest and the given relative files, returning its root.
func folderFixture(t *testing.T, name string, files map[string][]byte) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(root, 0o755))

	manifest := "name: " + name + "\nversion: \"1.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "manifest.yaml"), []byte(manifest), 0o644))

	for rel, data := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return root
}

// folderDir creates an empty directory inside a folder fixture, for
// listing and animation-folder entries that carry no files.
func folderDir(t *testing.T, root, rel string) string {
	t.Helper()

	dir := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}
