package emitter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cuemby/volgen/pkg/volgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoNodeGraph(t *testing.T) *volgraph.Graph {
	t.Helper()
	g := volgraph.New()
	leaf, err := g.AddAsRoot("storage/posix", "v-posix")
	require.NoError(t, err)
	leaf.SetOption("directory", "/bricks/b1")

	root, err := g.AddAsRoot("protocol/server", "v-server")
	require.NoError(t, err)
	root.SetOption("transport-type", "tcp")

	return g
}

func TestRenderChildBeforeParent(t *testing.T) {
	g := twoNodeGraph(t)
	text := Render(g)

	posixIdx := indexOf(t, text, "volume v-posix")
	serverIdx := indexOf(t, text, "volume v-server")
	assert.Less(t, posixIdx, serverIdx, "child stanza must precede parent stanza")
}

func TestRenderStanzaShape(t *testing.T) {
	g := twoNodeGraph(t)
	text := Render(g)

	assert.Contains(t, text, "volume v-posix\n")
	assert.Contains(t, text, "    type storage/posix\n")
	assert.Contains(t, text, "    option directory /bricks/b1\n")
	assert.Contains(t, text, "end-volume\n")

	assert.Contains(t, text, "volume v-server\n")
	assert.Contains(t, text, "    type protocol/server\n")
	assert.Contains(t, text, "    option transport-type tcp\n")
	assert.Contains(t, text, "    subvolumes v-posix\n")
}

func TestRenderOptionsAreSorted(t *testing.T) {
	g := volgraph.New()
	n, err := g.AddAsRoot("performance/io-threads", "v-io-threads")
	require.NoError(t, err)
	n.SetOption("zzz-opt", "1")
	n.SetOption("aaa-opt", "2")
	n.SetOption("thread-count", "16")

	text := Render(g)
	aaaIdx := indexOf(t, text, "option aaa-opt")
	threadIdx := indexOf(t, text, "option thread-count")
	zzzIdx := indexOf(t, text, "option zzz-opt")
	assert.Less(t, aaaIdx, threadIdx)
	assert.Less(t, threadIdx, zzzIdx)
}

func TestRenderEmptyGraph(t *testing.T) {
	g := volgraph.New()
	assert.Empty(t, Render(g))
}

func TestWriteCreatesParentDirAndFile(t *testing.T) {
	g := twoNodeGraph(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "vols", "v", "v.vol")

	require.NoError(t, Write(g, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(g), string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not survive a successful write")
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	g := twoNodeGraph(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "v.vol")

	require.NoError(t, os.WriteFile(path, []byte("stale contents"), 0644))
	require.NoError(t, Write(g, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(g), string(data))
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	require.Fail(t, "substring not found", "%q not in %q", needle, haystack)
	return -1
}
