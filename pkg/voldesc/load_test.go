package voldesc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVolumes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volumes.yaml")
	content := `
volumes:
  - name: tank
    type: replicate
    transport: tcp
    subCount: 2
    status: started
    bricks:
      - hostname: h0
        path: /b0
      - hostname: h1
        path: /b1
    dict:
      performance.cache-size: 128MB
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	volumes, err := LoadVolumes(path)
	require.NoError(t, err)
	require.Len(t, volumes, 1)

	v := volumes[0]
	assert.Equal(t, "tank", v.Name)
	assert.Equal(t, TypeReplicate, v.Type)
	assert.Equal(t, TransportTCP, v.Transport)
	assert.Equal(t, 2, v.SubCount)
	assert.Equal(t, 2, v.BrickCount)
	assert.Equal(t, StatusStarted, v.Status)
	assert.Equal(t, "128MB", v.Dict["performance.cache-size"])
	assert.NotEqual(t, [16]byte{}, v.VolumeID)
}

func TestLoadVolumesMissingFile(t *testing.T) {
	_, err := LoadVolumes(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
