// Package volgenconfig loads the work-directory configuration volgen
// runs under and composes the on-disk volfile paths spec.md §6 names,
// including the brick-path-to-filename escaping contract shared by
// every consumer that locates a brick's server volfile by path.
package volgenconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is volgen's on-disk configuration: the work directory
// everything else in this package resolves paths under.
type Config struct {
	WorkDir string `yaml:"workDir"`
}

// Default returns the built-in configuration used when no config file
// is supplied.
func Default() Config {
	return Config{WorkDir: "/var/lib/glusterd"}
}

// Load reads and parses a YAML config file at path. A missing WorkDir
// falls back to Default's.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = Default().WorkDir
	}
	return cfg, nil
}

// VolumeDir returns W/vols/{vol}, the directory holding every volfile
// for a given volume.
func (c Config) VolumeDir(vol string) string {
	return filepath.Join(c.WorkDir, "vols", vol)
}

// BrickVolfilePath returns W/vols/{vol}/{vol}.{host}.{escaped_brick_path}.vol,
// the per-brick server volfile path (spec.md §6).
func (c Config) BrickVolfilePath(vol, host, brickPath string) string {
	name := fmt.Sprintf("%s.%s.%s.vol", vol, host, EscapeBrickPath(brickPath))
	return filepath.Join(c.VolumeDir(vol), name)
}

// ClientVolfilePath returns W/vols/{vol}/{vol}-fuse.vol, the client
// (FUSE) volfile path.
func (c Config) ClientVolfilePath(vol string) string {
	return filepath.Join(c.VolumeDir(vol), vol+"-fuse.vol")
}

// NFSVolfilePath returns W/nfs/nfs-server.vol, the single cluster-wide
// NFS volfile path.
func (c Config) NFSVolfilePath() string {
	return filepath.Join(c.WorkDir, "nfs", "nfs-server.vol")
}

// EscapeBrickPath implements the "consumer contract" from spec.md §6:
// the leading slash is removed, and every remaining slash is replaced
// with a hyphen, so a brick path can appear as one filename component.
// "/data/brick1" -> "data-brick1".
func EscapeBrickPath(brickPath string) string {
	trimmed := strings.TrimPrefix(brickPath, "/")
	return strings.ReplaceAll(trimmed, "/", "-")
}
