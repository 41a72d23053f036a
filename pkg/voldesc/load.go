package voldesc

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// fileVolume is the YAML-facing shape of a Volume. Kept separate from
// Volume itself so Volume's VolumeID (a uuid.UUID) doesn't need to
// grow yaml-marshalling concerns of its own.
type fileVolume struct {
	Name       string            `yaml:"name"`
	Type       string            `yaml:"type"`
	Transport  string            `yaml:"transport"`
	SubCount   int               `yaml:"subCount"`
	BrickCount int               `yaml:"brickCount"`
	Bricks     []fileBrick       `yaml:"bricks"`
	ID         string            `yaml:"id"`
	Status     string            `yaml:"status"`
	Dict       map[string]string `yaml:"dict"`
}

type fileBrick struct {
	Hostname string `yaml:"hostname"`
	Path     string `yaml:"path"`
}

type fileVolumeList struct {
	Volumes []fileVolume `yaml:"volumes"`
}

// LoadVolumes reads a YAML file listing volumes and returns them as
// Volume descriptors. BrickCount, when omitted, defaults to
// len(Bricks); Status, when omitted, defaults to "created"; a missing
// or malformed id generates a fresh random one.
func LoadVolumes(path string) ([]*Volume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load volumes %s: %w", path, err)
	}
	var list fileVolumeList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("load volumes %s: %w", path, err)
	}

	volumes := make([]*Volume, 0, len(list.Volumes))
	for _, fv := range list.Volumes {
		v, err := fv.toVolume()
		if err != nil {
			return nil, fmt.Errorf("load volumes %s: volume %q: %w", path, fv.Name, err)
		}
		volumes = append(volumes, v)
	}
	return volumes, nil
}

func (fv fileVolume) toVolume() (*Volume, error) {
	id, err := uuid.Parse(fv.ID)
	if err != nil {
		id = uuid.New()
	}

	status := Status(fv.Status)
	if status == "" {
		status = StatusCreated
	}

	bricks := make([]Brick, 0, len(fv.Bricks))
	for _, b := range fv.Bricks {
		bricks = append(bricks, Brick{Hostname: b.Hostname, Path: b.Path})
	}

	brickCount := fv.BrickCount
	if brickCount == 0 {
		brickCount = len(bricks)
	}

	transport := Transport(fv.Transport)
	if transport == "" {
		transport = TransportTCP
	}

	return &Volume{
		Name:       fv.Name,
		Type:       Type(fv.Type),
		Transport:  transport,
		SubCount:   fv.SubCount,
		BrickCount: brickCount,
		Bricks:     bricks,
		VolumeID:   id,
		Status:     status,
		Dict:       fv.Dict,
	}, nil
}
