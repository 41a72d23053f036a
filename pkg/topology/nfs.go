package topology

import (
	"fmt"

	"github.com/cuemby/volgen/pkg/log"
	"github.com/cuemby/volgen/pkg/voldesc"
	"github.com/cuemby/volgen/pkg/volgraph"
)

// BuildNFSGraph aggregates one client subgraph per started volume
// under a single nfs/server root (§4.7). For each started volume it
// sets rpc-auth.addr.<vol>.allow = "*" and
// nfs3.<vol>.volume-id = <canonical uuid> on the shared root, builds a
// client graph for that volume into a scratch graph, and merges it in.
func BuildNFSGraph(registry voldesc.Registry) (*volgraph.Graph, error) {
	logger := log.WithRole("nfs")

	volumes, err := registry.ListVolumes()
	if err != nil {
		return nil, fmt.Errorf("build nfs graph: list volumes: %w", err)
	}

	g := volgraph.New()
	root, err := g.AddAsRoot("nfs/server", "nfs-server")
	if err != nil {
		return nil, err
	}
	root.SetOption("nfs.dynamic-volumes", "on")

	for _, vol := range volumes {
		if vol.Status != voldesc.StatusStarted {
			continue
		}

		root.SetOption(fmt.Sprintf("rpc-auth.addr.%s.allow", vol.Name), "*")
		root.SetOption(fmt.Sprintf("nfs3.%s.volume-id", vol.Name), voldesc.CanonicalUUID(vol.VolumeID))

		scratch, err := BuildClientGraph(vol, vol.Dict)
		if err != nil {
			return nil, fmt.Errorf("build nfs graph: volume %q: %w", vol.Name, err)
		}
		if err := volgraph.Merge(g, scratch); err != nil {
			return nil, fmt.Errorf("build nfs graph: merge volume %q: %w", vol.Name, err)
		}
	}

	logger.Info().Int("nodes", g.Count()).Msg("nfs graph built")
	return g, nil
}
