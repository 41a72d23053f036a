package topology

import (
	"fmt"

	"github.com/cuemby/volgen/pkg/dispatch"
	"github.com/cuemby/volgen/pkg/handlers"
	"github.com/cuemby/volgen/pkg/log"
	"github.com/cuemby/volgen/pkg/opttable"
	"github.com/cuemby/volgen/pkg/voldesc"
	"github.com/cuemby/volgen/pkg/volgraph"
)

// BuildClientGraph assembles the client / FUSE graph (§4.6): one
// protocol/client leaf per brick, an optional clustering layer
// (cluster/replicate or cluster/stripe), an optional cluster/distribute
// layer, the performance stack (via perf_toggle dispatch), and a
// volume-named debug/io-stats — then runs log_level dispatch followed
// by basic_copy (via buildGraphGeneric).
func BuildClientGraph(vol *voldesc.Volume, dict map[string]string) (*volgraph.Graph, error) {
	logger := log.WithVolume(vol.Name).WithRole("client")

	return buildGraphGeneric(vol, dict, func(g *volgraph.Graph) error {
		counts, err := ComputeCounts(vol)
		if err != nil {
			return err
		}

		leaves, err := addClientLeaves(g, vol)
		if err != nil {
			return err
		}

		topLayer, err := addClusterLayer(g, vol, counts, leaves)
		if err != nil {
			return err
		}

		root, err := addDistributeLayer(g, vol, counts, topLayer)
		if err != nil {
			return err
		}
		g.First = root

		if err := dispatch.Dispatch(g, dict, opttable.Default, vol.Name, handlers.PerfToggle); err != nil {
			return err
		}

		if _, err := g.AddAsRoot("debug/io-stats", vol.Name); err != nil {
			return err
		}

		if err := dispatch.Dispatch(g, dict, opttable.Default, nil, handlers.LogLevel("client")); err != nil {
			return err
		}

		logger.Info().Int("nodes", g.Count()).
			Int("replicate_count", counts.ReplicateCount).
			Int("stripe_count", counts.StripeCount).
			Int("dist_count", counts.DistCount).
			Msg("client graph built")
		return nil
	})
}

// addClientLeaves creates one detached protocol/client node per brick,
// in volume order, with remote-host/remote-subvolume/transport-type
// set (§4.6 step 1).
func addClientLeaves(g *volgraph.Graph, vol *voldesc.Volume) ([]*volgraph.Node, error) {
	leaves := make([]*volgraph.Node, 0, len(vol.Bricks))
	for i, brick := range vol.Bricks {
		n, err := g.AddDetached("protocol/client", fmt.Sprintf("%s-client-%d", vol.Name, i))
		if err != nil {
			return nil, err
		}
		n.SetOption("remote-host", brick.Hostname)
		n.SetOption("remote-subvolume", brick.Path)
		n.SetOption("transport-type", string(vol.Transport))
		leaves = append(leaves, n)
	}
	return leaves, nil
}

// addClusterLayer implements §4.6 step 2: when counts.ClusterCount()
// exceeds one, group the protocol/client leaves, walked in reverse
// insertion order, into consecutive chunks of that size under new
// cluster/replicate or cluster/stripe nodes. Group index increments
// per group; each group's children keep the reverse-insertion order
// they were visited in (so the lowest-indexed brick in the group ends
// up last) — this ordering is part of the wire contract (§9) and must
// not be "fixed" to a more natural ascending order.
func addClusterLayer(g *volgraph.Graph, vol *voldesc.Volume, counts Counts, leaves []*volgraph.Node) ([]*volgraph.Node, error) {
	clusterCount := counts.ClusterCount()
	if clusterCount <= 1 {
		return leaves, nil
	}
	kind := counts.ClusterType()
	typ := "cluster/" + kind

	reversed := make([]*volgraph.Node, len(leaves))
	for i, n := range leaves {
		reversed[len(leaves)-1-i] = n
	}

	var topLayer []*volgraph.Node
	j := 0
	for i := 0; i < len(reversed); i += clusterCount {
		end := i + clusterCount
		if end > len(reversed) {
			end = len(reversed)
		}
		chunk := reversed[i:end]

		node, err := g.AddDetached(typ, fmt.Sprintf("%s-%s-%d", vol.Name, kind, j))
		if err != nil {
			return nil, err
		}
		for _, member := range chunk {
			if err := volgraph.Link(node, member); err != nil {
				return nil, err
			}
		}
		topLayer = append(topLayer, node)
		j++
	}
	return topLayer, nil
}

// addDistributeLayer implements §4.6 step 3: when counts.DistCount
// exceeds one, create cluster/distribute and link the current
// top-layer nodes (cluster nodes if present, else the protocol/client
// leaves) as children, in reverse of their insertion/creation order.
// Otherwise the single top-layer node becomes the new graph root
// directly (plain replicate/stripe with no distribution fanout).
func addDistributeLayer(g *volgraph.Graph, vol *voldesc.Volume, counts Counts, topLayer []*volgraph.Node) (*volgraph.Node, error) {
	if counts.DistCount <= 1 {
		if len(topLayer) != 1 {
			return nil, fmt.Errorf("build client graph: dist_count<=1 but %d top-layer subvolumes", len(topLayer))
		}
		return topLayer[0], nil
	}

	dht, err := g.AddDetached("cluster/distribute", vol.Name+"-dht")
	if err != nil {
		return nil, err
	}
	for i := len(topLayer) - 1; i >= 0; i-- {
		if err := volgraph.Link(dht, topLayer[i]); err != nil {
			return nil, err
		}
	}
	return dht, nil
}
