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

const serverIOThreadCount = "16"

// BuildServerGraph assembles the per-brick server (§4.5) graph:
// storage/posix, features/access-control, features/locks, an optional
// cluster/pump subtree, performance/io-threads, debug/io-stats named
// after the brick path, and protocol/server — then runs server_spec
// dispatch followed by basic_copy (via buildGraphGeneric).
//
// brickPath is the backing directory for this specific brick; dict is
// the option override to dispatch against (normally vol.Dict).
func BuildServerGraph(vol *voldesc.Volume, dict map[string]string, brickPath string) (*volgraph.Graph, error) {
	logger := log.WithVolume(vol.Name).WithRole("server")

	return buildGraphGeneric(vol, dict, func(g *volgraph.Graph) error {
		if _, err := g.AddAsRoot("storage/posix", vol.Name+"-posix"); err != nil {
			return err
		}
		if err := setOpt(g, "directory", brickPath); err != nil {
			return err
		}

		if _, err := g.AddAsRoot("features/access-control", vol.Name+"-access-control"); err != nil {
			return err
		}

		if _, err := g.AddAsRoot("features/locks", vol.Name+"-locks"); err != nil {
			return err
		}

		if vol.EnablePump() {
			if err := addPumpSubtree(g, vol); err != nil {
				return err
			}
			logger.Debug().Msg("pump subtree enabled")
		}

		ioThreads, err := g.AddAsRoot("performance/io-threads", vol.Name+"-io-threads")
		if err != nil {
			return err
		}
		// Hard default applied before dispatch runs, so a user-set
		// performance.io-thread-count still wins (§4.5 step 5).
		ioThreads.SetOption("thread-count", serverIOThreadCount)

		// Named after the brick path, not the volume, so per-brick
		// stats are distinguishable when a volume has many bricks on
		// one host (§4.5 step 6).
		if _, err := g.AddAsRoot("debug/io-stats", brickPath); err != nil {
			return err
		}

		server, err := g.AddAsRoot("protocol/server", vol.Name+"-server")
		if err != nil {
			return err
		}
		server.SetOption("transport-type", string(vol.Transport))

		if err := dispatch.Dispatch(g, dict, opttable.Default, vol.Name, handlers.ServerSpec); err != nil {
			return err
		}

		logger.Info().Int("nodes", g.Count()).Msg("server graph built")
		return nil
	})
}

// addPumpSubtree implements §4.5 step 4: snapshot the current root,
// create a detached protocol/client leaf for the replacement brick and
// a detached cluster/pump node, link pump -> {snapshot, replace-brick},
// then make pump the new root.
func addPumpSubtree(g *volgraph.Graph, vol *voldesc.Volume) error {
	underlying := g.First
	if underlying == nil {
		return fmt.Errorf("add pump subtree: %w", volgraph.ErrEmptyGraph)
	}

	replaceBrick, err := g.AddDetached("protocol/client", vol.Name+"-replace-brick")
	if err != nil {
		return err
	}
	replaceBrick.SetOption("transport-type", string(vol.Transport))

	pump, err := g.AddDetachedNamed("cluster/pump", vol.Name)
	if err != nil {
		return err
	}
	if err := volgraph.Link(pump, underlying); err != nil {
		return err
	}
	if err := volgraph.Link(pump, replaceBrick); err != nil {
		return err
	}
	g.First = pump
	return nil
}

func setOpt(g *volgraph.Graph, key, value string) error {
	if g.First == nil {
		return fmt.Errorf("set option %q: %w", key, volgraph.ErrEmptyGraph)
	}
	g.First.SetOption(key, value)
	return nil
}
