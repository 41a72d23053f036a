package topology

import (
	"testing"

	"github.com/cuemby/volgen/pkg/voldesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBrickVolume(voltype voldesc.Type, subCount int) *voldesc.Volume {
	return &voldesc.Volume{
		Name:       "v",
		Type:       voltype,
		Transport:  voldesc.TransportTCP,
		SubCount:   subCount,
		BrickCount: 2,
		Bricks: []voldesc.Brick{
			{Hostname: "h1", Path: "/b1"},
			{Hostname: "h2", Path: "/b2"},
		},
	}
}

// Scenario 1: plain distribute, 2 bricks, tcp.
func TestClientGraphPlainDistribute(t *testing.T) {
	vol := twoBrickVolume(voldesc.TypeDistribute, 0)
	g, err := BuildClientGraph(vol, nil)
	require.NoError(t, err)

	clients := g.AllOfType("protocol/client")
	require.Len(t, clients, 2)
	assert.Equal(t, "v-client-0", clients[0].Name)
	assert.Equal(t, "v-client-1", clients[1].Name)

	dht := g.AllOfType("cluster/distribute")
	require.Len(t, dht, 1)
	assert.Equal(t, "v-dht", dht[0].Name)
	assert.Len(t, dht[0].Children, 2)
	// children in reverse of subvolume insertion
	assert.Equal(t, "v-client-1", dht[0].Children[0].Name)
	assert.Equal(t, "v-client-0", dht[0].Children[1].Name)

	assert.Empty(t, g.AllOfType("cluster/replicate"))
	assert.Empty(t, g.AllOfType("cluster/stripe"))

	ioStats := g.AllOfType("debug/io-stats")
	require.Len(t, ioStats, 1)
	assert.Equal(t, "v", ioStats[0].Name)

	// defaults: the write-behind, read-ahead, io-cache and quick-read
	// toggles (all default "on") fire and stack.
	for _, typ := range []string{"performance/write-behind", "performance/read-ahead", "performance/io-cache", "performance/quick-read"} {
		assert.Len(t, g.AllOfType(typ), 1, typ)
	}
}

// Scenario 2: plain replicate, 2 bricks, sub_count=2.
func TestClientGraphPlainReplicate(t *testing.T) {
	vol := twoBrickVolume(voldesc.TypeReplicate, 2)
	g, err := BuildClientGraph(vol, nil)
	require.NoError(t, err)

	rep := g.AllOfType("cluster/replicate")
	require.Len(t, rep, 1)
	assert.Equal(t, "v-replicate-0", rep[0].Name)
	require.Len(t, rep[0].Children, 2)
	assert.Equal(t, "v-client-1", rep[0].Children[0].Name)
	assert.Equal(t, "v-client-0", rep[0].Children[1].Name)

	assert.Empty(t, g.AllOfType("cluster/distribute"))
}

// Scenario 3: distributed-replicated, 4 bricks, sub_count=2.
func TestClientGraphDistributedReplicated(t *testing.T) {
	vol := &voldesc.Volume{
		Name: "v", Type: voldesc.TypeReplicate, Transport: voldesc.TransportTCP,
		SubCount: 2, BrickCount: 4,
		Bricks: []voldesc.Brick{
			{Hostname: "h0", Path: "/b0"},
			{Hostname: "h1", Path: "/b1"},
			{Hostname: "h2", Path: "/b2"},
			{Hostname: "h3", Path: "/b3"},
		},
	}
	g, err := BuildClientGraph(vol, nil)
	require.NoError(t, err)

	rep := g.AllOfType("cluster/replicate")
	require.Len(t, rep, 2)
	assert.Equal(t, "v-replicate-0", rep[0].Name)
	assert.Equal(t, "v-replicate-1", rep[1].Name)

	// reverse-insertion grouping: group 0 = {client-3, client-2}, group 1 = {client-1, client-0}
	require.Len(t, rep[0].Children, 2)
	assert.Equal(t, "v-client-3", rep[0].Children[0].Name)
	assert.Equal(t, "v-client-2", rep[0].Children[1].Name)

	require.Len(t, rep[1].Children, 2)
	assert.Equal(t, "v-client-1", rep[1].Children[0].Name)
	assert.Equal(t, "v-client-0", rep[1].Children[1].Name)

	dht := g.AllOfType("cluster/distribute")
	require.Len(t, dht, 1)
	require.Len(t, dht[0].Children, 2)
	assert.Equal(t, "v-replicate-1", dht[0].Children[0].Name)
	assert.Equal(t, "v-replicate-0", dht[0].Children[1].Name)
}

// Scenario 4: stripe+replicate mix is rejected.
func TestClientGraphMixedTopologyRejected(t *testing.T) {
	vol := &voldesc.Volume{
		Name: "v", Type: voldesc.TypeReplicate, Transport: voldesc.TransportTCP,
		SubCount: 2, BrickCount: 4,
		Bricks: []voldesc.Brick{
			{Hostname: "h0", Path: "/b0"}, {Hostname: "h1", Path: "/b1"},
			{Hostname: "h2", Path: "/b2"}, {Hostname: "h3", Path: "/b3"},
		},
		Dict: map[string]string{"cluster.stripe-count": "2"},
	}
	_, err := BuildClientGraph(vol, vol.Dict)
	assert.Error(t, err)
}

// Scenario 6: option fan-out across two performance translators.
func TestClientGraphCacheSizeFanOut(t *testing.T) {
	vol := twoBrickVolume(voldesc.TypeDistribute, 0)
	g, err := BuildClientGraph(vol, map[string]string{"performance.cache-size": "128MB"})
	require.NoError(t, err)

	for _, typ := range []string{"performance/io-cache", "performance/quick-read"} {
		nodes := g.AllOfType(typ)
		require.Len(t, nodes, 1, typ)
		v, ok := nodes[0].Option("cache-size")
		require.True(t, ok, typ)
		assert.Equal(t, "128MB", v)
	}
}

// Scenario 8 (client half): diagnostics.client-log-level routes onto
// the client graph's io-stats node; an invalid value fails validation.
func TestClientGraphLogLevel(t *testing.T) {
	vol := twoBrickVolume(voldesc.TypeDistribute, 0)
	g, err := BuildClientGraph(vol, map[string]string{"diagnostics.client-log-level": "DEBUG"})
	require.NoError(t, err)

	stats := g.AllOfType("debug/io-stats")
	require.Len(t, stats, 1)
	v, ok := stats[0].Option("log-level")
	require.True(t, ok)
	assert.Equal(t, "DEBUG", v)
}

func TestClientGraphInvalidLogLevelRejected(t *testing.T) {
	vol := twoBrickVolume(voldesc.TypeDistribute, 0)
	_, err := BuildClientGraph(vol, map[string]string{"diagnostics.client-log-level": "VERBOSE"})
	assert.Error(t, err)
}

func TestClientGraphNamesUnique(t *testing.T) {
	vol := &voldesc.Volume{
		Name: "v", Type: voldesc.TypeReplicate, Transport: voldesc.TransportTCP,
		SubCount: 2, BrickCount: 4,
		Bricks: []voldesc.Brick{
			{Hostname: "h0", Path: "/b0"}, {Hostname: "h1", Path: "/b1"},
			{Hostname: "h2", Path: "/b2"}, {Hostname: "h3", Path: "/b3"},
		},
	}
	g, err := BuildClientGraph(vol, nil)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	seen := map[string]bool{}
	for _, n := range g.Nodes {
		assert.False(t, seen[n.Name], n.Name)
		seen[n.Name] = true
	}
}
