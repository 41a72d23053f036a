package topology

import (
	"testing"

	"github.com/cuemby/volgen/pkg/voldesc"
	"github.com/cuemby/volgen/pkg/volgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCountsPlainDistribute(t *testing.T) {
	vol := &voldesc.Volume{Type: voldesc.TypeDistribute, BrickCount: 2, SubCount: 0}
	c, err := ComputeCounts(vol)
	require.NoError(t, err)
	assert.Equal(t, Counts{DistCount: 2}, c)
}

func TestComputeCountsPlainReplicate(t *testing.T) {
	vol := &voldesc.Volume{Type: voldesc.TypeReplicate, BrickCount: 2, SubCount: 2}
	c, err := ComputeCounts(vol)
	require.NoError(t, err)
	assert.Equal(t, 2, c.ReplicateCount)
	assert.Equal(t, 1, c.DistCount)
	assert.Equal(t, 0, c.StripeCount)
}

func TestComputeCountsDistributedReplicated(t *testing.T) {
	vol := &voldesc.Volume{Type: voldesc.TypeReplicate, BrickCount: 4, SubCount: 2}
	c, err := ComputeCounts(vol)
	require.NoError(t, err)
	assert.Equal(t, 2, c.ReplicateCount)
	assert.Equal(t, 2, c.DistCount)
}

func TestComputeCountsStripe(t *testing.T) {
	vol := &voldesc.Volume{Type: voldesc.TypeStripe, BrickCount: 4, SubCount: 2}
	c, err := ComputeCounts(vol)
	require.NoError(t, err)
	assert.Equal(t, 2, c.StripeCount)
	assert.Equal(t, 2, c.DistCount)
	assert.Equal(t, 0, c.ReplicateCount)
}

func TestComputeCountsMixedTopologyRejected(t *testing.T) {
	vol := &voldesc.Volume{
		Type: voldesc.TypeReplicate, BrickCount: 4, SubCount: 2,
		Dict: map[string]string{"cluster.stripe-count": "2"},
	}
	_, err := ComputeCounts(vol)
	require.Error(t, err)
	assert.ErrorIs(t, err, volgraph.ErrMixedTopology)
}

func TestComputeCountsLegacyClamp(t *testing.T) {
	// brick_count < sub_count: naive division would give dist_count=0,
	// so replicate_count clamps down to brick_count (§4.6 open question).
	vol := &voldesc.Volume{Type: voldesc.TypeReplicate, BrickCount: 2, SubCount: 4}
	c, err := ComputeCounts(vol)
	require.NoError(t, err)
	assert.Equal(t, 2, c.ReplicateCount)
	assert.Equal(t, 1, c.DistCount)
}
