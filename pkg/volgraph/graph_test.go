package volgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAsRootStacks(t *testing.T) {
	g := New()

	posix, err := g.AddAsRoot("storage/posix", "v-posix")
	require.NoError(t, err)
	assert.Equal(t, posix, g.First)

	locks, err := g.AddAsRoot("features/locks", "v-locks")
	require.NoError(t, err)
	assert.Equal(t, locks, g.First)
	assert.Equal(t, locks, posix.Parent)
	assert.Equal(t, []*Node{posix}, locks.Children)
}

func TestAddDetachedDoesNotLink(t *testing.T) {
	g := New()
	_, err := g.AddAsRoot("storage/posix", "v-posix")
	require.NoError(t, err)

	client, err := g.AddDetachedNamed("protocol/client", "v")
	require.NoError(t, err)
	assert.Equal(t, "v-client", client.Name)
	assert.Nil(t, client.Parent)
	assert.Equal(t, client, g.First)
}

func TestLinkRejectsAlreadyParented(t *testing.T) {
	g := New()
	a, _ := g.AddAsRoot("storage/posix", "a")
	b, _ := g.AddAsRoot("features/locks", "b")

	c, _ := Instantiate("cluster/replicate", "c")
	require.NoError(t, Link(c, b))

	err := Link(c, b)
	assert.ErrorIs(t, err, ErrAlreadyParented)
	_ = a
}

func TestLinkRejectsCycle(t *testing.T) {
	g := New()
	a, _ := g.AddAsRoot("storage/posix", "a")
	b, _ := g.AddAsRoot("features/locks", "b")

	err := Link(a, b)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestDuplicateNameRejected(t *testing.T) {
	g := New()
	_, err := g.AddAsRoot("storage/posix", "dup")
	require.NoError(t, err)

	_, err = g.AddDetached("features/locks", "dup")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestPostOrderChildrenBeforeParents(t *testing.T) {
	g := New()
	posix, _ := g.AddAsRoot("storage/posix", "posix")
	acl, _ := g.AddAsRoot("features/access-control", "acl")
	locks, _ := g.AddAsRoot("features/locks", "locks")

	order := g.PostOrder()
	require.Equal(t, []*Node{posix, acl, locks}, order)
}

func TestMergeSplicesAndDrains(t *testing.T) {
	into := New()
	_, err := into.AddAsRoot("nfs/server", "nfs-server")
	require.NoError(t, err)

	other := New()
	_, err = other.AddAsRoot("protocol/client", "v-client-0")
	require.NoError(t, err)
	_, err = other.AddAsRoot("cluster/distribute", "v-dht")
	require.NoError(t, err)

	require.NoError(t, Merge(into, other))

	assert.Equal(t, 3, into.Count())
	assert.Nil(t, other.First)
	assert.Nil(t, other.Nodes)

	// the nfs/server root now has the dht subtree as a child
	require.Len(t, into.First.Children, 1)
	assert.Equal(t, "v-dht", into.First.Children[0].Name)
}

func TestMergeRequiresNonEmptyGraphs(t *testing.T) {
	into := New()
	other := New()
	_, err := other.AddAsRoot("protocol/client", "v-client-0")
	require.NoError(t, err)

	err = Merge(into, other)
	assert.True(t, errors.Is(err, ErrEmptyGraph))
}

func TestValidateSingleRoot(t *testing.T) {
	g := New()
	_, _ = g.AddAsRoot("storage/posix", "posix")
	_, _ = g.AddAsRoot("features/locks", "locks")
	assert.NoError(t, g.Validate())
}

func TestAllOfType(t *testing.T) {
	g := New()
	_, _ = g.AddDetachedNamed("protocol/client", "v")
	c0, _ := g.AddDetached("protocol/client", "v-client-0")
	c1, _ := g.AddDetached("protocol/client", "v-client-1")

	matches := g.AllOfType("protocol/client")
	assert.Len(t, matches, 3)
	assert.Contains(t, matches, c0)
	assert.Contains(t, matches, c1)
}
