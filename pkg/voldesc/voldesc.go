// Package voldesc defines the volume descriptor: the declarative,
// externally-owned input to volgen's topology builders. Nothing in
// this package mutates a descriptor; builders only read it.
package voldesc

import (
	"strings"

	"github.com/google/uuid"
)

// Type is the cluster topology family requested for a volume.
type Type string

const (
	TypeDistribute Type = "distribute"
	TypeReplicate  Type = "replicate"
	TypeStripe     Type = "stripe"
)

// Transport is the wire transport used between client and server translators.
type Transport string

const (
	TransportTCP  Transport = "tcp"
	TransportRDMA Transport = "rdma"
)

// Status is the lifecycle state of a volume in the registry.
type Status string

const (
	StatusCreated Status = "created"
	StatusStarted Status = "started"
	StatusStopped Status = "stopped"
)

// Brick is a (hostname, local-path) pair exporting storage for one volume.
type Brick struct {
	Hostname string
	Path     string
}

// Volume is the declarative description of a volume: its composition
// in bricks, its cluster topology, its transport, and the user's
// option dictionary. A Volume is owned by the caller (the on-disk
// configuration store, out of scope per spec §1) and must not be
// mutated concurrently with a generation call.
type Volume struct {
	Name       string
	Type       Type
	Transport  Transport
	SubCount   int
	BrickCount int
	Bricks     []Brick
	VolumeID   uuid.UUID
	Status     Status

	// Dict is the user-set option dictionary (dotted key -> value).
	// Builders and the dispatch engine read it but never replace it;
	// per-invocation overrides are passed alongside, not merged in.
	Dict map[string]string
}

// Get returns the raw user-set value for key, and whether it was set
// at all. It does not consult the option table's defaults: use
// handlers.Get for that.
func (v *Volume) Get(key string) (string, bool) {
	if v.Dict == nil {
		return "", false
	}
	val, ok := v.Dict[key]
	return val, ok
}

// Bool interprets a dict value as a boolean via ParseBool: "1", "on",
// "true", "yes" and "enable" are truthy, case-insensitively; anything
// else, including absence, is false.
func (v *Volume) Bool(key string) bool {
	val, ok := v.Get(key)
	if !ok {
		return false
	}
	return ParseBool(val)
}

// ParseBool interprets a dict value the way the glusterd dictionary
// layer does: a small closed set of truthy spellings, case-insensitive.
func ParseBool(val string) bool {
	switch strings.ToLower(val) {
	case "1", "on", "true", "yes", "enable":
		return true
	default:
		return false
	}
}

// EnablePump reports whether the volume descriptor requests the
// optional live brick-replacement subtree (§4.5 step 4). It is a
// descriptor-level topology control, deliberately outside the
// option-table dispatch path (§9 design note).
func (v *Volume) EnablePump() bool {
	return v.Bool("enable-pump")
}

// Registry is a read-only view over the set of known volumes, used by
// the NFS topology builder to discover started volumes (§4.7). The
// on-disk configuration store that backs a real Registry is out of
// scope (§1); volgen only depends on this interface.
type Registry interface {
	ListVolumes() ([]*Volume, error)
}

// StaticRegistry is the simplest Registry: a fixed, in-memory slice.
// Used by the CLI when volumes are loaded from a single YAML file and
// by tests.
type StaticRegistry struct {
	Volumes []*Volume
}

func (r *StaticRegistry) ListVolumes() ([]*Volume, error) {
	return r.Volumes, nil
}

// CanonicalUUID renders a volume ID in canonical 8-4-4-4-12 form, the
// format embedded into nfs3.<vol>.volume-id (§4.7).
func CanonicalUUID(id uuid.UUID) string {
	return id.String()
}

// NewID generates a fresh volume ID. Exposed so CLI/test code doesn't
// need to import google/uuid directly.
func NewID() uuid.UUID {
	return uuid.New()
}
