/*
Package emitter turns a volgraph.Graph into the on-disk volfile format
and writes it the way the rest of this codebase writes anything that
matters: to a sibling ".tmp" path, fsync'd, then renamed into place.
pkg/security's cert writer in the teacher repo this grew out of does
the MkdirAll-then-WriteFile half of that; the temp-file-and-rename half
creates the fixed path+".tmp" with os.Create and moves it over the
target with os.Rename.

	g, _ := topology.BuildClientGraph(vol, vol.Dict)
	err := emitter.Write(g, "/var/lib/glusterd/vols/tank/tank-fuse.vol")
*/
package emitter
