/*
Package registry mirrors pkg/storage's single-bucket BoltDB pattern
from the teacher repo (open db, CreateBucketIfNotExists, Put/Get inside
db.Update/db.View) but stores one thing: the sha256 digest of the last
volfile body written to a given path, so a generation run that
produces byte-identical output can skip the write. No reload
notification is sent to running daemons, whether a write happens or
is skipped.
*/
package registry
