/*
Package volgenconfig is the YAML configuration layer: one WorkDir
setting, loaded with gopkg.in/yaml.v3 the same way cmd/warren's apply
command parses resource files, plus the path-composition helpers that
keep every caller's brick-path escaping in sync.
*/
package volgenconfig
