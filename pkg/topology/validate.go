package topology

import "github.com/cuemby/volgen/pkg/voldesc"

// ValidateOptions builds a throwaway client graph purely to run option
// dispatch (log-level validation, topology computation) against dict,
// then discards the graph regardless of outcome. This is the
// reconfiguration validation path spec.md §7 describes: operators
// running "volgen check-option --volume" see validation errors for a
// volume's option dict without any volfile ever being written.
func ValidateOptions(vol *voldesc.Volume, dict map[string]string) error {
	_, err := BuildClientGraph(vol, dict)
	return err
}
