// SPDX-License-Identifier: MPL-2.0

package batch

import "renvo-cli/pkg/types"

// RunStats tracks aggregate per-file outcome counters across one run.
// Collisions and MoveFailures are subsets of Failed, counted separately
// so the CLI can point at the matching remedy once the run is over.
type RunStats struct {
	Total   int
	Renamed int
	Skipped int
	Failed  int

	Collisions   int
	MoveFailures int
}

// ExitCode folds the counters into the process exit code: success when
// every file was processed cleanly, partial when at least one file
// failed. Fatal conditions never reach here; they surface as errors
// from Run.
func (s *RunStats) ExitCode() types.ExitCode {
	if s.Failed > 0 {
		return types.ExitPartial
	}
	return types.ExitOK
}
