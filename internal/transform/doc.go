// SPDX-License-Identifier: MPL-2.0

// Package transform implements the built-in name transforms that rename
// rules can invoke: lowercasing, safe-set cleaning, URL percent-encoding,
// collision-avoiding uniquification, sequence renumbering, and
// date-bucketing by modification time.
//
// Transforms are pure string rewrites except where they consult the
// filesystem, and those probes (existence, modification time) are injected
// through a Context so tests never touch the real disk. The Context also
// owns the process-wide renumber counter: it is shared across every file
// in a run and is the only state that deliberately leaks between per-file
// rule applications.
package transform
