// SPDX-License-Identifier: MPL-2.0

// Package batch drives one rename run over a list of file operands.
//
// The Runner applies the compiled rule to each file in input order and
// performs the rename through the configured mover. Per-file failures
// (collision, lookup failure, failed rename) are diagnosed, counted in
// RunStats, and the run continues with the next file; a rule runtime
// error aborts the whole run. The only state carried between files is
// the transform context and the set of directories already created.
package batch
