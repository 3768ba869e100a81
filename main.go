// SPDX-License-Identifier: MPL-2.0

// Command renvo renames batches of files by applying a rename rule to
// each name.
package main

import cmd "renvo-cli/cmd/renvo"

func main() {
	cmd.Execute()
}
