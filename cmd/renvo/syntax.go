// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// ruleReference is the rule language reference shown by `renvo syntax`,
// rendered to the terminal with glamour.
const ruleReference = `
# renvo rule reference

A rule is a pipeline of statements separated by ` + "`;`" + ` or newlines. Each
statement rewrites the working name; after the last statement the result
becomes the rename destination.

## Substitutions

    s/PATTERN/REPLACEMENT/[FLAGS]

Go regular expression search and replace on the working name. Any
punctuation character can serve as the delimiter (` + "`s|a|b|`, `s,a,b,`" + `);
a backslash before the delimiter embeds it literally. ` + "`$1`" + ` and
` + "`${name}`" + ` in the replacement expand capture groups.

| Flag | Meaning |
|------|---------|
| g    | replace every match, not just the first |
| i    | case-insensitive matching |

## Transforms

| Statement | Effect |
|-----------|--------|
| lower (alias lowercase) | lowercase the whole name |
| clean | scrub characters outside A-Z a-z 0-9 _ . / - and rewrite a leading - to _ |
| url_encode | percent-encode unsafe bytes as uppercase %XX |
| unique | on collision insert #1 before the extension, then count up until the name is free |
| renumber(W) | replace the whole name with the next batch ordinal, zero-padded to W digits |
| by_date | prefix the name with YYYY-MM-DD/ from the file's modification time |
| prefix("TEXT") | prepend TEXT verbatim |

` + "`clean`" + ` obeys the clean_mode setting: strip deletes unsafe characters,
collapse folds each run of them into one underscore.

` + "`renumber`" + ` discards the extension; add it back with a later step, for
example ` + "`renumber(3); s/$/.jpg/`" + `.

## Stop

    stop
    stop /PATTERN/

Ends the pipeline for the current file, keeping the name as it stands.
With a pattern, stops only when the working name matches.

## Strings

Transform arguments are double-quoted. ` + "`\\\"`" + ` embeds a quote, ` + "`\\\\`" + ` a
backslash; every other backslash pair passes through unchanged.

## Examples

    renvo 's/ /_/g; lower' *.txt
    renvo -e 'stop /^keep_/' -e clean *
    renvo -D by_date *.jpg
    renvo 'renumber(3); s/$/.png/' *.png
`

var syntaxCmd = &cobra.Command{
	Use:   "syntax",
	Short: "Show the rule language reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := glamour.Render(ruleReference, issueStyle())
		if err != nil {
			// Unstyled beats unavailable when the renderer cannot start.
			fmt.Print(ruleReference)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}
