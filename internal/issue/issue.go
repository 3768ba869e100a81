// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	RuleCompileErrorId Id = iota + 1
	RuleRuntimeErrorId
	ConfigLoadFailedId
	MoveCommandFailedId
	CollisionId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown in the See also section
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	ruleCompileErrorIssue = &Issue{
		id: RuleCompileErrorId,
		mdMsg: `
# Rule failed to compile!

The rename rule you gave could not be parsed, so no file was touched.

## Rule anatomy:
- Substitutions follow the sed shape:
~~~
$ renvo -e 's/pattern/replacement/g' *.txt
~~~

- Named transforms are bare words, some with arguments:
~~~
$ renvo -e 'clean; renumber(3)' *.jpg
~~~

- A stop statement ends the pipeline early, optionally guarded:
~~~
$ renvo -e 'stop /^keep_/; lower' *
~~~

## Things you can try:
- Check the statement singled out in the error message above
- Print the full rule reference:
~~~
$ renvo syntax
~~~

- Quote the whole expression so your shell does not eat the punctuation`,
	}

	ruleRuntimeErrorIssue = &Issue{
		id: RuleRuntimeErrorId,
		mdMsg: `
# Rule failed at run time!

The rule compiled fine but blew up while running against a file name.
The run was aborted so the batch stays in a known state.

## Things you can try:
- Re-run with verbose mode to see which statement and which name failed:
~~~
$ renvo --verbose -e '...' *
~~~

- Preview the rename plan without touching anything:
~~~
$ renvo --dry-run -e '...' *
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the renvo configuration file.

## Configuration file locations:
- Linux: ~/.config/renvo/config.toml
- macOS: ~/Library/Application Support/renvo/config.toml
- Windows: %APPDATA%\renvo\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ renvo config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/renvo/config.toml
~~~

## Example configuration:
~~~toml
command = "mv"
shell = "native"
clean_mode = "strip"
make_dirs = true

[ui]
color_scheme = "auto"
verbose = false
~~~`,
	}

	moveCommandFailedIssue = &Issue{
		id: MoveCommandFailedId,
		mdMsg: `
# Move command failed!

The configured move command exited with a non-zero status for at least
one file. The remaining files were still processed.

## Common causes:
- The command is not installed or not in PATH (e.g. 'git mv' outside a repo)
- Permission denied on the source or destination directory
- The destination crosses a filesystem boundary the command cannot handle

## Things you can try:
- Test the command by hand with the exact names from the diagnostic
- Switch back to the built-in rename:
~~~
$ renvo config set command ""
~~~

- Or run through the embedded shell, which needs no external binaries:
~~~
$ renvo config set shell embedded
~~~`,
	}

	collisionIssue = &Issue{
		id: CollisionId,
		mdMsg: `
# Destination already exists!

A rename was skipped because another file already sits at the target
name. Nothing was overwritten.

## Things you can try:
- Let renvo pick a free name by appending a serial:
~~~
$ renvo -e 'lower; unique' *
~~~

- Preview the plan to spot the clash:
~~~
$ renvo --dry-run -e 'lower' *
~~~

- Overwrite deliberately (destructive!):
~~~
$ renvo --force -e 'lower' *
~~~`,
	}

	issues = map[Id]*Issue{
		ruleCompileErrorIssue.Id():  ruleCompileErrorIssue,
		ruleRuntimeErrorIssue.Id():  ruleRuntimeErrorIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		moveCommandFailedIssue.Id(): moveCommandFailedIssue,
		collisionIssue.Id():         collisionIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
