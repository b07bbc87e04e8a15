// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	MultipleSourcesId
	NoSourceId
	SourceNotFoundId
	ExtraNotFoundId
	InvalidRequirementId
	PageRenderFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the extrasdoc configuration file.

## Things you can try:
- Create a default configuration in the project directory:
~~~
$ extrasdoc config init
~~~
- Check the CUE syntax of extrasdoc.cue
- Remove the config file to use defaults

## Example configuration:
~~~cue
project: "MyProject"
package_root: "."
source_dir: "docs"
output_dir: "docs/_build"
~~~`,
	}

	multipleSourcesIssue = &Issue{
		id: MultipleSourcesId,
		mdMsg: `
# Multiple requirement sources specified!

An extras-require directive may name exactly one source for its
requirements: a source option, or inline body content, never both.

## Example of a conflicting directive:
~~~
extras-require:: dates
:file: requirements/dates.txt
:setup-cfg:
~~~

## Things you can try:
- Keep one source option and remove the others
- Remove the body content if a source option is present`,
	}

	noSourceIssue = &Issue{
		id: NoSourceId,
		mdMsg: `
# No requirement source specified!

An extras-require directive needs a source for its requirements.

## Available sources:
- ` + "`:file:`" + ` a requirements text file
- ` + "`:pkginfo:`" + ` a JSON metadata file with an extras_require mapping
- ` + "`:setup-cfg:`" + ` the [options.extras_require] section of setup.cfg
- ` + "`:pyproject:`" + ` [project.optional-dependencies] of pyproject.toml
- ` + "`:flit:`" + ` [tool.flit.metadata.requires-extra] of pyproject.toml
- inline body lines, one PEP 508 specifier per line`,
	}

	sourceNotFoundIssue = &Issue{
		id: SourceNotFoundId,
		mdMsg: `
# Requirement source not found!

The file or section the directive points at does not exist under the
configured package root.

## Things you can try:
- Check the path given to the source option
- Check the package_root setting in extrasdoc.cue
- Run with verbose mode for the resolved absolute path:
~~~
$ extrasdoc --verbose check
~~~`,
	}

	extraNotFoundIssue = &Issue{
		id: ExtraNotFoundId,
		mdMsg: `
# Extra not found in source!

The source file was read but does not define the named extra.

## Things you can try:
- Check the extra name in the directive argument for typos
- Check the extras defined by the packaging metadata:
  - setup.cfg: keys of [options.extras_require]
  - pyproject.toml: keys of [project.optional-dependencies]
  - flit: keys of [tool.flit.metadata.requires-extra]`,
	}

	invalidRequirementIssue = &Issue{
		id: InvalidRequirementId,
		mdMsg: `
# Invalid requirement!

A resolved requirement line does not parse as a PEP 508 specifier.

## Valid examples:
~~~
pytz >=2019.1
requests[security] >=2.8.1, <3.0
tox; python_version <= "3.6"
~~~

## Things you can try:
- Fix the offending line named in the error
- Quote marker strings with double quotes`,
	}

	pageRenderFailedIssue = &Issue{
		id: PageRenderFailedId,
		mdMsg: `
# Page failed to render!

A documentation page could not be converted to HTML.

## Things you can try:
- Run the checker to see every failing directive at once:
~~~
$ extrasdoc check
~~~
- Run with verbose mode for the full error chain:
~~~
$ extrasdoc --verbose build
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		multipleSourcesIssue.Id():    multipleSourcesIssue,
		noSourceIssue.Id():           noSourceIssue,
		sourceNotFoundIssue.Id():     sourceNotFoundIssue,
		extraNotFoundIssue.Id():      extraNotFoundIssue,
		invalidRequirementIssue.Id(): invalidRequirementIssue,
		pageRenderFailedIssue.Id():   pageRenderFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
