// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ClearCommandNotFoundId
	InvalidChartRangeId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
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

// Render renders the issue as terminal markdown. stylePath is a glamour
// style name ("dark", "light", "notty") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also\n"
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

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The converter fell back to its default settings.

## Things you can try
- Check where the configuration is read from:
~~~
$ converter config path
~~~
- Compare your file with the defaults:
~~~
$ converter config dump
~~~
- Valid keys:
~~~cue
ui: {
	color_scheme: "auto" // "dark", "light"
	verbose:      false
	banner:       true
	clear_mode:   "auto" // "ansi", "command", "none"
}
converter: {
	binary_width: 8 // 1 to 64
}
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	clearCommandNotFoundIssue = &Issue{
		id: ClearCommandNotFoundId,
		mdMsg: `
# Clear command not found

` + "`ui.clear_mode`" + ` is set to **command**, but the platform clear command
(` + "`clear`" + `, or ` + "`cls`" + ` on Windows) is not on your PATH.
ANSI escape sequences are used instead.

## Things you can try
- Set ` + "`clear_mode: \"ansi\"`" + ` or ` + "`clear_mode: \"auto\"`" + ` in your config file.
- Install the ncurses utilities that provide ` + "`clear`" + `.`,
	}

	invalidChartRangeIssue = &Issue{
		id: InvalidChartRangeId,
		mdMsg: `
# Invalid chart range

` + "`--from`" + ` must not be greater than ` + "`--to`" + `, and both must be
valid code points (0 to 1114111).

## Example
~~~
$ converter chart --from 65 --to 90
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		clearCommandNotFoundIssue.Id(): clearCommandNotFoundIssue,
		invalidChartRangeIssue.Id():    invalidChartRangeIssue,
	}
)

// Values returns every known issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
