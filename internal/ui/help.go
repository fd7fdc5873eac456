package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Commands

| Command | Description |
|---|---|
| ` + "`<text> [@ date]`" + ` | Add a reminder (date defaults to now) |
| ` + "`/add <text> [@ date]`" + ` | Add a reminder |
| ` + "`/list`" + ` | Show all reminders |
| ` + "`/done <n>`" + ` | Toggle completion of row n (or a reminder ID) |
| ` + "`/rm <n> [n...]`" + ` | Delete one or more rows |
| ` + "`/pick`" + ` | Choose rows to delete interactively |
| ` + "`/help`" + ` | Show this help |
| ` + "`/quit`" + ` | Exit |

## Dates

` + "`2024-01-02 10:00`" + `, ` + "`2024-01-02T10:00`" + `, ` + "`2024-01-02`" + ` or RFC3339.

Ctrl+C or Ctrl+D to exit. Reminders are kept in memory only.
`

// FormatHelp renders the command reference. Colored output goes through
// glamour; plain output is the raw markdown.
func (f *Formatter) FormatHelp() string {
	if !f.colored {
		return helpMarkdown
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return helpMarkdown
	}

	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}

	return "\n" + strings.TrimSpace(rendered) + "\n"
}
