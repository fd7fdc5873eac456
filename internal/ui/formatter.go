package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/notexe/reminders/internal/reminder"
)

var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	SystemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")). // Soft purple
			Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")). // Green
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	DoneTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Strikethrough(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("147")) // Light purple

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")). // Soft blue border
			Padding(0, 1)
)

const (
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
)

type Formatter struct {
	colored    bool
	dateFormat string
}

func NewFormatter(colored bool, dateFormat string) *Formatter {
	if dateFormat == "" {
		dateFormat = "Mon Jan 2 2006 15:04"
	}
	return &Formatter{
		colored:    colored,
		dateFormat: dateFormat,
	}
}

// Colored reports whether output is styled.
func (f *Formatter) Colored() bool {
	return f.colored
}

// FormatDate renders a due date with the configured layout.
func (f *Formatter) FormatDate(r reminder.Reminder) string {
	return r.Date.Format(f.dateFormat)
}

// FormatRow renders a single reminder. pos is zero-based; rows are
// numbered from 1 on screen.
func (f *Formatter) FormatRow(pos int, r reminder.Reminder) string {
	num := fmt.Sprintf("%2d.", pos+1)
	box := uncheckedBox
	if r.IsCompleted {
		box = checkedBox
	}
	date := f.FormatDate(r)

	if !f.colored {
		return fmt.Sprintf("%s %s %s  (%s)", num, box, r.Text, date)
	}

	text := TextStyle.Render(r.Text)
	if r.IsCompleted {
		box = SuccessStyle.Render(box)
		text = DoneTextStyle.Render(r.Text)
	} else {
		box = DimStyle.Render(box)
	}
	return DimStyle.Render(num) + " " + box + " " + text + "  " + DateStyle.Render(date)
}

// FormatList renders the whole list with a summary header.
func (f *Formatter) FormatList(reminders []reminder.Reminder) string {
	if len(reminders) == 0 {
		return f.FormatInfo("No reminders yet. Type some text to add one.")
	}

	done := 0
	rows := make([]string, len(reminders))
	for i, r := range reminders {
		if r.IsCompleted {
			done++
		}
		rows[i] = f.FormatRow(i, r)
	}

	title := fmt.Sprintf("Reminders (%d, %d done)", len(reminders), done)
	body := strings.Join(rows, "\n")

	if f.colored {
		return HeaderStyle.Render(title) + "\n" + BoxStyle.Render(body)
	}
	return title + "\n" + body
}

// FormatAdded confirms a newly created reminder.
func (f *Formatter) FormatAdded(r reminder.Reminder) string {
	msg := fmt.Sprintf("Added %q for %s", r.Text, f.FormatDate(r))
	if f.colored {
		return SuccessStyle.Render("+ ") + TextStyle.Render(msg)
	}
	return "+ " + msg
}

func (f *Formatter) FormatError(err error) string {
	prefix := "Error: "
	if f.colored {
		prefix = ErrorStyle.Render("Error: ")
	}
	return prefix + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	if f.colored {
		return InfoStyle.Render(info)
	}
	return info
}

func (f *Formatter) FormatSystem(msg string) string {
	if f.colored {
		return SystemStyle.Render(msg)
	}
	return msg
}

func (f *Formatter) FormatWelcome() string {
	if !f.colored {
		return strings.Join([]string{
			"",
			"Reminders",
			"Type a reminder to add it, /help for commands",
			"",
		}, "\n")
	}

	title := HeaderStyle.Render("Reminders")
	hint := DimStyle.Render("Type a reminder to add it, /help for commands")
	return "\n" + BoxStyle.Render(title+"\n"+hint) + "\n"
}

// FormatPrompt returns a styled input prompt
func (f *Formatter) FormatPrompt() string {
	if f.colored {
		promptStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
		arrowStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)
		return promptStyle.Render("remind") + arrowStyle.Render(" > ")
	}
	return "remind > "
}
