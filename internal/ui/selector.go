package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user backs out of a selection.
var ErrCancelled = errors.New("selection cancelled")

// Selector is an arrow-key navigable multi-select menu over list rows.
// It returns the zero-based positions of the marked rows.
type Selector struct {
	title    string
	rows     []string
	cursor   int
	selected map[int]bool
	colored  bool

	cursorStyle lipgloss.Style
	markedStyle lipgloss.Style
	rowStyle    lipgloss.Style
	dimStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewSelector creates a selector over pre-rendered row labels.
func NewSelector(title string, rows []string, colored bool) *Selector {
	return &Selector{
		title:    title,
		rows:     rows,
		selected: make(map[int]bool),
		colored:  colored,

		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		markedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		rowStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		titleStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		hintStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// Run shows the menu on the terminal. Without a terminal it falls back to
// reading row numbers from a line of input.
func (s *Selector) Run() ([]int, error) {
	if len(s.rows) == 0 {
		return nil, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return s.RunSimple(os.Stdin, os.Stdout)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return s.RunSimple(os.Stdin, os.Stdout)
	}

	cleanup := func() {
		term.Restore(fd, oldState)
		fmt.Print("\033[?25h") // Show cursor
	}
	defer cleanup()

	fmt.Print("\033[?25l")
	return s.RunInteractive(os.Stdin, os.Stdout)
}

// RunInteractive drives the menu from raw key bytes.
func (s *Selector) RunInteractive(in io.Reader, out io.Writer) ([]int, error) {
	totalLines := len(s.rows) + 3
	s.printMenu(out)

	reader := bufio.NewReader(in)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return nil, err
		}

		switch b {
		case 13, 10: // Enter
			s.clearMenu(out, totalLines)
			return s.marked(), nil
		case 3, 'q': // Ctrl+C
			s.clearMenu(out, totalLines)
			return nil, ErrCancelled
		case 'j':
			s.moveDown()
		case 'k':
			s.moveUp()
		case ' ':
			s.toggle()
		case 27: // Escape sequence
			b2, _ := reader.ReadByte()
			if b2 == '[' {
				b3, _ := reader.ReadByte()
				switch b3 {
				case 'A':
					s.moveUp()
				case 'B':
					s.moveDown()
				}
			}
		default:
			if b >= '1' && b <= '9' {
				idx := int(b - '1')
				if idx < len(s.rows) {
					s.cursor = idx
					s.toggle()
				}
			}
		}

		s.clearMenu(out, totalLines)
		s.printMenu(out)
	}
}

// RunSimple prints numbered rows and reads space or comma separated
// row numbers. An empty line selects nothing.
func (s *Selector) RunSimple(in io.Reader, out io.Writer) ([]int, error) {
	fmt.Fprintln(out, s.title)
	for i, row := range s.rows {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, row)
	}
	fmt.Fprint(out, "Enter numbers: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return nil, ErrCancelled
		}
		return nil, err
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(s.rows) {
			return nil, fmt.Errorf("invalid row number: %s", f)
		}
		s.selected[n-1] = true
	}
	return s.marked(), nil
}

func (s *Selector) printMenu(out io.Writer) {
	var sb strings.Builder

	hint := "[j/k or arrows] move  [space] mark  [enter] confirm  [q] cancel"
	if s.colored {
		sb.WriteString(s.titleStyle.Render(s.title))
		sb.WriteString("\r\n")
		sb.WriteString(s.hintStyle.Render(hint))
	} else {
		sb.WriteString(s.title + "\r\n" + hint)
	}
	sb.WriteString("\r\n\r\n")

	for i, row := range s.rows {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		mark := "[ ] "
		if s.selected[i] {
			mark = "[x] "
		}

		if !s.colored {
			sb.WriteString(cursor + mark + row)
		} else {
			if i == s.cursor {
				sb.WriteString(s.cursorStyle.Render(cursor))
			} else {
				sb.WriteString(s.dimStyle.Render(cursor))
			}
			if s.selected[i] {
				sb.WriteString(s.markedStyle.Render(mark))
			} else {
				sb.WriteString(s.dimStyle.Render(mark))
			}
			sb.WriteString(s.rowStyle.Render(row))
		}
		sb.WriteString("\r\n")
	}

	fmt.Fprint(out, sb.String())
}

func (s *Selector) clearMenu(out io.Writer, lines int) {
	for i := 0; i < lines; i++ {
		fmt.Fprint(out, "\033[A\033[2K\r")
	}
}

func (s *Selector) moveUp() {
	if s.cursor > 0 {
		s.cursor--
	} else {
		s.cursor = len(s.rows) - 1
	}
}

func (s *Selector) moveDown() {
	if s.cursor < len(s.rows)-1 {
		s.cursor++
	} else {
		s.cursor = 0
	}
}

func (s *Selector) toggle() {
	s.selected[s.cursor] = !s.selected[s.cursor]
}

func (s *Selector) marked() []int {
	var out []int
	for i, ok := range s.selected {
		if ok {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
