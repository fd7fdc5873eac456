package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/notexe/reminders/internal/reminder"
)

var (
	milk = reminder.Reminder{ID: "1", Text: "Buy milk", Date: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	bob  = reminder.Reminder{ID: "2", Text: "Call Bob", Date: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), IsCompleted: true}
)

func TestFormatRowPlain(t *testing.T) {
	f := NewFormatter(false, "2006-01-02 15:04")

	if got, want := f.FormatRow(0, milk), " 1. [ ] Buy milk  (2024-01-01 09:00)"; got != want {
		t.Errorf("FormatRow() = %q, want %q", got, want)
	}
	if got, want := f.FormatRow(11, bob), "12. [x] Call Bob  (2024-01-02 10:00)"; got != want {
		t.Errorf("FormatRow() = %q, want %q", got, want)
	}
}

func TestFormatListPlain(t *testing.T) {
	f := NewFormatter(false, "2006-01-02")

	got := f.FormatList([]reminder.Reminder{milk, bob})
	want := "Reminders (2, 1 done)\n 1. [ ] Buy milk  (2024-01-01)\n 2. [x] Call Bob  (2024-01-02)"
	if got != want {
		t.Errorf("FormatList() =\n%s\nwant\n%s", got, want)
	}

	if empty := f.FormatList(nil); !strings.Contains(empty, "No reminders yet") {
		t.Errorf("empty list = %q", empty)
	}
}

func TestFormatterDefaultsDateFormat(t *testing.T) {
	f := NewFormatter(false, "")
	if got := f.FormatDate(milk); got != "Mon Jan 1 2024 09:00" {
		t.Errorf("FormatDate() = %q", got)
	}
}

func TestFormatMessagesPlain(t *testing.T) {
	f := NewFormatter(false, "2006-01-02")

	if got := f.FormatError(errors.New("boom")); got != "Error: boom" {
		t.Errorf("FormatError() = %q", got)
	}
	if got := f.FormatAdded(milk); got != `+ Added "Buy milk" for 2024-01-01` {
		t.Errorf("FormatAdded() = %q", got)
	}
	if got := f.FormatHelp(); got != helpMarkdown {
		t.Error("plain help should be the raw markdown")
	}
	if got := f.FormatPrompt(); got != "remind > " {
		t.Errorf("FormatPrompt() = %q", got)
	}
}

func TestFormatRowColoredKeepsText(t *testing.T) {
	f := NewFormatter(true, "2006-01-02")
	if got := f.FormatRow(0, bob); !strings.Contains(got, "Bob") {
		t.Errorf("colored row lost its text: %q", got)
	}
}

func TestSelectorInteractive(t *testing.T) {
	tests := []struct {
		name  string
		keys  string
		want  []int
		isErr bool
	}{
		{"enter without marks", "\r", nil, false},
		{"space marks cursor row", " \r", []int{0}, false},
		{"move and mark", "jj \r", []int{2}, false},
		{"arrow keys", "\x1b[B \x1b[B \x1b[A \r", []int{2}, false},
		{"wraps upward", "k \r", []int{2}, false},
		{"digits toggle rows", "13\r", []int{0, 2}, false},
		{"digit twice unmarks", "22\r", nil, false},
		{"cancel", " q", nil, true},
		{"ctrl-c", "\x03", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector("Delete which?", []string{"a", "b", "c"}, false)
			var out bytes.Buffer

			got, err := s.RunInteractive(strings.NewReader(tt.keys), &out)
			if tt.isErr {
				if !errors.Is(err, ErrCancelled) {
					t.Fatalf("err = %v, want ErrCancelled", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RunInteractive() failed: %v", err)
			}
			if !equalInts(got, tt.want) {
				t.Errorf("selected = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectorSimple(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"spaces", "1 3\n", []int{0, 2}, false},
		{"commas", "3,2\n", []int{1, 2}, false},
		{"empty line", "\n", nil, false},
		{"out of range", "4\n", nil, true},
		{"garbage", "x\n", nil, true},
		{"eof", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector("Delete which?", []string{"a", "b", "c"}, false)
			var out bytes.Buffer

			got, err := s.RunSimple(strings.NewReader(tt.input), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("RunSimple() failed: %v", err)
			}
			if !equalInts(got, tt.want) {
				t.Errorf("selected = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "[2] b") {
				t.Errorf("rows not listed: %q", out.String())
			}
		})
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
