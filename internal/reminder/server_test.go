package reminder

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func newTestServer() (*Server, *Store) {
	store := NewStore(nil)
	s := NewServer(store, nil)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s, store
}

func TestHandleAddReminder(t *testing.T) {
	s, store := newTestServer()

	out, isErr := callTool(t, s.handleAddReminder, map[string]any{
		"text": "Buy milk",
		"date": "2024-01-01T09:00:00Z",
	})
	if isErr {
		t.Fatalf("unexpected error result: %s", out)
	}

	var got Reminder
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not a reminder: %v", err)
	}
	if got.Text != "Buy milk" || got.IsCompleted || got.ID == "" {
		t.Errorf("unexpected reminder %+v", got)
	}
	if !got.Date.Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", got.Date)
	}
	if store.Len() != 1 {
		t.Errorf("store length = %d, want 1", store.Len())
	}
}

func TestHandleAddReminderDefaultsDate(t *testing.T) {
	s, store := newTestServer()

	if out, isErr := callTool(t, s.handleAddReminder, map[string]any{"text": "Stretch"}); isErr {
		t.Fatalf("unexpected error result: %s", out)
	}
	if got := store.Snapshot()[0].Date; !got.Equal(s.now()) {
		t.Errorf("date = %v, want now", got)
	}
}

func TestHandleAddReminderErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing text", map[string]any{}, "text is required"},
		{"blank text", map[string]any{"text": "   "}, "text is required"},
		{"bad date", map[string]any{"text": "x", "date": "tomorrow"}, "invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := newTestServer()
			out, isErr := callTool(t, s.handleAddReminder, tt.args)
			if !isErr {
				t.Fatalf("expected error result, got %s", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("message %q does not contain %q", out, tt.want)
			}
			if store.Len() != 0 {
				t.Errorf("store changed on error")
			}
		})
	}
}

func TestHandleListReminders(t *testing.T) {
	s, store := newTestServer()

	out, _ := callTool(t, s.handleListReminders, nil)
	if out != "No reminders found." {
		t.Errorf("empty list output = %q", out)
	}

	fill(t, store, "a", "b")
	out, isErr := callTool(t, s.handleListReminders, nil)
	if isErr {
		t.Fatalf("unexpected error result: %s", out)
	}

	var listed []listedReminder
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("output is not a list: %v", err)
	}
	if len(listed) != 2 || listed[0].Position != 0 || listed[1].Text != "b" {
		t.Errorf("unexpected listing %+v", listed)
	}
}

func TestHandleToggleReminder(t *testing.T) {
	s, store := newTestServer()
	added := fill(t, store, "a")

	out, isErr := callTool(t, s.handleToggleReminder, map[string]any{"id": added[0].ID})
	if isErr || !strings.Contains(out, "completed") {
		t.Fatalf("toggle output = %q (error=%v)", out, isErr)
	}
	if !store.Snapshot()[0].IsCompleted {
		t.Error("reminder was not completed")
	}

	out, _ = callTool(t, s.handleToggleReminder, map[string]any{"id": added[0].ID})
	if !strings.Contains(out, "pending") {
		t.Errorf("second toggle output = %q", out)
	}

	if _, isErr := callTool(t, s.handleToggleReminder, map[string]any{"id": "nope"}); !isErr {
		t.Error("unknown id should be an error result")
	}
	if _, isErr := callTool(t, s.handleToggleReminder, map[string]any{}); !isErr {
		t.Error("missing id should be an error result")
	}
}

func TestHandleRemoveReminders(t *testing.T) {
	s, store := newTestServer()
	fill(t, store, "a", "b", "c")

	out, isErr := callTool(t, s.handleRemoveReminders, map[string]any{
		"positions": []any{float64(0), float64(2), float64(9)},
	})
	if isErr {
		t.Fatalf("unexpected error result: %s", out)
	}
	if out != "Removed 2 reminder(s)." {
		t.Errorf("output = %q", out)
	}
	if got := texts(store.Snapshot()); !equalStrings(got, []string{"b"}) {
		t.Errorf("remaining = %v", got)
	}

	if _, isErr := callTool(t, s.handleRemoveReminders, map[string]any{"positions": "0"}); !isErr {
		t.Error("non-array positions should be an error result")
	}
	if _, isErr := callTool(t, s.handleRemoveReminders, map[string]any{"positions": []any{"x"}}); !isErr {
		t.Error("non-numeric position should be an error result")
	}
}

func TestHandleRemoveRemindersRejectsNonIntegers(t *testing.T) {
	tests := []struct {
		name      string
		positions []any
	}{
		{"negative fraction", []any{float64(-0.5)}},
		{"fraction", []any{float64(1.9)}},
		{"mixed with valid", []any{float64(0), float64(1.5)}},
		{"too large", []any{float64(1e300)}},
		{"too small", []any{float64(-1e300)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := newTestServer()
			fill(t, store, "a", "b", "c")

			out, isErr := callTool(t, s.handleRemoveReminders, map[string]any{"positions": tt.positions})
			if !isErr {
				t.Fatalf("expected error result, got %q", out)
			}
			if got := texts(store.Snapshot()); !equalStrings(got, []string{"a", "b", "c"}) {
				t.Errorf("remaining = %v, want list unchanged", got)
			}
		})
	}
}
