package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	serverName    = "reminder"
	serverVersion = "1.0.0"
)

// Server is the MCP server for reminder management.
type Server struct {
	mcpServer *server.MCPServer
	store     *Store
	logger    *zap.Logger
	now       func() time.Time
}

// NewServer creates a new Reminder MCP server backed by the given store.
func NewServer(store *Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("add_reminder",
			mcp.WithDescription("Add a reminder with text and an optional due date (defaults to now)"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Reminder text")),
			mcp.WithString("date", mcp.Description("Due date in RFC3339 format (e.g. 2025-01-15T09:00:00Z)")),
		),
		s.handleAddReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_reminders",
			mcp.WithDescription("List all reminders in order, with their zero-based positions"),
		),
		s.handleListReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("toggle_reminder",
			mcp.WithDescription("Flip the completion state of a reminder"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleToggleReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("remove_reminders",
			mcp.WithDescription("Remove the reminders at the given zero-based positions in one step"),
			mcp.WithArray("positions",
				mcp.Required(),
				mcp.Description("Positions as returned by list_reminders"),
				mcp.Items(map[string]any{"type": "number"}),
			),
		),
		s.handleRemoveReminders,
	)
}

// listedReminder is a reminder annotated with its current position.
type listedReminder struct {
	Position int `json:"position"`
	Reminder
}

func (s *Server) handleAddReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	dateStr := req.GetString("date", "")

	date := s.now()
	if dateStr != "" {
		parsed, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date format: %v (use RFC3339, e.g. 2025-01-15T09:00:00Z)", err)), nil
		}
		date = parsed
	}

	added, err := s.store.Add(text, date)
	if errors.Is(err, ErrEmptyText) {
		return mcp.NewToolResultError("text is required"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add reminder: %v", err)), nil
	}

	output, _ := json.MarshalIndent(added, "", "  ")
	return mcp.NewToolResultText(string(output)), nil
}

func (s *Server) handleListReminders(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshot := s.store.Snapshot()
	if len(snapshot) == 0 {
		return mcp.NewToolResultText("No reminders found."), nil
	}

	listed := make([]listedReminder, len(snapshot))
	for i, r := range snapshot {
		listed[i] = listedReminder{Position: i, Reminder: r}
	}

	output, _ := json.MarshalIndent(listed, "", "  ")
	return mcp.NewToolResultText(string(output)), nil
}

func (s *Server) handleToggleReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	if err := s.store.ToggleCompletion(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reminder %s not found", id)), nil
	}

	r, _ := s.store.Get(id)
	state := "pending"
	if r.IsCompleted {
		state = "completed"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Reminder %s marked as %s.", id, state)), nil
}

func (s *Server) handleRemoveReminders(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	positions, err := intSlice(req.GetArguments()["positions"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	removed := s.store.RemoveAt(positions...)
	s.logger.Info("reminders removed via tool call",
		zap.Ints("requested", positions),
		zap.Int("removed", len(removed)))

	return mcp.NewToolResultText(fmt.Sprintf("Removed %d reminder(s).", len(removed))), nil
}

// intSlice converts a JSON-decoded array of numbers into positions.
func intSlice(v any) ([]int, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("positions is required and must be an array of numbers")
	}

	out := make([]int, 0, len(raw))
	for _, item := range raw {
		switch n := item.(type) {
		case float64:
			if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
				return nil, fmt.Errorf("invalid position %v: must be a whole number", n)
			}
			out = append(out, int(n))
		case int:
			out = append(out, n)
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return nil, fmt.Errorf("invalid position %q", n)
			}
			out = append(out, int(i))
		default:
			return nil, fmt.Errorf("invalid position %v", item)
		}
	}
	return out, nil
}
