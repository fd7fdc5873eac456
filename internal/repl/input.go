package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/notexe/reminders/internal/config"
)

// inputOptions are the line-editor settings derived from the UI config.
type inputOptions struct {
	Prompt       string
	HistoryFile  string
	HistoryLimit int
}

func newInputOptions(prompt string, cfg config.UIConfig) inputOptions {
	limit := cfg.HistoryLimit
	if limit == 0 {
		// readline treats 0 as its own default; 0 here means no history
		limit = -1
	}
	return inputOptions{
		Prompt:       prompt,
		HistoryFile:  cfg.HistoryFile,
		HistoryLimit: limit,
	}
}

func (o inputOptions) readlineConfig() *readline.Config {
	return &readline.Config{
		Prompt:              o.Prompt,
		HistoryFile:         o.HistoryFile,
		HistoryLimit:        o.HistoryLimit,
		InterruptPrompt:     "^C",
		EOFPrompt:           "/quit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}
}

func setupReadline(opts inputOptions) (*readline.Instance, error) {
	return readline.NewEx(opts.readlineConfig())
}

func (r *REPL) readInput() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseCommand reports whether input is a slash command and splits it
// into the lower-cased command and its trimmed arguments.
func parseCommand(input string) (bool, string, string) {
	if !strings.HasPrefix(input, "/") {
		return false, "", ""
	}

	command, args, _ := strings.Cut(input, " ")
	return true, strings.ToLower(command), strings.TrimSpace(args)
}

// filterInput drops Ctrl+Z so it cannot suspend the process mid-edit.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
