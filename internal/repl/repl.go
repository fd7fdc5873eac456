package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/chzyer/readline"
	"github.com/notexe/reminders/internal/config"
	"github.com/notexe/reminders/internal/reminder"
	"github.com/notexe/reminders/internal/ui"
	"go.uber.org/zap"
)

// errQuit ends the loop after a /quit command.
var errQuit = errors.New("quit")

type REPL struct {
	store     *reminder.Store
	config    *config.Config
	rl        *readline.Instance
	formatter *ui.Formatter
	logger    *zap.Logger
	out       io.Writer
	now       func() time.Time
	pick      func(rows []string) ([]int, error)
	openInput func() (*readline.Instance, error)
}

func NewREPL(store *reminder.Store, cfg *config.Config, logger *zap.Logger) (*REPL, error) {
	r := newREPL(store, cfg, logger, os.Stdout)

	rl, err := r.openInput()
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}
	r.rl = rl

	return r, nil
}

func newREPL(store *reminder.Store, cfg *config.Config, logger *zap.Logger, out io.Writer) *REPL {
	if logger == nil {
		logger = zap.NewNop()
	}
	formatter := ui.NewFormatter(cfg.UI.ColoredOutput, cfg.UI.DateFormat)
	opts := newInputOptions(formatter.FormatPrompt(), cfg.UI)

	return &REPL{
		store:     store,
		config:    cfg,
		formatter: formatter,
		logger:    logger,
		out:       out,
		now:       time.Now,
		pick: func(rows []string) ([]int, error) {
			return ui.NewSelector("Select reminders to delete", rows, formatter.Colored()).Run()
		},
		openInput: func() (*readline.Instance, error) {
			return setupReadline(opts)
		},
	}
}

func (r *REPL) Start(ctx context.Context) error {
	// /pick swaps r.rl, so close whichever instance is current on exit
	defer r.Stop()

	if r.config.UI.ShowWelcome {
		r.displayWelcome()
	}
	r.displayList()

	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := r.handleInput(input); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			r.displayError(err)
		}
	}
}

func (r *REPL) Stop() {
	if r.rl != nil {
		r.rl.Close()
	}
}

// handleInput treats plain text as a new reminder and /-prefixed input
// as a command.
func (r *REPL) handleInput(input string) error {
	if input == "" {
		return nil
	}

	isCommand, command, args := parseCommand(input)
	if !isCommand {
		return r.add(input)
	}
	return r.handleCommand(command, args)
}

func (r *REPL) handleCommand(command, args string) error {
	switch command {
	case "/help", "/h":
		r.displayHelp()
		return nil

	case "/add", "/a":
		if args == "" {
			return fmt.Errorf("usage: /add <text> [@ date]")
		}
		return r.add(args)

	case "/list", "/ls", "/l":
		r.displayList()
		return nil

	case "/done", "/toggle", "/t":
		return r.toggle(args)

	case "/rm", "/delete", "/d":
		positions, err := parseRows(args)
		if err != nil {
			return err
		}
		return r.remove(positions)

	case "/pick", "/p":
		return r.pickAndRemove()

	case "/quit", "/exit", "/q":
		fmt.Fprintln(r.out, "\nGoodbye!")
		return errQuit

	default:
		return fmt.Errorf("unknown command: %s (type /help for available commands)", command)
	}
}

func (r *REPL) add(input string) error {
	text, date := parseAddInput(input, r.now())

	added, err := r.store.Add(text, date)
	if errors.Is(err, reminder.ErrEmptyText) {
		r.displayInfo("Nothing to add: reminder text is empty.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, r.formatter.FormatAdded(added))
	r.displayList()
	return nil
}

// toggle accepts a 1-based row number or a reminder ID.
func (r *REPL) toggle(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /done <n>")
	}

	id := args
	if n, err := strconv.Atoi(args); err == nil {
		snapshot := r.store.Snapshot()
		if n < 1 || n > len(snapshot) {
			return fmt.Errorf("no reminder at row %d", n)
		}
		id = snapshot[n-1].ID
	}

	if err := r.store.ToggleCompletion(id); err != nil {
		return fmt.Errorf("%w: %s", err, id)
	}

	r.displayList()
	return nil
}

func (r *REPL) remove(positions []int) error {
	removed := r.store.RemoveAt(positions...)
	if len(removed) == 0 {
		return fmt.Errorf("no reminders at the given rows")
	}

	r.logger.Debug("removed from repl", zap.Int("count", len(removed)))
	r.displaySystem(fmt.Sprintf("Removed %d reminder(s).", len(removed)))
	r.displayList()
	return nil
}

func (r *REPL) pickAndRemove() error {
	snapshot := r.store.Snapshot()
	if len(snapshot) == 0 {
		r.displayInfo("Nothing to delete.")
		return nil
	}

	rows := make([]string, len(snapshot))
	for i, rem := range snapshot {
		rows[i] = rem.Text + "  " + r.formatter.FormatDate(rem)
	}

	positions, err := r.pickRows(rows)
	if errors.Is(err, ui.ErrCancelled) {
		r.displayInfo("Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		r.displayInfo("Nothing selected.")
		return nil
	}

	return r.remove(positions)
}

// pickRows hands the terminal to the selector. readline is closed while the
// selector owns stdin and reopened on every return path.
func (r *REPL) pickRows(rows []string) ([]int, error) {
	if r.rl != nil {
		r.rl.Close()
	}
	defer r.reopenInput()

	return r.pick(rows)
}

func (r *REPL) reopenInput() {
	rl, err := r.openInput()
	if err != nil {
		r.logger.Error("failed to reopen input", zap.Error(err))
		return
	}
	r.rl = rl
}
