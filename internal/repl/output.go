package repl

import (
	"fmt"
)

func (r *REPL) displayList() {
	fmt.Fprintln(r.out, r.formatter.FormatList(r.store.Snapshot()))
	fmt.Fprintln(r.out)
}

func (r *REPL) displayError(err error) {
	fmt.Fprintln(r.out, r.formatter.FormatError(err))
	fmt.Fprintln(r.out)
}

func (r *REPL) displayWelcome() {
	fmt.Fprint(r.out, r.formatter.FormatWelcome())
}

func (r *REPL) displayHelp() {
	fmt.Fprint(r.out, r.formatter.FormatHelp())
}

func (r *REPL) displayInfo(msg string) {
	fmt.Fprintln(r.out, r.formatter.FormatInfo(msg))
	fmt.Fprintln(r.out)
}

func (r *REPL) displaySystem(msg string) {
	fmt.Fprintln(r.out, r.formatter.FormatSystem(msg))
}
