package cli

import (
	"bufio"
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := a.router.Current()
	if u := a.authService.Current(context.Background()); u != nil {
		s = fmt.Sprintf("%s %s", u.Name, s)
	}
	return fmt.Sprintf("(%s)", s)
}

// Root prints the welcome banner and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	a.println(a.view.Info("Welcome to LoanDesk (type 'help' for commands)"))
	scanner := bufio.NewScanner(lineReader{a.reader})

	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) { return fmt.Fprintln(a.out, args...) }
	defer func() { printlnFn = origPrint }()

	runREPL(ctx, a, a.getStatus, scanner)
}
