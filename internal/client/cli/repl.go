package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	visibleActions() []models.Action
	Login(ctx context.Context) error
	QuickLogin(ctx context.Context, role string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Goto(ctx context.Context, path string) error
	Tab(ctx context.Context, tab string) error
	List(ctx context.Context) error
	Select(ctx context.Context, id string) error
	Show(ctx context.Context) error
	Broker(ctx context.Context) error
	Act(ctx context.Context, action models.Action, id string) error
	ToggleTheme(ctx context.Context) error
}

var commands = []string{
	"help", "login", "quick", "logout", "whoami", "goto", "tab", "list", "select",
	"show", "broker", "docs", "valuer", "approve", "escalate", "theme", "exit", "quit",
}

// runREPL starts a simple read–eval–print loop for the loandesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user with the closest known command. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                     show available commands
//	  - login                    log in with username, password and role
//	  - quick <role>             log in as a demo account
//	  - goto <path>              navigate (/, /login, /unauthorized, /dashboard)
//	  - theme                    toggle light/dark
//	  - exit | quit              leave the program
//
//	Logged in, additionally:
//	  - whoami                   show the current user
//	  - tab <tab>                switch to new, in_review or approved
//	  - list                     list borrowers of the active tab
//	  - select <id>              show a borrower
//	  - show                     show the selected borrower
//	  - broker                   broker overview and onboarding workflow
//	  - docs|valuer|approve|escalate [id]
//	                             workflow actions the role may trigger
//	  - logout                   log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("loandesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			printlnFn(helpText(a))

		case "login":
			_ = a.Login(ctx)

		case "quick":
			_ = a.QuickLogin(ctx, arg)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "goto":
			if arg == "" {
				printlnFn("Usage: goto <path>")
				continue
			}
			_ = a.Goto(ctx, arg)

		case "tab":
			_ = a.Tab(ctx, arg)

		case "l", "list":
			_ = a.List(ctx)

		case "select":
			if arg == "" {
				printlnFn("Usage: select <id>")
				continue
			}
			_ = a.Select(ctx, arg)

		case "show":
			_ = a.Show(ctx)

		case "broker":
			_ = a.Broker(ctx)

		case "docs", "valuer", "approve", "escalate":
			action, err := models.ParseAction(cmd)
			if err != nil {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Act(ctx, action, arg)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if s := suggest(cmd, commands); s != "" {
				printlnFn(fmt.Sprintf("Unknown command: %s (did you mean %q?)", cmd, s))
			} else {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

func helpText(a execIface) string {
	if !a.isLoggedIn() {
		return "Available commands: login, quick <admin|broker|analyst|viewer>, goto <path>, theme, exit"
	}

	cmds := []string{"whoami", "tab <tab>", "(l)ist", "select <id>", "show", "broker"}
	for _, act := range a.visibleActions() {
		cmds = append(cmds, actionCommand(act)+" [id]")
	}
	cmds = append(cmds, "goto <path>", "theme", "logout", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}
