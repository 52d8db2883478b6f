package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	actions  []models.Action

	calls []string
}

func (f *fakeExec) record(c string) error {
	f.calls = append(f.calls, c)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                { return f.loggedIn }
func (f *fakeExec) visibleActions() []models.Action { return f.actions }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) QuickLogin(ctx context.Context, role string) error {
	f.loggedIn = true
	return f.record("quick " + role)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error            { return f.record("whoami") }
func (f *fakeExec) Goto(ctx context.Context, path string) error { return f.record("goto " + path) }
func (f *fakeExec) Tab(ctx context.Context, tab string) error   { return f.record("tab " + tab) }
func (f *fakeExec) List(ctx context.Context) error              { return f.record("list") }
func (f *fakeExec) Select(ctx context.Context, id string) error { return f.record("select " + id) }
func (f *fakeExec) Show(ctx context.Context) error              { return f.record("show") }
func (f *fakeExec) Broker(ctx context.Context) error            { return f.record("broker") }
func (f *fakeExec) Act(ctx context.Context, action models.Action, id string) error {
	return f.record(fmt.Sprintf("act %s %s", action, id))
}
func (f *fakeExec) ToggleTheme(ctx context.Context) error { return f.record("theme") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"quick admin",
		"tab in_review",
		"l",
		"select b3",
		"show",
		"broker",
		"docs",
		"approve b3",
		"escalate b1",
		"valuer",
		"theme",
		"whoami",
		"goto /dashboard",
		"logout",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"quick admin",
		"tab in_review",
		"list",
		"select b3",
		"show",
		"broker",
		"act request_documents ",
		"act approve_loan b3",
		"act escalate_to_committee b1",
		"act send_to_valuer ",
		"theme",
		"whoami",
		"goto /dashboard",
		"logout",
	}, exec.calls)
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("select\ngoto\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: select <id>")
	assert.Contains(t, *lines, "Usage: goto <path>")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_UnknownCommandSuggests(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("aprove\nfoobar\n")
	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewScanner(input))

	assert.Contains(t, *lines, `Unknown command: aprove (did you mean "approve"?)`)
	assert.Contains(t, *lines, "Unknown command:foobar")
}

func TestHelpText_ListsOnlyVisibleActions(t *testing.T) {
	out := helpText(&fakeExec{})
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "approve")

	viewer := helpText(&fakeExec{loggedIn: true})
	assert.NotContains(t, viewer, "approve")
	assert.NotContains(t, viewer, "docs")
	assert.Contains(t, viewer, "logout")

	broker := helpText(&fakeExec{loggedIn: true, actions: []models.Action{models.ActionRequestDocuments, models.ActionEscalateToCommittee}})
	assert.Contains(t, broker, "docs [id]")
	assert.Contains(t, broker, "escalate [id]")
	assert.NotContains(t, broker, "approve")
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "logout", suggest("logot", commands))
	assert.Equal(t, "theme", suggest("them", commands))
	assert.Equal(t, "", suggest("completely-different", commands))
}
