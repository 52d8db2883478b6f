// Package cli provides the interactive LoanDesk command-line client.
//
// It wires configuration, the mock data service, the auth and app state
// stores, the router and the services behind an interactive REPL. Typical
// flow: log in (or quick-login as a demo role), land on the dashboard, browse
// the borrower pipeline by tab, select a borrower and trigger the workflow
// actions the role is allowed to see.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, Renderer and runREPL for details.
package cli
