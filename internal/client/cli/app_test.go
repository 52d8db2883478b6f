package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/loandesk/internal/client/config"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/client/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataLatency = 0
	cfg.ActionLatency = 0
	return cfg
}

// runApp feeds script to a fresh App and returns it with its output and logs.
func runApp(t *testing.T, cfg *config.Config, script ...string) (*App, string, string) {
	t.Helper()
	var out, logs bytes.Buffer
	a, err := NewApp(cfg, strings.NewReader(strings.Join(script, "\n")+"\n"), &out, &logs)
	require.NoError(t, err)

	a.Run(context.Background())
	return a, out.String(), logs.String()
}

func TestApp_QuickLoginViewer(t *testing.T) {
	a, out, _ := runApp(t, testConfig(), "quick viewer", "help", "approve b1", "whoami", "exit")

	assert.Contains(t, out, "Logged in as vic.viewer (VIEWER)")
	assert.Contains(t, out, "Borrower Pipeline")
	assert.Contains(t, out, "Sarah Dunn")
	assert.Contains(t, out, "sarah.dunn@example.com")
	assert.Contains(t, out, "Income Inconsistent")
	assert.Contains(t, out, "Robert Turner")
	assert.Contains(t, out, "Deal Intake")
	assert.Contains(t, out, "You are not allowed to Approve Loan")
	assert.NotContains(t, out, "Request Documents")
	assert.NotContains(t, out, "approve [id]")
	assert.Equal(t, router.PathDashboard, a.router.Current())

	tab, _, _ := a.state.BorrowerPipeline().Locate("b1")
	assert.Equal(t, models.TabNew, tab)
}

func TestApp_LoginFormAndApprove(t *testing.T) {
	stubPassword(t, "pass")

	a, out, logs := runApp(t, testConfig(), "login", "jo", "analyst", "approve", "tab approved", "list", "exit")

	assert.Contains(t, out, "Logged in as jo (ANALYST)")
	assert.Contains(t, out, "Request Documents")
	assert.Contains(t, out, "Approve Loan: done for Sarah Dunn, now Approved")
	assert.Contains(t, out, "Approved (2)")
	assert.Equal(t, 1, strings.Count(logs, `"borrower_id":"b1"`))
	assert.Contains(t, logs, "Approve Loan")

	tab, _, ok := a.state.BorrowerPipeline().Locate("b1")
	require.True(t, ok)
	assert.Equal(t, models.TabApproved, tab)
	assert.Equal(t, models.TabApproved, a.state.ActiveTab())
}

func TestApp_LoginValidationErrors(t *testing.T) {
	stubPassword(t, "abc")

	a, out, _ := runApp(t, testConfig(), "login", "j", "OWNER", "whoami", "exit")

	assert.Contains(t, out, "username must be at least 2 characters")
	assert.Contains(t, out, "password must be at least 4 characters")
	assert.Contains(t, out, "role must be one of")
	assert.Contains(t, out, "Not logged in")
	assert.Equal(t, router.PathLogin, a.router.Current())
}

func TestApp_GuardRedirects(t *testing.T) {
	a, out, _ := runApp(t, testConfig(), "list", "goto /dashboard", "goto /", "goto /reports", "exit")

	assert.Contains(t, out, "Please log in first")
	assert.Contains(t, out, "redirected to /login")
	assert.Contains(t, out, "unknown route")
	assert.Equal(t, router.PathLogin, a.router.Current())
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	a, out, _ := runApp(t, testConfig(), "quick admin", "logout", "list", "exit")

	assert.Contains(t, out, "Logged out")
	assert.Contains(t, out, "Please log in first")
	assert.Equal(t, router.PathLogin, a.router.Current())
	assert.Nil(t, a.state.SelectedBorrower())
	assert.Nil(t, a.state.BrokerInfo())
}

func TestApp_SelectAndTabs(t *testing.T) {
	a, out, _ := runApp(t, testConfig(), "quick broker", "tab in_review", "select b4", "select nope", "tab archived", "exit")

	assert.Contains(t, out, "Priya Nair")
	assert.Contains(t, out, "No borrower with id nope")
	assert.Contains(t, out, "Usage: tab <new|in_review|approved>")
	assert.Equal(t, "b4", a.state.SelectedBorrower().ID)
	assert.Equal(t, models.TabInReview, a.state.ActiveTab())
}

func TestApp_ThemeToggleReachesRenderer(t *testing.T) {
	a, out, _ := runApp(t, testConfig(), "theme", "exit")

	assert.Contains(t, out, "Theme: dark")
	assert.Equal(t, models.ThemeDark, a.state.Theme())
	assert.Equal(t, models.ThemeDark, a.view.Theme())
}

func TestNewApp_FixtureFile(t *testing.T) {
	cfg := testConfig()
	cfg.FixturePath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := NewApp(cfg, strings.NewReader(""), io.Discard, io.Discard)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pipeline: [1, 2]\n"), 0o600))
	cfg.FixturePath = bad
	_, err = NewApp(cfg, strings.NewReader(""), io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestGetStatus(t *testing.T) {
	a, err := NewApp(testConfig(), strings.NewReader(""), io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "(/login)", a.getStatus())

	require.NoError(t, a.QuickLogin(context.Background(), "admin"))
	assert.Equal(t, "(alice.admin /dashboard)", a.getStatus())
}
