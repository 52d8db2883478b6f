package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/loandesk/internal/client/auth"
	"github.com/dmitrijs2005/loandesk/internal/client/client"
	"github.com/dmitrijs2005/loandesk/internal/client/config"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/client/router"
	"github.com/dmitrijs2005/loandesk/internal/client/services"
	"github.com/dmitrijs2005/loandesk/internal/client/session"
	"github.com/dmitrijs2005/loandesk/internal/client/store"
	"github.com/dmitrijs2005/loandesk/internal/common"
	"github.com/dmitrijs2005/loandesk/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger

	authService      services.AuthService
	dashboardService services.DashboardService
	workflowService  services.WorkflowService

	state  *store.Store
	router *router.Router
	view   *Renderer

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the data service, state stores and services from c. Input is
// read from in; user-facing output goes to out and logs to logOut.
func NewApp(c *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	logger := logging.New(c.LogFormat, c.LogLevel, logOut)

	fixture := client.DefaultFixture()
	if c.FixturePath != "" {
		f, err := client.LoadFixtureFile(c.FixturePath)
		if err != nil {
			return nil, err
		}
		fixture = f
	}
	dataClient := client.NewMockClient(fixture, c.DataLatency)

	secret := c.SecretKey
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key: %w", err)
		}
		secret = s
	}
	tokens := auth.NewTokener([]byte(secret), c.SessionTTL)
	sess := session.NewStore(tokens)

	state := store.NewStore(dataClient, logger, c.Theme, c.ActionLatency)
	view := NewRenderer(out)
	state.Subscribe(view)

	return &App{
		config:           c,
		logger:           logger,
		authService:      services.NewAuthService(sess, tokens, logger),
		dashboardService: services.NewDashboardService(dataClient, state, c.BrokerID, logger),
		workflowService:  services.NewWorkflowService(state),
		state:            state,
		router:           router.New(sess),
		view:             view,
		reader:           bufio.NewReader(in),
		out:              out,
	}, nil
}

// Run starts the REPL and blocks until the user exits or in is exhausted.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.Current(context.Background()) != nil
}

func (a *App) visibleActions() []models.Action {
	return visibleActionsFor(a.authService.Current(context.Background()))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
