package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/loandesk/internal/client/guard"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/client/router"
	"github.com/dmitrijs2005/loandesk/internal/common"
)

func visibleActionsFor(u *models.User) []models.Action {
	return guard.VisibleActions(u)
}

// Goto navigates to path. Landing on the dashboard loads it and prints every
// panel; guard redirects are reported.
func (a *App) Goto(ctx context.Context, path string) error {
	final, decision, err := a.router.Navigate(path)
	if err != nil {
		a.println(a.view.Error(err.Error()))
		return err
	}

	switch decision {
	case guard.DenyUnauthenticated:
		a.println(a.view.Error("Please log in first (redirected to " + final + ")"))
	case guard.DenyForbidden:
		a.println(a.view.Error("Access denied (redirected to " + final + ")"))
	}

	if final != router.PathDashboard {
		a.println(a.view.Info("Now at " + final))
		return nil
	}

	if err := a.dashboardService.Load(ctx); err != nil {
		a.println(a.view.Error("Could not load dashboard: " + err.Error()))
		return err
	}
	a.println(a.renderDashboard())
	return nil
}

// onDashboard reports whether the current user may use the dashboard and
// says why not otherwise.
func (a *App) onDashboard() error {
	_, decision, err := a.router.Resolve(router.PathDashboard)
	if err != nil {
		return err
	}
	switch decision {
	case guard.DenyUnauthenticated:
		a.println(a.view.Error("Please log in first"))
		return common.ErrorUnauthenticated
	case guard.DenyForbidden:
		a.println(a.view.Error("Access denied"))
		return common.ErrorForbidden
	}
	return nil
}

func (a *App) renderDashboard() string {
	return a.renderPipeline() + "\n" + a.renderDetail() + "\n" + a.view.Broker(a.state.BrokerInfo(), a.state.OnboardingWorkflow())
}

func (a *App) renderPipeline() string {
	selectedID := ""
	if b := a.state.SelectedBorrower(); b != nil {
		selectedID = b.ID
	}
	return a.view.Pipeline(a.state.BorrowerPipeline(), a.state.ActiveTab(), selectedID)
}

func (a *App) renderDetail() string {
	return a.view.Detail(a.state.SelectedBorrower(), a.visibleActions())
}

// Tab switches the pipeline tab.
func (a *App) Tab(ctx context.Context, tab string) error {
	if err := a.onDashboard(); err != nil {
		return err
	}
	if err := a.dashboardService.SelectTab(ctx, models.TabType(tab)); err != nil {
		a.println(a.view.Error("Usage: tab <new|in_review|approved>"))
		return err
	}
	a.println(a.renderPipeline())
	return nil
}

// List prints the active tab.
func (a *App) List(ctx context.Context) error {
	if err := a.onDashboard(); err != nil {
		return err
	}
	a.println(a.renderPipeline())
	return nil
}

// Select shows the full record of id.
func (a *App) Select(ctx context.Context, id string) error {
	if err := a.onDashboard(); err != nil {
		return err
	}
	if err := a.dashboardService.SelectBorrower(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.println(a.view.Error("No borrower with id " + id))
		} else {
			a.println(a.view.Error(err.Error()))
		}
		return err
	}
	a.println(a.renderDetail())
	return nil
}

// Show prints the selected borrower.
func (a *App) Show(ctx context.Context) error {
	if err := a.onDashboard(); err != nil {
		return err
	}
	a.println(a.renderDetail())
	return nil
}

// Broker prints the broker overview and onboarding workflow.
func (a *App) Broker(ctx context.Context) error {
	if err := a.onDashboard(); err != nil {
		return err
	}
	a.println(a.view.Broker(a.state.BrokerInfo(), a.state.OnboardingWorkflow()))
	return nil
}

// Act triggers action on id, or on the selected borrower when id is empty.
func (a *App) Act(ctx context.Context, action models.Action, id string) error {
	if err := a.onDashboard(); err != nil {
		return err
	}
	if id == "" {
		b := a.state.SelectedBorrower()
		if b == nil {
			a.println(a.view.Error("Select a borrower first"))
			return fmt.Errorf("%w: no borrower selected", common.ErrorValidation)
		}
		id = b.ID
	}

	a.println(a.view.Info(action.Label() + "..."))
	out, err := a.workflowService.Run(ctx, a.authService.Current(ctx), action, id)
	if err != nil {
		if errors.Is(err, common.ErrorForbidden) {
			a.println(a.view.Error("You are not allowed to " + action.Label()))
		} else {
			a.println(a.view.Error(action.Label() + " failed: " + out.Reason))
		}
		return err
	}

	msg := fmt.Sprintf("%s: done for %s", action.Label(), id)
	if out.Borrower != nil {
		msg = fmt.Sprintf("%s: done for %s, now %s", action.Label(), out.Borrower.Name, out.Borrower.Status)
	}
	a.println(a.view.Success(msg))
	return nil
}

// ToggleTheme flips the theme. The renderer follows through its subscription.
func (a *App) ToggleTheme(ctx context.Context) error {
	theme := a.state.ToggleTheme()
	a.println(a.view.Info("Theme: " + string(theme)))
	return nil
}
