package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/loandesk/internal/client/client"
	"github.com/dmitrijs2005/loandesk/internal/client/guard"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/common"
)

// ActionRunner applies a workflow action to the app state.
type ActionRunner interface {
	Run(ctx context.Context, action models.Action, borrowerID string) (models.Outcome, error)
}

// WorkflowService triggers borrower workflow actions on behalf of a user.
type WorkflowService interface {
	Run(ctx context.Context, user *models.User, action models.Action, borrowerID string) (models.Outcome, error)
}

type workflowService struct {
	runner ActionRunner
}

func NewWorkflowService(runner ActionRunner) WorkflowService {
	return &workflowService{runner: runner}
}

// Run checks that user may trigger action before handing it to the runner.
// Rejected calls return an unsuccessful Outcome and never reach the runner.
func (w *workflowService) Run(ctx context.Context, user *models.User, action models.Action, borrowerID string) (models.Outcome, error) {
	out := models.Outcome{Action: action, BorrowerID: borrowerID}

	reject := func(err error) (models.Outcome, error) {
		out.Reason = err.Error()
		return out, err
	}

	switch {
	case !action.Valid():
		return reject(fmt.Errorf("%w: %q", client.ErrUnknownAction, action))
	case strings.TrimSpace(borrowerID) == "":
		return reject(fmt.Errorf("%w: borrower id is required", common.ErrorValidation))
	}

	switch guard.Decide(user, guard.ActionRoles(action)...) {
	case guard.DenyUnauthenticated:
		return reject(fmt.Errorf("%s: %w", action.Label(), common.ErrorUnauthenticated))
	case guard.DenyForbidden:
		return reject(fmt.Errorf("%s not allowed for role %s: %w", action.Label(), user.Role, common.ErrorForbidden))
	}

	return w.runner.Run(ctx, action, borrowerID)
}
