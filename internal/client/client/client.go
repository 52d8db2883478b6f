package client

import (
	"context"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
)

// Client is the opaque asynchronous data source behind the dashboard. The
// pipeline it returns carries summary records; GetBorrowerDetail returns the
// full record.
type Client interface {
	GetBorrowerPipeline(ctx context.Context) (models.BorrowerPipeline, error)
	GetBorrowerDetail(ctx context.Context, id string) (*models.Borrower, error)
	GetBrokerInfo(ctx context.Context, id string) (*models.BrokerInfo, error)
	GetOnboardingWorkflow(ctx context.Context) (*models.OnboardingWorkflow, error)
	ApplyAction(ctx context.Context, action models.Action, borrowerID string) (*models.Borrower, error)
}
