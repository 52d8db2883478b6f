package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/loandesk/internal/client/client"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/client/store"
	"github.com/dmitrijs2005/loandesk/internal/common"
	"github.com/dmitrijs2005/loandesk/internal/logging"
)

// DashboardService loads data from the client into the app state and keeps the
// selection consistent with the active tab.
type DashboardService interface {
	Load(ctx context.Context) error
	SelectTab(ctx context.Context, tab models.TabType) error
	SelectBorrower(ctx context.Context, id string) error
}

type dashboardService struct {
	client   client.Client
	state    *store.Store
	brokerID string
	logger   logging.Logger
}

func NewDashboardService(c client.Client, state *store.Store, brokerID string, logger logging.Logger) DashboardService {
	return &dashboardService{client: c, state: state, brokerID: brokerID, logger: logger}
}

// Load fetches the pipeline, the broker and the onboarding workflow
// concurrently. Whatever arrived is stored even if another fetch failed; the
// first error is returned.
func (s *dashboardService) Load(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		pipeline models.BorrowerPipeline
		broker   *models.BrokerInfo
		workflow *models.OnboardingWorkflow
		errs     [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		pipeline, errs[0] = s.client.GetBorrowerPipeline(ctx)
	}()
	go func() {
		defer wg.Done()
		broker, errs[1] = s.client.GetBrokerInfo(ctx, s.brokerID)
	}()
	go func() {
		defer wg.Done()
		workflow, errs[2] = s.client.GetOnboardingWorkflow(ctx)
	}()
	wg.Wait()

	if errs[0] == nil {
		s.state.SetBorrowerPipeline(pipeline)
	}
	if errs[1] == nil && broker != nil {
		s.state.SetBrokerInfo(*broker)
	}
	if errs[2] == nil && workflow != nil {
		s.state.SetOnboardingWorkflow(*workflow)
	}

	for i, what := range []string{"pipeline", "broker", "workflow"} {
		if errs[i] != nil {
			s.logger.Warn(ctx, "dashboard load failed", "part", what, "error", errs[i])
			return fmt.Errorf("load %s: %w", what, errs[i])
		}
	}

	return s.autoSelect(ctx)
}

func (s *dashboardService) SelectTab(ctx context.Context, tab models.TabType) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: unknown tab %q", common.ErrorValidation, tab)
	}
	s.state.SetActiveTab(tab)
	return s.autoSelect(ctx)
}

// SelectBorrower fetches the full record of id and selects it. On error the
// selection is unchanged.
func (s *dashboardService) SelectBorrower(ctx context.Context, id string) error {
	b, err := s.client.GetBorrowerDetail(ctx, id)
	if err != nil {
		return fmt.Errorf("borrower %s: %w", id, err)
	}
	s.state.SetSelectedBorrower(b)
	return nil
}

// autoSelect selects the first borrower of the active tab when nothing is
// selected yet. An existing selection is kept.
func (s *dashboardService) autoSelect(ctx context.Context) error {
	if s.state.SelectedBorrower() != nil {
		return nil
	}
	visible := s.state.VisibleBorrowers()
	if len(visible) == 0 {
		return nil
	}
	return s.SelectBorrower(ctx, visible[0].ID)
}
