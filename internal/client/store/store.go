// Package store holds the dashboard's application state: the borrower
// pipeline, the active tab, the selected borrower, the broker overview and the
// theme. Setters are plain last-write-wins replacements; the workflow actions
// go through the data source and report an explicit outcome.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/loandesk/internal/client/client"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/logging"
)

// ThemeObserver is notified after every theme change.
type ThemeObserver interface {
	ThemeChanged(theme models.Theme)
}

// ThemeObserverFunc adapts a function to ThemeObserver.
type ThemeObserverFunc func(models.Theme)

func (f ThemeObserverFunc) ThemeChanged(t models.Theme) { f(t) }

// Store is safe for concurrent use. Getters return copies.
type Store struct {
	client        client.Client
	logger        logging.Logger
	actionLatency time.Duration

	mu        sync.RWMutex
	theme     models.Theme
	pipeline  models.BorrowerPipeline
	selected  *models.Borrower
	activeTab models.TabType
	broker    *models.BrokerInfo
	workflow  *models.OnboardingWorkflow
	observers []ThemeObserver
}

// NewStore returns a store with the default state: tab "new", empty buckets,
// nothing selected, no broker data. Workflow actions wait actionLatency before
// reaching c.
func NewStore(c client.Client, logger logging.Logger, theme models.Theme, actionLatency time.Duration) *Store {
	if theme != models.ThemeDark {
		theme = models.ThemeLight
	}
	return &Store{
		client:        c,
		logger:        logger,
		actionLatency: actionLatency,
		theme:         theme,
		pipeline:      models.EmptyPipeline(),
		activeTab:     models.TabNew,
	}
}

// Reset restores the default state but keeps the theme and observers.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipeline = models.EmptyPipeline()
	s.selected = nil
	s.activeTab = models.TabNew
	s.broker = nil
	s.workflow = nil
}

func (s *Store) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Subscribe registers o for theme changes and immediately tells it the
// current theme.
func (s *Store) Subscribe(o ThemeObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	theme := s.theme
	s.mu.Unlock()

	o.ThemeChanged(theme)
}

// ToggleTheme flips light/dark, notifies observers outside the lock and
// returns the new theme.
func (s *Store) ToggleTheme() models.Theme {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	theme := s.theme
	observers := append([]ThemeObserver(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		o.ThemeChanged(theme)
	}
	return theme
}

func (s *Store) ActiveTab() models.TabType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

func (s *Store) SetActiveTab(tab models.TabType) {
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
}

// SelectedBorrower returns a copy of the selection, or nil.
func (s *Store) SelectedBorrower() *models.Borrower {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.Clone()
}

// SetSelectedBorrower replaces the selection; nil clears it.
func (s *Store) SetSelectedBorrower(b *models.Borrower) {
	c := b.Clone()
	s.mu.Lock()
	s.selected = c
	s.mu.Unlock()
}

func (s *Store) BorrowerPipeline() models.BorrowerPipeline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipeline.Clone()
}

func (s *Store) SetBorrowerPipeline(p models.BorrowerPipeline) {
	c := p.Clone()
	s.mu.Lock()
	s.pipeline = c
	s.mu.Unlock()
}

// VisibleBorrowers is the bucket selected by the active tab.
func (s *Store) VisibleBorrowers() []models.Borrower {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipeline.Clone().Bucket(s.activeTab)
}

func (s *Store) BrokerInfo() *models.BrokerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.broker == nil {
		return nil
	}
	b := *s.broker
	return &b
}

func (s *Store) SetBrokerInfo(info models.BrokerInfo) {
	s.mu.Lock()
	s.broker = &info
	s.mu.Unlock()
}

func (s *Store) OnboardingWorkflow() *models.OnboardingWorkflow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.workflow == nil {
		return nil
	}
	w := s.workflow.Clone()
	return &w
}

func (s *Store) SetOnboardingWorkflow(w models.OnboardingWorkflow) {
	c := w.Clone()
	s.mu.Lock()
	s.workflow = &c
	s.mu.Unlock()
}

func (s *Store) RequestDocuments(ctx context.Context, borrowerID string) (models.Outcome, error) {
	return s.Run(ctx, models.ActionRequestDocuments, borrowerID)
}

func (s *Store) SendToValuer(ctx context.Context, borrowerID string) (models.Outcome, error) {
	return s.Run(ctx, models.ActionSendToValuer, borrowerID)
}

func (s *Store) ApproveLoan(ctx context.Context, borrowerID string) (models.Outcome, error) {
	return s.Run(ctx, models.ActionApproveLoan, borrowerID)
}

func (s *Store) EscalateToCommittee(ctx context.Context, borrowerID string) (models.Outcome, error) {
	return s.Run(ctx, models.ActionEscalateToCommittee, borrowerID)
}

// Run emits one diagnostic record for the action, waits the action latency,
// then asks the data source to apply it. On success the pipeline is re-fetched
// so bucket membership follows the data source, and a selection of the same
// borrower is replaced with the updated record.
//
// A failed action returns an Outcome with Success false and the reason, and a
// non-nil error wrapping the cause.
func (s *Store) Run(ctx context.Context, action models.Action, borrowerID string) (models.Outcome, error) {
	out := models.Outcome{Action: action, BorrowerID: borrowerID}
	s.logger.Info(ctx, "workflow action", "action", action.Label(), "borrower_id", borrowerID)

	fail := func(err error) (models.Outcome, error) {
		out.Reason = err.Error()
		return out, fmt.Errorf("%s for borrower %s: %w", action.Label(), borrowerID, err)
	}

	if err := sleep(ctx, s.actionLatency); err != nil {
		return fail(err)
	}

	b, err := s.client.ApplyAction(ctx, action, borrowerID)
	if err != nil {
		return fail(err)
	}
	out.Success = true
	out.Borrower = b.Clone()

	p, err := s.client.GetBorrowerPipeline(ctx)
	if err != nil {
		s.logger.Warn(ctx, "pipeline refresh failed", "action", action.Label(), "borrower_id", borrowerID, "error", err)
	} else {
		s.SetBorrowerPipeline(p)
	}

	s.mu.Lock()
	if s.selected != nil && s.selected.ID == borrowerID {
		s.selected = b.Clone()
	}
	s.mu.Unlock()

	return out, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
