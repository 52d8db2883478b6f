package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
)

// EscalationFlag is appended to a borrower's AI flags on escalation.
const EscalationFlag = "Escalated to Credit Committee"

// MockClient serves a Fixture from memory. It is safe for concurrent use.
type MockClient struct {
	mu       sync.RWMutex
	pipeline models.BorrowerPipeline
	brokers  map[string]models.BrokerInfo
	workflow models.OnboardingWorkflow
	latency  time.Duration
}

var _ Client = (*MockClient)(nil)

// NewMockClient copies f so later changes to it do not leak into the client.
// Every call waits latency before answering.
func NewMockClient(f *Fixture, latency time.Duration) *MockClient {
	brokers := make(map[string]models.BrokerInfo, len(f.Brokers))
	for _, b := range f.Brokers {
		brokers[b.ID] = b
	}
	return &MockClient{
		pipeline: f.Pipeline.Clone(),
		brokers:  brokers,
		workflow: f.Workflow.Clone(),
		latency:  latency,
	}
}

func (c *MockClient) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func summary(b models.Borrower) models.Borrower {
	return models.Borrower{ID: b.ID, Name: b.Name, LoanType: b.LoanType, Amount: b.Amount, Status: b.Status}
}

// GetBorrowerPipeline returns the three buckets with summary records only.
func (c *MockClient) GetBorrowerPipeline(ctx context.Context) (models.BorrowerPipeline, error) {
	if err := c.wait(ctx); err != nil {
		return models.BorrowerPipeline{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := models.EmptyPipeline()
	for _, b := range c.pipeline.New {
		out.New = append(out.New, summary(b))
	}
	for _, b := range c.pipeline.InReview {
		out.InReview = append(out.InReview, summary(b))
	}
	for _, b := range c.pipeline.Approved {
		out.Approved = append(out.Approved, summary(b))
	}
	return out, nil
}

func (c *MockClient) GetBorrowerDetail(ctx context.Context, id string) (*models.Borrower, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	tab, idx, found := c.pipeline.Locate(id)
	if !found {
		return nil, fmt.Errorf("borrower %q: %w", id, ErrNotFound)
	}
	return c.pipeline.Bucket(tab)[idx].Clone(), nil
}

func (c *MockClient) GetBrokerInfo(ctx context.Context, id string) (*models.BrokerInfo, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.brokers[id]
	if !ok {
		return nil, fmt.Errorf("broker %q: %w", id, ErrNotFound)
	}
	return &b, nil
}

func (c *MockClient) GetOnboardingWorkflow(ctx context.Context) (*models.OnboardingWorkflow, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	w := c.workflow.Clone()
	return &w, nil
}

// ApplyAction runs a workflow command and moves the borrower to the bucket
// the command leads to:
//
//	request documents, send to valuer, escalate: new -> in_review
//	approve:                                     new | in_review -> approved
//
// The status only changes when the bucket does, so a "Renew" borrower under
// review keeps its status. Acting on an approved borrower is an
// ErrInvalidTransition.
func (c *MockClient) ApplyAction(ctx context.Context, action models.Action, borrowerID string) (*models.Borrower, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%q: %w", action, ErrUnknownAction)
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	from, idx, found := c.pipeline.Locate(borrowerID)
	if !found {
		return nil, fmt.Errorf("borrower %q: %w", borrowerID, ErrNotFound)
	}
	if from == models.TabApproved {
		return nil, fmt.Errorf("%s on approved borrower %q: %w", action.Label(), borrowerID, ErrInvalidTransition)
	}

	b := *c.pipeline.Bucket(from)[idx].Clone()

	to, status := models.TabInReview, models.StatusInReview
	if action == models.ActionApproveLoan {
		to, status = models.TabApproved, models.StatusApproved
	}
	if from != to {
		b.Status = status
	}
	if action == models.ActionEscalateToCommittee && !b.HasFlag(EscalationFlag) {
		b.AIFlags = append(b.AIFlags, EscalationFlag)
	}

	if from == to {
		c.setBucket(from, replaceAt(c.pipeline.Bucket(from), idx, b))
	} else {
		c.setBucket(from, removeAt(c.pipeline.Bucket(from), idx))
		c.setBucket(to, append(c.pipeline.Bucket(to), b))
	}
	return b.Clone(), nil
}

func (c *MockClient) setBucket(tab models.TabType, bucket []models.Borrower) {
	switch tab {
	case models.TabNew:
		c.pipeline.New = bucket
	case models.TabInReview:
		c.pipeline.InReview = bucket
	case models.TabApproved:
		c.pipeline.Approved = bucket
	}
}

func removeAt(in []models.Borrower, i int) []models.Borrower {
	out := make([]models.Borrower, 0, len(in)-1)
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...)
}

func replaceAt(in []models.Borrower, i int, b models.Borrower) []models.Borrower {
	out := make([]models.Borrower, len(in))
	copy(out, in)
	out[i] = b
	return out
}
