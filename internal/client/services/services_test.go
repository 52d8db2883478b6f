package services

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/loandesk/internal/client/auth"
	"github.com/dmitrijs2005/loandesk/internal/client/client"
	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/client/session"
	"github.com/dmitrijs2005/loandesk/internal/client/store"
	"github.com/dmitrijs2005/loandesk/internal/logging"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.New(logging.FormatSlog, "error", &bytes.Buffer{})
}

func newAuth(t *testing.T) (AuthService, *session.Store) {
	t.Helper()
	tokens := auth.NewTokener([]byte("test-secret"), time.Hour)
	s := session.NewStore(tokens)
	return NewAuthService(s, tokens, testLogger()), s
}

func newDashboard(t *testing.T, c client.Client) (DashboardService, *store.Store) {
	t.Helper()
	st := store.NewStore(c, testLogger(), models.ThemeLight, 0)
	return NewDashboardService(c, st, "1", testLogger()), st
}

func mockClient() *client.MockClient {
	return client.NewMockClient(client.DefaultFixture(), 0)
}

// ---- fake client ----

// fakeClient wraps a MockClient and lets tests inject failures and count calls.
type fakeClient struct {
	*client.MockClient

	mu          sync.Mutex
	PipelineErr error
	BrokerErr   error
	DetailCalls []string
}

func (f *fakeClient) GetBorrowerPipeline(ctx context.Context) (models.BorrowerPipeline, error) {
	if f.PipelineErr != nil {
		return models.BorrowerPipeline{}, f.PipelineErr
	}
	return f.MockClient.GetBorrowerPipeline(ctx)
}

func (f *fakeClient) GetBrokerInfo(ctx context.Context, id string) (*models.BrokerInfo, error) {
	if f.BrokerErr != nil {
		return nil, f.BrokerErr
	}
	return f.MockClient.GetBrokerInfo(ctx, id)
}

func (f *fakeClient) GetBorrowerDetail(ctx context.Context, id string) (*models.Borrower, error) {
	f.mu.Lock()
	f.DetailCalls = append(f.DetailCalls, id)
	f.mu.Unlock()
	return f.MockClient.GetBorrowerDetail(ctx, id)
}

// ---- fake runner ----

type fakeRunner struct {
	calls int
}

func (r *fakeRunner) Run(_ context.Context, action models.Action, id string) (models.Outcome, error) {
	r.calls++
	return models.Outcome{Action: action, BorrowerID: id, Success: true}, nil
}

var errBoom = errors.New("boom")
