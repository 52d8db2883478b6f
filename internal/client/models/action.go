package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/loandesk/internal/common"
)

// Action is a workflow command triggered against a borrower.
type Action string

const (
	ActionRequestDocuments    Action = "request_documents"
	ActionSendToValuer        Action = "send_to_valuer"
	ActionApproveLoan         Action = "approve_loan"
	ActionEscalateToCommittee Action = "escalate_to_committee"
)

// AllActions lists actions in the order the detail panel shows them.
func AllActions() []Action {
	return []Action{ActionRequestDocuments, ActionSendToValuer, ActionApproveLoan, ActionEscalateToCommittee}
}

// Label is the human-readable button caption, also used in diagnostic records.
func (a Action) Label() string {
	switch a {
	case ActionRequestDocuments:
		return "Request Documents"
	case ActionSendToValuer:
		return "Send to Valuer"
	case ActionApproveLoan:
		return "Approve Loan"
	case ActionEscalateToCommittee:
		return "Escalate to Credit Committee"
	}
	return string(a)
}

func (a Action) Valid() bool {
	switch a {
	case ActionRequestDocuments, ActionSendToValuer, ActionApproveLoan, ActionEscalateToCommittee:
		return true
	}
	return false
}

// ParseAction accepts the action identifier or one of the short command
// aliases used by the terminal client (docs, valuer, approve, escalate).
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "docs", string(ActionRequestDocuments):
		return ActionRequestDocuments, nil
	case "valuer", string(ActionSendToValuer):
		return ActionSendToValuer, nil
	case "approve", string(ActionApproveLoan):
		return ActionApproveLoan, nil
	case "escalate", string(ActionEscalateToCommittee):
		return ActionEscalateToCommittee, nil
	}
	return "", fmt.Errorf("%w: unknown action %q", common.ErrorValidation, s)
}

// Outcome is the explicit result of a workflow action. Borrower holds the
// record as it stands after the action when Success is true.
type Outcome struct {
	Action     Action
	BorrowerID string
	Success    bool
	Reason     string
	Borrower   *Borrower
}
