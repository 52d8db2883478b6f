package models

import (
	"errors"
	"fmt"
	"slices"
)

// Status is the workflow status shown on a borrower card.
type Status string

const (
	StatusNew      Status = "New"
	StatusInReview Status = "In Review"
	StatusApproved Status = "Approved"
	StatusRenew    Status = "Renew"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInReview, StatusApproved, StatusRenew:
		return true
	}
	return false
}

// Borrower is a loan applicant. Optional fields are pointers so that "unknown"
// and zero can be told apart.
type Borrower struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	LoanType      string   `json:"loan_type" yaml:"loan_type"`
	Amount        float64  `json:"amount" yaml:"amount"`
	Status        Status   `json:"status" yaml:"status"`
	Email         string   `json:"email,omitempty" yaml:"email,omitempty"`
	Phone         string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Employment    string   `json:"employment,omitempty" yaml:"employment,omitempty"`
	Income        *float64 `json:"income,omitempty" yaml:"income,omitempty"`
	ExistingLoan  *float64 `json:"existing_loan,omitempty" yaml:"existing_loan,omitempty"`
	CreditScore   *int     `json:"credit_score,omitempty" yaml:"credit_score,omitempty"`
	SourceOfFunds string   `json:"source_of_funds,omitempty" yaml:"source_of_funds,omitempty"`
	RiskSignal    *string  `json:"risk_signal,omitempty" yaml:"risk_signal,omitempty"`
	AIFlags       []string `json:"ai_flags,omitempty" yaml:"ai_flags,omitempty"`
}

// Clone returns a deep copy, so that callers holding the copy cannot mutate
// the source record through shared pointers or slices.
func (b *Borrower) Clone() *Borrower {
	if b == nil {
		return nil
	}
	c := *b
	if b.Income != nil {
		v := *b.Income
		c.Income = &v
	}
	if b.ExistingLoan != nil {
		v := *b.ExistingLoan
		c.ExistingLoan = &v
	}
	if b.CreditScore != nil {
		v := *b.CreditScore
		c.CreditScore = &v
	}
	if b.RiskSignal != nil {
		v := *b.RiskSignal
		c.RiskSignal = &v
	}
	c.AIFlags = slices.Clone(b.AIFlags)
	return &c
}

// Validate checks the fields a borrower record must carry.
func (b *Borrower) Validate() error {
	var errs []error
	if b.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if b.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if b.LoanType == "" {
		errs = append(errs, errors.New("loan_type is required"))
	}
	if b.Amount < 0 {
		errs = append(errs, fmt.Errorf("amount must not be negative, got %v", b.Amount))
	}
	if !b.Status.Valid() {
		errs = append(errs, fmt.Errorf("unknown status %q", b.Status))
	}
	if b.Income != nil && *b.Income < 0 {
		errs = append(errs, errors.New("income must not be negative"))
	}
	if b.ExistingLoan != nil && *b.ExistingLoan < 0 {
		errs = append(errs, errors.New("existing_loan must not be negative"))
	}
	if b.CreditScore != nil && (*b.CreditScore < 300 || *b.CreditScore > 850) {
		errs = append(errs, fmt.Errorf("credit_score out of range, got %d", *b.CreditScore))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("borrower %q: %w", b.ID, err)
	}
	return nil
}

// HasFlag reports whether flag is among the borrower's AI flags.
func (b *Borrower) HasFlag(flag string) bool {
	return slices.Contains(b.AIFlags, flag)
}
