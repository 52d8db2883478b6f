package models

import (
	"errors"
	"slices"
)

// BrokerInfo is the read-only summary shown in the broker overview panel.
type BrokerInfo struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Deals        int    `json:"deals" yaml:"deals"`
	ApprovalRate string `json:"approval_rate" yaml:"approval_rate"`
	Pending      int    `json:"pending" yaml:"pending"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone        string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

func (b BrokerInfo) Validate() error {
	var errs []error
	if b.ID == "" {
		errs = append(errs, errors.New("broker id is required"))
	}
	if b.Name == "" {
		errs = append(errs, errors.New("broker name is required"))
	}
	if b.Deals < 0 || b.Pending < 0 {
		errs = append(errs, errors.New("broker counters must not be negative"))
	}
	return errors.Join(errs...)
}

// OnboardingWorkflow is the ordered list of onboarding steps.
type OnboardingWorkflow struct {
	Steps []string `json:"steps" yaml:"steps"`
}

func (w OnboardingWorkflow) Clone() OnboardingWorkflow {
	return OnboardingWorkflow{Steps: slices.Clone(w.Steps)}
}

func (w OnboardingWorkflow) Validate() error {
	if len(w.Steps) == 0 {
		return errors.New("onboarding workflow has no steps")
	}
	for _, s := range w.Steps {
		if s == "" {
			return errors.New("onboarding workflow has an empty step")
		}
	}
	return nil
}

// Theme is the light/dark presentation flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme; anything that is not dark becomes dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
