package models

import (
	"errors"
	"fmt"
)

// TabType names a pipeline bucket.
type TabType string

const (
	TabNew      TabType = "new"
	TabInReview TabType = "in_review"
	TabApproved TabType = "approved"
)

// AllTabs lists the buckets in display order.
func AllTabs() []TabType {
	return []TabType{TabNew, TabInReview, TabApproved}
}

func (t TabType) Valid() bool {
	switch t {
	case TabNew, TabInReview, TabApproved:
		return true
	}
	return false
}

// Title is the label shown on the tab.
func (t TabType) Title() string {
	switch t {
	case TabNew:
		return "New"
	case TabInReview:
		return "In Review"
	case TabApproved:
		return "Approved"
	}
	return string(t)
}

// BorrowerPipeline groups borrowers into the three workflow buckets. A
// borrower id is expected in exactly one bucket; Validate enforces it.
type BorrowerPipeline struct {
	New      []Borrower `json:"new" yaml:"new"`
	InReview []Borrower `json:"in_review" yaml:"in_review"`
	Approved []Borrower `json:"approved" yaml:"approved"`
}

// EmptyPipeline returns a pipeline with three empty, non-nil buckets.
func EmptyPipeline() BorrowerPipeline {
	return BorrowerPipeline{New: []Borrower{}, InReview: []Borrower{}, Approved: []Borrower{}}
}

// Bucket returns the borrowers for tab; an unknown tab yields nil.
func (p BorrowerPipeline) Bucket(tab TabType) []Borrower {
	switch tab {
	case TabNew:
		return p.New
	case TabInReview:
		return p.InReview
	case TabApproved:
		return p.Approved
	}
	return nil
}

// Locate finds the bucket holding id.
func (p BorrowerPipeline) Locate(id string) (TabType, int, bool) {
	for _, tab := range AllTabs() {
		for i := range p.Bucket(tab) {
			if p.Bucket(tab)[i].ID == id {
				return tab, i, true
			}
		}
	}
	return "", -1, false
}

// Clone deep-copies all three buckets.
func (p BorrowerPipeline) Clone() BorrowerPipeline {
	cp := func(in []Borrower) []Borrower {
		out := make([]Borrower, len(in))
		for i := range in {
			out[i] = *in[i].Clone()
		}
		return out
	}
	return BorrowerPipeline{New: cp(p.New), InReview: cp(p.InReview), Approved: cp(p.Approved)}
}

// Validate checks every borrower and that no id appears twice across buckets.
func (p BorrowerPipeline) Validate() error {
	var errs []error
	seen := make(map[string]TabType)
	for _, tab := range AllTabs() {
		for i := range p.Bucket(tab) {
			b := &p.Bucket(tab)[i]
			if err := b.Validate(); err != nil {
				errs = append(errs, err)
			}
			if prev, dup := seen[b.ID]; dup && b.ID != "" {
				errs = append(errs, fmt.Errorf("borrower %q appears in both %s and %s", b.ID, prev, tab))
			}
			seen[b.ID] = tab
		}
	}
	return errors.Join(errs...)
}
