package client

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var defaultFixture string

// Fixture is the canned data set served by MockClient.
type Fixture struct {
	Pipeline models.BorrowerPipeline   `yaml:"pipeline"`
	Brokers  []models.BrokerInfo       `yaml:"brokers"`
	Workflow models.OnboardingWorkflow `yaml:"workflow"`
}

// Validate checks the whole fixture and reports every problem it finds.
func (f *Fixture) Validate() error {
	var errs []error
	if err := f.Pipeline.Validate(); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]struct{}, len(f.Brokers))
	for _, b := range f.Brokers {
		if err := b.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, dup := seen[b.ID]; dup {
			errs = append(errs, fmt.Errorf("broker %q defined twice", b.ID))
		}
		seen[b.ID] = struct{}{}
	}
	if err := f.Workflow.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadFixture decodes YAML from r and validates it. Unknown fields are
// rejected. Every failure wraps ErrInvalidData.
func LoadFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode fixture: %v", ErrInvalidData, err)
	}
	if f.Pipeline.New == nil {
		f.Pipeline.New = []models.Borrower{}
	}
	if f.Pipeline.InReview == nil {
		f.Pipeline.InReview = []models.Borrower{}
	}
	if f.Pipeline.Approved == nil {
		f.Pipeline.Approved = []models.Borrower{}
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return &f, nil
}

// LoadFixtureFile reads a fixture from path.
func LoadFixtureFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer file.Close()

	return LoadFixture(file)
}

// DefaultFixture returns the embedded demo data set.
func DefaultFixture() *Fixture {
	f, err := LoadFixture(strings.NewReader(defaultFixture))
	if err != nil {
		panic(err)
	}
	return f
}
