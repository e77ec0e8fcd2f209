package routing

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tiers describes the two models and the estimate that separates them.
type Tiers struct {
	Small     string `yaml:"small_model"`
	Large     string `yaml:"large_model"`
	Threshold int    `yaml:"token_threshold"`
}

// Decision is the outcome of routing one estimate.
type Decision struct {
	Model    string
	Estimate int
	Large    bool
}

// Router picks a model tier from a token estimate.
type Router struct {
	tiers Tiers
}

func New(t Tiers) (*Router, error) {
	if t.Small == "" || t.Large == "" {
		return nil, errors.New("routing: small and large models must be set")
	}
	if t.Threshold < 0 {
		return nil, fmt.Errorf("routing: negative token threshold %d", t.Threshold)
	}
	return &Router{tiers: t}, nil
}

// Select returns large when estimate is strictly greater than threshold.
func Select(estimate, threshold int, small, large string) string {
	if estimate > threshold {
		return large
	}
	return small
}

// Route selects the model for estimate.
func (r *Router) Route(estimate int) Decision {
	m := Select(estimate, r.tiers.Threshold, r.tiers.Small, r.tiers.Large)
	return Decision{Model: m, Estimate: estimate, Large: estimate > r.tiers.Threshold}
}

func (r *Router) Tiers() Tiers {
	return r.tiers
}

// LoadTiers reads a YAML model catalog. Fields missing from the file keep
// the values in base.
func LoadTiers(path string, base Tiers) (Tiers, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read models file: %w", err)
	}
	t := base
	if err := yaml.Unmarshal(b, &t); err != nil {
		return base, fmt.Errorf("parse models file %s: %w", path, err)
	}
	return t, nil
}
