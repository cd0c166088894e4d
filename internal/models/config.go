package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PlannerConfig controls how hard the planner searches each turn
type PlannerConfig struct {
	// TurnBudget is the maximum number of simulated moves in one rollout
	TurnBudget int `yaml:"turn_budget"`

	// MaxRepeat caps the repeat count tried for repeatable spells
	MaxRepeat int `yaml:"max_repeat"`

	// MaxCastCandidates caps root cast candidates (0 = unlimited)
	MaxCastCandidates int `yaml:"max_cast_candidates"`

	// RestThreshold: a root rest is proposed when more spells than this are exhausted
	RestThreshold int `yaml:"rest_threshold"`

	// FreeLearnTurns is the number of opening turns where a free learn is proposed
	FreeLearnTurns int `yaml:"free_learn_turns"`

	// CeilingSlack is added to the market ceiling when judging wasted stock
	CeilingSlack int `yaml:"ceiling_slack"`

	// Deadline bounds one Plan call (0 = no deadline)
	Deadline time.Duration `yaml:"deadline"`
}

// DefaultPlannerConfig returns the tuning used when no config file is given
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		TurnBudget:        5,
		MaxRepeat:         5,
		MaxCastCandidates: 0,
		RestThreshold:     3,
		FreeLearnTurns:    1,
		CeilingSlack:      1,
		Deadline:          40 * time.Millisecond,
	}
}

// LoadPlannerConfig loads a YAML config file. Fields absent from the file
// keep their default value.
func LoadPlannerConfig(path string) (PlannerConfig, error) {
	config := DefaultPlannerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read planner config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("invalid planner config: %w", err)
	}

	return config, nil
}

// ValidatePlannerConfig checks that every limit is usable
func ValidatePlannerConfig(c PlannerConfig) error {
	var errs []error
	if c.TurnBudget < 1 {
		errs = append(errs, fmt.Errorf("turn_budget must be at least 1, got %d", c.TurnBudget))
	}
	if c.MaxRepeat < 1 {
		errs = append(errs, fmt.Errorf("max_repeat must be at least 1, got %d", c.MaxRepeat))
	}
	if c.MaxCastCandidates < 0 {
		errs = append(errs, fmt.Errorf("max_cast_candidates must not be negative, got %d", c.MaxCastCandidates))
	}
	if c.RestThreshold < 0 {
		errs = append(errs, fmt.Errorf("rest_threshold must not be negative, got %d", c.RestThreshold))
	}
	if c.FreeLearnTurns < 0 {
		errs = append(errs, fmt.Errorf("free_learn_turns must not be negative, got %d", c.FreeLearnTurns))
	}
	if c.CeilingSlack < 0 {
		errs = append(errs, fmt.Errorf("ceiling_slack must not be negative, got %d", c.CeilingSlack))
	}
	if c.Deadline < 0 {
		errs = append(errs, fmt.Errorf("deadline must not be negative, got %s", c.Deadline))
	}
	return errors.Join(errs...)
}
