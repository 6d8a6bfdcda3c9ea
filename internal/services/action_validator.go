package services

import (
	"context"
	"time"
)

// ActionKind identifies a submittable eco-action.
type ActionKind string

const (
	ActionTreePlanting ActionKind = "TreePlanting"
	ActionWaterSaving  ActionKind = "WaterSaving"
)

// ActionContext carries the evidence submitted with an eco-action.
type ActionContext struct {
	Description string
	PhotoName   string
	Location    Coordinates
}

// EcoMetrics are the environmental estimates reported for a validated
// tree-planting action.
type EcoMetrics struct {
	OxygenGained     string `json:"oxygenGained"`
	CO2Reduced       string `json:"co2Reduced"`
	LandslideReduced string `json:"landslideReduced"`
}

// ValidationResult is the verdict of an eco-action validation. A rejected
// action is a normal negative result, not an error.
type ValidationResult struct {
	IsValid bool        `json:"isValid"`
	Message string      `json:"message"`
	Metrics *EcoMetrics `json:"metrics,omitempty"`
}

// ActionValidator verifies that submitted evidence shows a genuine eco-action.
// The shipped implementation is a stand-in for a real image and geo-tag
// verification service; callers must treat it as pluggable.
type ActionValidator interface {
	Validate(ctx context.Context, kind ActionKind, action ActionContext) (ValidationResult, error)
}

// StreaksFor returns the streaks awarded for a validated action.
func StreaksFor(kind ActionKind) int {
	if kind == ActionTreePlanting {
		return 2
	}
	return 1
}

// MockAIValidator simulates the AI verification service: it waits a fixed
// delay to mimic network latency and returns a canned successful verdict.
type MockAIValidator struct {
	Delay time.Duration
}

// NewMockAIValidator creates a MockAIValidator with the default delay.
func NewMockAIValidator() *MockAIValidator {
	return &MockAIValidator{Delay: 2 * time.Second}
}

// Validate returns a canned verdict for the given action kind after the
// configured delay. The delay honors context cancellation.
func (v *MockAIValidator) Validate(ctx context.Context, kind ActionKind, action ActionContext) (ValidationResult, error) {
	if err := sleep(ctx, v.Delay); err != nil {
		return ValidationResult{}, err
	}

	switch kind {
	case ActionTreePlanting:
		return ValidationResult{
			IsValid: true,
			Message: "Validation Success!",
			Metrics: &EcoMetrics{
				OxygenGained:     "0.01%",
				CO2Reduced:       "0.05%",
				LandslideReduced: "0.2%",
			},
		}, nil
	case ActionWaterSaving:
		return ValidationResult{
			IsValid: true,
			Message: "Confirmed: Water saving action/sequence identified!",
		}, nil
	}

	return ValidationResult{
		IsValid: false,
		Message: "AI validation failed. Photo content or geo-tag criteria not met.",
	}, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
