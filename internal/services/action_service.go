package services

import (
	"context"
	"fmt"
)

// ActionOutcome is the result of submitting an eco-action: the validator's
// verdict plus any streaks awarded on success.
type ActionOutcome struct {
	Result         ValidationResult `json:"result"`
	StreaksAwarded int              `json:"streaksAwarded"`
	TotalStreaks   int              `json:"totalStreaks"`
}

// ActionService handles eco-action submissions: it requires an active
// session, acquires the device position, runs the pluggable validator and
// awards streaks for validated actions.
type ActionService struct {
	session   *SessionService
	validator ActionValidator
	locator   Locator
	emitter   *StreakEmitter
}

// NewActionService creates a new ActionService.
func NewActionService(session *SessionService, validator ActionValidator, locator Locator, emitter *StreakEmitter) *ActionService {
	return &ActionService{
		session:   session,
		validator: validator,
		locator:   locator,
		emitter:   emitter,
	}
}

// Submit validates an eco-action and, when the verdict is positive, awards
// the streaks for its kind (2 for tree planting, 1 for water saving). A
// rejected action returns a zero-award outcome without an error.
func (s *ActionService) Submit(ctx context.Context, kind ActionKind, action ActionContext) (*ActionOutcome, error) {
	if s.session.Current() == nil {
		return nil, ErrNotAuthenticated
	}
	if kind != ActionTreePlanting && kind != ActionWaterSaving {
		return nil, fmt.Errorf("%w: unknown action kind %q", ErrValidation, kind)
	}

	action.Location = locate(ctx, s.locator)

	result, err := s.validator.Validate(ctx, kind, action)
	if err != nil {
		return nil, fmt.Errorf("validation did not complete: %w", err)
	}

	outcome := &ActionOutcome{Result: result, TotalStreaks: s.session.Streaks()}
	if !result.IsValid {
		return outcome, nil
	}

	awarded := StreaksFor(kind)
	total, err := s.emitter.Award(awarded)
	if err != nil {
		return nil, err
	}
	outcome.StreaksAwarded = awarded
	outcome.TotalStreaks = total
	return outcome, nil
}
