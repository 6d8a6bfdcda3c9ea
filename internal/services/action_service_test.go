package services_test

import (
	"context"
	"testing"

	"ecoshare/internal/services"
	"ecoshare/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejectingValidator always returns a negative verdict, standing in for a
// stricter real verification service.
type rejectingValidator struct{}

func (rejectingValidator) Validate(ctx context.Context, kind services.ActionKind, action services.ActionContext) (services.ValidationResult, error) {
	return services.ValidationResult{
		IsValid: false,
		Message: "criteria not met",
	}, nil
}

func newActionService(t *testing.T, validator services.ActionValidator, authenticated bool) (*services.ActionService, *services.SessionService) {
	t.Helper()
	session := services.NewSessionService(storage.NewMemoryStore(), "test_jwt_secret")
	if authenticated {
		_, err := session.Register(validProfile())
		require.NoError(t, err)
	}
	emitter := services.NewStreakEmitter(session, services.LogNotifier{})
	actions := services.NewActionService(session, validator, services.NewStaticLocator(), emitter)
	return actions, session
}

func TestActionService_TreePlantingAwardsTwoStreaks(t *testing.T) {
	actions, session := newActionService(t, &services.MockAIValidator{Delay: 0}, true)

	outcome, err := actions.Submit(context.Background(), services.ActionTreePlanting, services.ActionContext{
		Description: "Planted a neem sapling",
		PhotoName:   "sapling.jpg",
	})
	require.NoError(t, err)
	assert.True(t, outcome.Result.IsValid)
	require.NotNil(t, outcome.Result.Metrics)
	assert.Equal(t, "0.01%", outcome.Result.Metrics.OxygenGained)
	assert.Equal(t, 2, outcome.StreaksAwarded)
	assert.Equal(t, 2, outcome.TotalStreaks)
	assert.Equal(t, 2, session.Streaks())
}

func TestActionService_WaterSavingAwardsOneStreak(t *testing.T) {
	actions, session := newActionService(t, &services.MockAIValidator{Delay: 0}, true)

	outcome, err := actions.Submit(context.Background(), services.ActionWaterSaving, services.ActionContext{
		PhotoName: "bucket.jpg",
	})
	require.NoError(t, err)
	assert.True(t, outcome.Result.IsValid)
	assert.Nil(t, outcome.Result.Metrics)
	assert.Equal(t, 1, outcome.StreaksAwarded)
	assert.Equal(t, 1, session.Streaks())
}

func TestActionService_RejectionAwardsNothing(t *testing.T) {
	actions, session := newActionService(t, rejectingValidator{}, true)

	outcome, err := actions.Submit(context.Background(), services.ActionTreePlanting, services.ActionContext{
		PhotoName: "blurry.jpg",
	})
	require.NoError(t, err, "a negative verdict is not an error")
	assert.False(t, outcome.Result.IsValid)
	assert.Equal(t, 0, outcome.StreaksAwarded)
	assert.Equal(t, 0, session.Streaks())
}

func TestActionService_RequiresSession(t *testing.T) {
	actions, _ := newActionService(t, &services.MockAIValidator{Delay: 0}, false)

	_, err := actions.Submit(context.Background(), services.ActionTreePlanting, services.ActionContext{
		PhotoName: "sapling.jpg",
	})
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
}

func TestActionService_UnknownKind(t *testing.T) {
	actions, _ := newActionService(t, &services.MockAIValidator{Delay: 0}, true)

	_, err := actions.Submit(context.Background(), services.ActionKind("Recycling"), services.ActionContext{
		PhotoName: "bin.jpg",
	})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestMockAIValidator_HonorsCancellation(t *testing.T) {
	validator := services.NewMockAIValidator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := validator.Validate(ctx, services.ActionTreePlanting, services.ActionContext{})
	assert.ErrorIs(t, err, context.Canceled)
}
