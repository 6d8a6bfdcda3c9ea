package services_test

import (
	"testing"

	"ecoshare/internal/services"
	"ecoshare/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNotifier is a mock implementation of services.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(n services.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func TestStreakEmitter_AwardNotifiesExactlyOnce(t *testing.T) {
	session := services.NewSessionService(storage.NewMemoryStore(), "test_jwt_secret")
	_, err := session.Register(validProfile())
	require.NoError(t, err)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.MatchedBy(func(n services.Notification) bool {
		return n.Streaks == 5 && n.User == "Alice"
	})).Return(nil).Once()

	emitter := services.NewStreakEmitter(session, notifier)
	total, err := emitter.Award(5)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, 5, session.Streaks())

	notifier.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestStreakEmitter_NotifyFailureDoesNotAffectState(t *testing.T) {
	session := services.NewSessionService(storage.NewMemoryStore(), "test_jwt_secret")
	_, err := session.Register(validProfile())
	require.NoError(t, err)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything).Return(assert.AnError).Once()

	emitter := services.NewStreakEmitter(session, notifier)
	total, err := emitter.Award(2)
	require.NoError(t, err, "delivery is fire-and-forget")
	assert.Equal(t, 2, total)
	notifier.AssertExpectations(t)
}

func TestStreakEmitter_NoSessionNoNotification(t *testing.T) {
	session := services.NewSessionService(storage.NewMemoryStore(), "test_jwt_secret")

	notifier := new(MockNotifier)
	emitter := services.NewStreakEmitter(session, notifier)

	_, err := emitter.Award(5)
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	notifier.AssertNotCalled(t, "Notify", mock.Anything)
}
