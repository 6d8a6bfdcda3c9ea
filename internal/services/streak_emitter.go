package services

import (
	"fmt"
	"log"
)

// StreakEmitter awards streaks through the session and emits exactly one
// transient notification per award. Notification delivery has no effect on
// state: a failed delivery is logged, never returned.
type StreakEmitter struct {
	session  *SessionService
	notifier Notifier
}

// NewStreakEmitter creates a new StreakEmitter.
func NewStreakEmitter(session *SessionService, notifier Notifier) *StreakEmitter {
	return &StreakEmitter{
		session:  session,
		notifier: notifier,
	}
}

// Award adds delta streaks to the current session and requests a single
// notification carrying the awarded amount. It returns the new total.
func (e *StreakEmitter) Award(delta int) (int, error) {
	total, err := e.session.AwardStreaks(delta)
	if err != nil {
		return 0, err
	}

	n := Notification{
		Message: fmt.Sprintf("You earned %d Streaks!", delta),
		Streaks: delta,
	}
	if user := e.session.Current(); user != nil {
		n.User = user.Username
	}
	if err := e.notifier.Notify(n); err != nil {
		log.Printf("Warning: failed to deliver streak notification: %v", err)
	}
	return total, nil
}
