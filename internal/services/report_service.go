package services

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ReportService simulates sending a geo-tagged environmental report to an
// authority by email. The send is an in-process stub with artificial delay;
// the confirmation is delivered as a transient notification.
type ReportService struct {
	session  *SessionService
	locator  Locator
	notifier Notifier

	// Delay is the simulated send latency.
	Delay time.Duration
}

// NewReportService creates a new ReportService with the default simulated
// latency.
func NewReportService(session *SessionService, locator Locator, notifier Notifier) *ReportService {
	return &ReportService{
		session:  session,
		locator:  locator,
		notifier: notifier,
		Delay:    1500 * time.Millisecond,
	}
}

// Send files a report to recipientEmail. It requires an active session and
// both a recipient and a description.
func (s *ReportService) Send(ctx context.Context, recipientEmail, description string) error {
	if s.session.Current() == nil {
		return ErrNotAuthenticated
	}
	if recipientEmail == "" || description == "" {
		return fmt.Errorf("%w: recipient email and description are required", ErrValidation)
	}

	locate(ctx, s.locator)
	if err := sleep(ctx, s.Delay); err != nil {
		return err
	}

	n := Notification{
		Message: fmt.Sprintf("Report sent to %s!", recipientEmail),
		User:    s.session.Current().Username,
	}
	if err := s.notifier.Notify(n); err != nil {
		log.Printf("Warning: failed to deliver report confirmation: %v", err)
	}
	return nil
}
