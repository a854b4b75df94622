package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ricgcw/chms-backend/internal/models"
	"github.com/ricgcw/chms-backend/pkg/logger"
)

const (
	// reminders are created this many days before the birthday
	reminderLeadDays = 14

	reminderEventTime = "00:00"

	// matches the SPA's Date.toISOString output so user-created and
	// job-created events share one date format
	reminderDateFormat = "2006-01-02T15:04:05.000Z"
)

type reminderMemberStore interface {
	List(ctx context.Context) ([]*models.Member, error)
}

type reminderEventStore interface {
	ExistsByNameAndDate(ctx context.Context, name, date string) (bool, error)
	Create(ctx context.Context, ev *models.Event) error
}

// ReminderService creates a calendar event for every member whose
// birthday falls exactly reminderLeadDays from today. Runs are
// idempotent: an event is only inserted when no event with the same
// name and date exists.
type ReminderService struct {
	members  reminderMemberStore
	events   reminderEventStore
	location string
	now      func() time.Time
}

func NewReminderService(members reminderMemberStore, events reminderEventStore, location string) *ReminderService {
	return &ReminderService{
		members:  members,
		events:   events,
		location: location,
		now:      time.Now,
	}
}

type ReminderRunResult struct {
	Scanned int
	Matched int
	Created int
	Skipped int
	Failed  int
}

// Run executes one pass. A failed member read aborts the run; a failure
// on a single member's event is logged and counted, and the remaining
// members are still processed.
func (s *ReminderService) Run(ctx context.Context) (ReminderRunResult, error) {
	log := logger.FromContext(ctx)
	var result ReminderRunResult

	target := midnightUTC(s.now().UTC().AddDate(0, 0, reminderLeadDays))

	members, err := s.members.List(ctx)
	if err != nil {
		return result, err
	}
	result.Scanned = len(members)

	for _, m := range members {
		dob, ok := parseDateOfBirth(m.DateOfBirth)
		if !ok {
			continue
		}
		// recurring-date match: month and day only, year ignored.
		// Feb 29 birthdays therefore only match when the target
		// date itself is Feb 29.
		if dob.Month() != target.Month() || dob.Day() != target.Day() {
			continue
		}
		result.Matched++

		created, err := s.ensureEvent(ctx, m, target)
		switch {
		case err != nil:
			result.Failed++
			log.Error("birthday reminder failed", "member", m.Name, "error", err)
		case created:
			result.Created++
			log.Info("birthday reminder created", "member", m.Name, "date", target.Format(reminderDateFormat))
		default:
			result.Skipped++
		}
	}

	log.Info("birthday reminder run complete",
		"scanned", result.Scanned,
		"matched", result.Matched,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

func (s *ReminderService) ensureEvent(ctx context.Context, m *models.Member, target time.Time) (bool, error) {
	name := fmt.Sprintf("🎂 Birthday: %s", m.Name)
	date := target.Format(reminderDateFormat)

	exists, err := s.events.ExistsByNameAndDate(ctx, name, date)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	ev := &models.Event{
		Name:        name,
		Date:        date,
		Time:        reminderEventTime,
		Location:    s.location,
		IsOnline:    false,
		Description: fmt.Sprintf("Join us in celebrating %s's birthday.", m.Name),
		Branch:      m.Branch,
	}
	if err := s.events.Create(ctx, ev); err != nil {
		return false, err
	}
	return true, nil
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDateOfBirth accepts both plain dates and full ISO-8601 strings;
// member records carry whichever the registration form submitted.
func parseDateOfBirth(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
