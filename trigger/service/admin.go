package service

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/triggerkit/scheduled-webhooks/plans"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

const defaultLogsLimit = 50

// CreateTrigger validates the input against the organization's plan limits
// and persists a new trigger. The plan checks mirror the ones the scheduling
// pass performs so an invalid trigger is rejected before it ever reaches the
// scheduler.
func (s *TriggerService) CreateTrigger(ctx context.Context, orgID string, input *TriggerInput) (*domain.Trigger, error) {
	org, err := s.orgs.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}

	limits := plans.LimitsFor(org.PlanID)

	if err := validateInput(input, limits); err != nil {
		return nil, err
	}

	active, err := s.triggers.GetActiveTriggers(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if len(active) >= limits.MaxTriggers {
		return nil, ErrTriggerLimitReached
	}

	now := s.now().UTC()

	trigger := &domain.Trigger{
		OrganizationID:    orgID,
		GroupID:           input.GroupID,
		Name:              input.Name,
		URL:               input.URL,
		HTTPMethod:        normalizeMethod(input.HTTPMethod),
		Payload:           input.Payload,
		TimeoutMs:         input.TimeoutMs,
		Schedule:          input.Schedule,
		Status:            domain.TriggerStatusActive,
		RunCount:          0,
		ExecutionLimit:    input.ExecutionLimit,
		ArchiveOnComplete: input.ArchiveOnComplete,
		RecentLogs:        []domain.ExecutionLog{},
		HistoryMigrated:   true,
	}

	trigger.NextRun = initialNextRun(input.Schedule, org.Location(), now)

	id, err := s.triggers.Create(ctx, orgID, trigger)
	if err != nil {
		return nil, err
	}

	trigger.ID = id

	s.loggerProvider(ctx).Infof("org %s: created trigger %s (%s)", orgID, id, trigger.Name)

	return trigger, nil
}

// UpdateTrigger applies the input to an existing trigger. Terminal triggers
// are immutable. A schedule change re-anchors the next run at "now".
func (s *TriggerService) UpdateTrigger(ctx context.Context, orgID, triggerID string, input *TriggerInput) (*domain.Trigger, error) {
	org, err := s.orgs.Get(ctx, orgID)
	if err != nil {
		return nil, err
	}

	trigger, err := s.triggers.Get(ctx, orgID, triggerID)
	if err != nil {
		return nil, err
	}

	if trigger.Status.IsTerminal() {
		return nil, ErrTriggerTerminal
	}

	limits := plans.LimitsFor(org.PlanID)

	if err := validateInput(input, limits); err != nil {
		return nil, err
	}

	scheduleChanged := input.Schedule != trigger.Schedule

	trigger.GroupID = input.GroupID
	trigger.Name = input.Name
	trigger.URL = input.URL
	trigger.HTTPMethod = normalizeMethod(input.HTTPMethod)
	trigger.Payload = input.Payload
	trigger.TimeoutMs = input.TimeoutMs
	trigger.Schedule = input.Schedule
	trigger.ExecutionLimit = input.ExecutionLimit
	trigger.ArchiveOnComplete = input.ArchiveOnComplete

	if scheduleChanged {
		trigger.NextRun = initialNextRun(input.Schedule, org.Location(), s.now().UTC())
	}

	if err := s.triggers.Update(ctx, orgID, trigger); err != nil {
		return nil, err
	}

	return trigger, nil
}

func (s *TriggerService) GetTrigger(ctx context.Context, orgID, triggerID string) (*domain.Trigger, error) {
	return s.triggers.Get(ctx, orgID, triggerID)
}

func (s *TriggerService) ListTriggers(ctx context.Context, orgID string) ([]*domain.Trigger, error) {
	return s.triggers.List(ctx, orgID)
}

func (s *TriggerService) DeleteTrigger(ctx context.Context, orgID, triggerID string) error {
	return s.triggers.Delete(ctx, orgID, triggerID)
}

// PauseTrigger transitions an active trigger to paused. Anything else is not
// pausable.
func (s *TriggerService) PauseTrigger(ctx context.Context, orgID, triggerID string) error {
	trigger, err := s.triggers.Get(ctx, orgID, triggerID)
	if err != nil {
		return err
	}

	if trigger.Status != domain.TriggerStatusActive {
		return ErrTriggerNotPausable
	}

	return s.triggers.PauseTriggers(ctx, orgID, []string{triggerID})
}

// ResumeTrigger transitions a paused trigger back to active. A recurring
// trigger whose next run elapsed while paused is re-anchored at "now" so the
// missed window does not fire as a backlog.
func (s *TriggerService) ResumeTrigger(ctx context.Context, orgID, triggerID string) error {
	org, err := s.orgs.Get(ctx, orgID)
	if err != nil {
		return err
	}

	trigger, err := s.triggers.Get(ctx, orgID, triggerID)
	if err != nil {
		return err
	}

	if trigger.Status != domain.TriggerStatusPaused {
		return ErrTriggerNotResumable
	}

	now := s.now().UTC()

	if trigger.Schedule.IsRecurring() && trigger.IsDue(now) {
		next, err := NextRun(trigger.Schedule, org.Location(), now, now)
		if err != nil {
			return err
		}

		trigger.NextRun = next
	}

	trigger.Status = domain.TriggerStatusActive

	return s.triggers.Update(ctx, orgID, trigger)
}

// TestTrigger fires the webhook once out of band. The outcome is appended to
// the trigger's log history in test mode; status, run count, next run, and
// usage counters are untouched.
func (s *TriggerService) TestTrigger(ctx context.Context, orgID, triggerID string) (*domain.ExecutionLog, error) {
	trigger, err := s.triggers.Get(ctx, orgID, triggerID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()

	result := s.dispatcher.Execute(ctx, trigger)
	entry := executionLogFrom(trigger, result, domain.ModeTest, now)

	recent := domain.PrependLog(trigger.RecentLogs, entry)

	if err := s.triggers.AppendTestLog(ctx, orgID, triggerID, entry, recent); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *TriggerService) GetTriggerLogs(ctx context.Context, orgID, triggerID string, limit int) ([]domain.ExecutionLog, error) {
	if limit <= 0 {
		limit = defaultLogsLimit
	}

	return s.triggers.GetLogs(ctx, orgID, triggerID, limit)
}

func validateInput(input *TriggerInput, limits plans.Limits) error {
	if input.Name == "" {
		return ErrInvalidName
	}

	u, err := url.Parse(input.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	return validateInterval(input.Schedule, limits)
}

func normalizeMethod(method string) string {
	if method == "" {
		return http.MethodPost
	}

	return method
}

// initialNextRun anchors a brand new or re-anchored schedule. A one-time
// trigger is due on the next pass; a recurring one first fires a full
// interval from now.
func initialNextRun(schedule domain.Schedule, loc *time.Location, now time.Time) time.Time {
	if schedule.Kind != domain.ScheduleInterval {
		return now
	}

	next, err := NextRun(schedule, loc, now, now)
	if err != nil {
		return domain.NeverRuns
	}

	return next
}
