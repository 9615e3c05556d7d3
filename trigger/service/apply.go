package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/triggerkit/scheduled-webhooks/trigger/dal"
	"github.com/triggerkit/scheduled-webhooks/trigger/dispatch"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// executionLogFrom folds one dispatch result into an immutable log entry.
func executionLogFrom(trigger *domain.Trigger, result *dispatch.Result, mode domain.ExecutionMode, now time.Time) domain.ExecutionLog {
	entry := domain.ExecutionLog{
		ID:             uuid.New().String(),
		Timestamp:      now,
		RequestPayload: trigger.Payload,
		Mode:           mode,
	}

	if result.Success() {
		entry.Status = domain.ExecutionSuccess
	} else {
		entry.Status = domain.ExecutionFailed
	}

	if result.Delivered {
		entry.ResponseStatus = result.Status
		entry.ResponseBody = truncateBody(result.Body)
	} else {
		entry.Error = result.Err
	}

	return entry
}

func truncateBody(body string) string {
	if len(body) > domain.MaxResponseBodyLength {
		return body[:domain.MaxResponseBodyLength]
	}

	return body
}

// buildPassUpdate computes the post-dispatch state transition of one trigger.
// The terminal check runs in a fixed order: execution limit first, then the
// one-time rule, otherwise the trigger stays active with a freshly computed
// next run. A malformed interval parks the trigger on the far-future sentinel
// and is surfaced as a logged error rather than retried forever.
func (s *TriggerService) buildPassUpdate(ctx context.Context, trigger *domain.Trigger, result *dispatch.Result, loc *time.Location, now time.Time) *dal.PassUpdate {
	entry := executionLogFrom(trigger, result, domain.ModeProduction, now)

	update := &dal.PassUpdate{
		TriggerID:  trigger.ID,
		RunCount:   trigger.RunCount + 1,
		Log:        entry,
		RecentLogs: domain.PrependLog(trigger.RecentLogs, entry),
	}

	switch {
	case trigger.ExecutionLimit > 0 && update.RunCount >= trigger.ExecutionLimit:
		update.Status = completedStatus(trigger)
		update.NextRun = domain.NeverRuns

	case trigger.Schedule.Kind == domain.ScheduleOneTime:
		if result.Success() {
			update.Status = completedStatus(trigger)
		} else {
			update.Status = domain.TriggerStatusFailed
		}

		update.NextRun = domain.NeverRuns

	default:
		update.Status = domain.TriggerStatusActive

		next, err := NextRun(trigger.Schedule, loc, trigger.NextRun, now)
		if err != nil {
			s.loggerProvider(ctx).Errorf("trigger %s: %s, parking on sentinel", trigger.ID, err)
		}

		update.NextRun = next
	}

	return update
}

func completedStatus(trigger *domain.Trigger) domain.TriggerStatus {
	if trigger.ArchiveOnComplete {
		return domain.TriggerStatusArchived
	}

	return domain.TriggerStatusCompleted
}
