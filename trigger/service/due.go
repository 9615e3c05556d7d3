package service

import (
	"time"

	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// selectDue filters the post-quota active set down to the triggers whose
// next run has elapsed. Pure filter, no side effects.
func selectDue(active []*domain.Trigger, now time.Time) []*domain.Trigger {
	var due []*domain.Trigger

	for _, t := range active {
		if t.IsDue(now) {
			due = append(due, t)
		}
	}

	return due
}
