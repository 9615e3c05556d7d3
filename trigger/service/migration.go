package service

import (
	"context"

	"github.com/google/uuid"

	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// Migrate converts any triggers still embedded in the organization or group
// documents into independent per-trigger documents, copying their execution
// history into the per-trigger log store and clearing the embedded lists.
// Idempotent: once the embedded lists are empty there is nothing to read and
// the pass is a no-op. Runs opportunistically at the start of each
// organization's scheduling pass.
func (s *TriggerService) Migrate(ctx context.Context, org *orgDomain.Organization) (*MigrationResult, error) {
	embedded, err := s.triggers.GetEmbeddedTriggers(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	if len(embedded) == 0 {
		return &MigrationResult{}, nil
	}

	result := &MigrationResult{}

	migrated := make([]*domain.Trigger, 0, len(embedded))
	history := make(map[string][]domain.ExecutionLog)

	for i := range embedded {
		e := &embedded[i]

		trigger := e.Normalize(org.ID)
		trigger.HistoryMigrated = true
		migrated = append(migrated, trigger)

		if len(e.History) > 0 {
			entries := make([]domain.ExecutionLog, len(e.History))

			for j, entry := range e.History {
				// legacy history rows predate per-entry ids
				if entry.ID == "" {
					entry.ID = uuid.New().String()
				}

				entries[j] = entry
			}

			history[trigger.ID] = entries
			result.HistoryEntries += len(entries)
		}
	}

	if err := s.triggers.CommitMigration(ctx, org.ID, migrated, history); err != nil {
		return nil, err
	}

	result.Migrated = len(migrated)

	s.loggerProvider(ctx).Infof("org %s: migrated %d embedded triggers (%d history entries)", org.ID, result.Migrated, result.HistoryEntries)

	return result, nil
}
