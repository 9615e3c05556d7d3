package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// embeddedHolder reads just the legacy embedded trigger list off a parent
// organization or group document.
type embeddedHolder struct {
	Triggers []domain.EmbeddedTrigger `firestore:"triggers"`
}

// GetEmbeddedTriggers returns the triggers still embedded in the organization
// document and its group documents. An empty result means the organization is
// fully migrated.
func (d *TriggersFirestore) GetEmbeddedTriggers(ctx context.Context, orgID string) ([]domain.EmbeddedTrigger, error) {
	orgDoc, err := d.orgRef(ctx, orgID).Get(ctx)
	if err != nil {
		return nil, err
	}

	var holder embeddedHolder
	if err := orgDoc.DataTo(&holder); err != nil {
		return nil, err
	}

	embedded := holder.Triggers

	groupDocs, err := d.orgRef(ctx, orgID).Collection(groupsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	for _, groupDoc := range groupDocs {
		var groupHolder embeddedHolder
		if err := groupDoc.DataTo(&groupHolder); err != nil {
			d.l(ctx).Warningf("unable to read embedded triggers of group %s: %s", groupDoc.Ref.ID, err)
			continue
		}

		for _, e := range groupHolder.Triggers {
			e.GroupID = groupDoc.Ref.ID
			embedded = append(embedded, e)
		}
	}

	return embedded, nil
}

// CommitMigration writes each migrated trigger as an independent document,
// copies its prior execution history into the per-trigger log subcollection,
// and clears the embedded lists off the parent documents, all in one batch.
func (d *TriggersFirestore) CommitMigration(ctx context.Context, orgID string, migrated []*domain.Trigger, history map[string][]domain.ExecutionLog) error {
	if len(migrated) == 0 {
		return nil
	}

	batch := d.firestoreClientFun(ctx).Batch()
	groupIDs := make(map[string]struct{})

	for _, t := range migrated {
		triggerRef := d.triggerRef(ctx, orgID, t.ID)
		batch.Set(triggerRef, t)

		for _, entry := range history[t.ID] {
			batch.Set(triggerRef.Collection(logsCollection).Doc(entry.ID), entry)
		}

		if t.GroupID != "" {
			groupIDs[t.GroupID] = struct{}{}
		}
	}

	batch.Update(d.orgRef(ctx, orgID), []firestore.Update{
		{Path: "triggers", Value: firestore.Delete},
	})

	for groupID := range groupIDs {
		batch.Update(d.orgRef(ctx, orgID).Collection(groupsCollection).Doc(groupID), []firestore.Update{
			{Path: "triggers", Value: firestore.Delete},
		})
	}

	_, err := batch.Commit(ctx)

	return err
}
