package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/triggerkit/scheduled-webhooks/framework/connection"
	"github.com/triggerkit/scheduled-webhooks/logger"
	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

const (
	organizationsCollection = "organizations"
	triggersCollection      = "triggers"
	logsCollection          = "logs"
	groupsCollection        = "groups"
)

var ErrTriggerNotFound = errors.New("trigger not found")

// TriggersFirestore is used to interact with triggers stored on Firestore.
type TriggersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	l                  logger.Provider
}

// NewTriggersFirestore returns a new TriggersFirestore instance with given project id.
func NewTriggersFirestore(ctx context.Context, projectID string, log logger.Provider) (*TriggersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewTriggersFirestoreWithClient(
		log,
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewTriggersFirestoreWithClient returns a new TriggersFirestore using given client.
func NewTriggersFirestoreWithClient(log logger.Provider, fun connection.FirestoreFromContextFun) *TriggersFirestore {
	return &TriggersFirestore{
		firestoreClientFun: fun,
		l:                  log,
	}
}

func (d *TriggersFirestore) orgRef(ctx context.Context, orgID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(organizationsCollection).Doc(orgID)
}

func (d *TriggersFirestore) triggerRef(ctx context.Context, orgID, triggerID string) *firestore.DocumentRef {
	return d.orgRef(ctx, orgID).Collection(triggersCollection).Doc(triggerID)
}

func (d *TriggersFirestore) Get(ctx context.Context, orgID, triggerID string) (*domain.Trigger, error) {
	doc, err := d.triggerRef(ctx, orgID, triggerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrTriggerNotFound
		}

		return nil, err
	}

	var t domain.Trigger
	if err := doc.DataTo(&t); err != nil {
		return nil, err
	}

	t.ID = doc.Ref.ID

	return &t, nil
}

// List returns all triggers of an organization ordered by document id.
func (d *TriggersFirestore) List(ctx context.Context, orgID string) ([]*domain.Trigger, error) {
	iter := d.orgRef(ctx, orgID).
		Collection(triggersCollection).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var triggers []*domain.Trigger

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var t domain.Trigger
		if err := doc.DataTo(&t); err != nil {
			d.l(ctx).Warningf("unable to convert document %s to trigger: %s", doc.Ref.ID, err)
			continue
		}

		t.ID = doc.Ref.ID
		triggers = append(triggers, &t)
	}

	return triggers, nil
}

// GetActiveTriggers returns the active triggers of an organization ordered by
// document id, which keeps quota tie-breaks deterministic across runs.
func (d *TriggersFirestore) GetActiveTriggers(ctx context.Context, orgID string) ([]*domain.Trigger, error) {
	docs, err := d.orgRef(ctx, orgID).
		Collection(triggersCollection).
		Where("status", "==", string(domain.TriggerStatusActive)).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	triggers := make([]*domain.Trigger, 0, len(docs))

	for _, doc := range docs {
		var t domain.Trigger
		if err := doc.DataTo(&t); err != nil {
			d.l(ctx).Warningf("unable to convert document %s to trigger: %s", doc.Ref.ID, err)
			continue
		}

		t.ID = doc.Ref.ID
		triggers = append(triggers, &t)
	}

	return triggers, nil
}

func (d *TriggersFirestore) Create(ctx context.Context, orgID string, trigger *domain.Trigger) (string, error) {
	if trigger == nil {
		return "", errors.New("trigger cannot be nil")
	}

	ref, _, err := d.orgRef(ctx, orgID).Collection(triggersCollection).Add(ctx, trigger)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *TriggersFirestore) Update(ctx context.Context, orgID string, trigger *domain.Trigger) error {
	if trigger == nil || trigger.ID == "" {
		return errors.New("invalid trigger")
	}

	_, err := d.triggerRef(ctx, orgID, trigger.ID).Set(ctx, trigger)

	return err
}

func (d *TriggersFirestore) Delete(ctx context.Context, orgID, triggerID string) error {
	if triggerID == "" {
		return errors.New("invalid trigger ID")
	}

	_, err := d.triggerRef(ctx, orgID, triggerID).Delete(ctx)

	return err
}

// PauseTriggers transitions the given triggers to paused in a single batch.
// The quota enforcer persists these before due-trigger selection runs.
func (d *TriggersFirestore) PauseTriggers(ctx context.Context, orgID string, triggerIDs []string) error {
	if len(triggerIDs) == 0 {
		return nil
	}

	batch := d.firestoreClientFun(ctx).Batch()

	for _, id := range triggerIDs {
		batch.Update(d.triggerRef(ctx, orgID, id), []firestore.Update{
			{Path: "status", Value: string(domain.TriggerStatusPaused)},
			{Path: "timeModified", Value: firestore.ServerTimestamp},
		})
	}

	_, err := batch.Commit(ctx)

	return err
}

// CommitPassResults applies all trigger transitions and the organization's
// usage counters of one scheduling pass in a single atomic batch. A failure
// leaves trigger state and usage counters untouched together.
func (d *TriggersFirestore) CommitPassResults(ctx context.Context, orgID string, updates []*PassUpdate, usage orgDomain.Usage) error {
	if len(updates) == 0 {
		return nil
	}

	batch := d.firestoreClientFun(ctx).Batch()

	for _, u := range updates {
		triggerRef := d.triggerRef(ctx, orgID, u.TriggerID)
		logRef := triggerRef.Collection(logsCollection).Doc(u.Log.ID)

		batch.Set(logRef, u.Log)
		batch.Update(triggerRef, []firestore.Update{
			{Path: "status", Value: string(u.Status)},
			{Path: "nextRun", Value: u.NextRun},
			{Path: "runCount", Value: u.RunCount},
			{Path: "recentLogs", Value: u.RecentLogs},
			{Path: "timeModified", Value: firestore.ServerTimestamp},
		})
	}

	batch.Update(d.orgRef(ctx, orgID), []firestore.Update{
		{Path: "usage", Value: usage},
	})

	_, err := batch.Commit(ctx)

	return err
}

// AppendTestLog records a test-mode execution without touching schedule state
// or usage counters.
func (d *TriggersFirestore) AppendTestLog(ctx context.Context, orgID, triggerID string, entry domain.ExecutionLog, recent []domain.ExecutionLog) error {
	triggerRef := d.triggerRef(ctx, orgID, triggerID)

	batch := d.firestoreClientFun(ctx).Batch()
	batch.Set(triggerRef.Collection(logsCollection).Doc(entry.ID), entry)
	batch.Update(triggerRef, []firestore.Update{
		{Path: "recentLogs", Value: recent},
		{Path: "timeModified", Value: firestore.ServerTimestamp},
	})

	_, err := batch.Commit(ctx)

	return err
}

// GetLogs returns the newest execution logs of a trigger.
func (d *TriggersFirestore) GetLogs(ctx context.Context, orgID, triggerID string, limit int) ([]domain.ExecutionLog, error) {
	q := d.triggerRef(ctx, orgID, triggerID).
		Collection(logsCollection).
		OrderBy("timestamp", firestore.Desc)

	if limit > 0 {
		q = q.Limit(limit)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	logs := make([]domain.ExecutionLog, 0, len(docs))

	for _, doc := range docs {
		var entry domain.ExecutionLog
		if err := doc.DataTo(&entry); err != nil {
			return nil, err
		}

		logs = append(logs, entry)
	}

	return logs, nil
}
