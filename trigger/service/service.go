package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/qmuntal/stateless"

	"github.com/triggerkit/scheduled-webhooks/framework/connection"
	"github.com/triggerkit/scheduled-webhooks/logger"
	orgDal "github.com/triggerkit/scheduled-webhooks/organization/dal"
	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/plans"
	"github.com/triggerkit/scheduled-webhooks/trigger/dal"
	"github.com/triggerkit/scheduled-webhooks/trigger/dispatch"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// ErrPassInProgress is returned when a scheduling pass is fired while the
// previous one is still running. Overlapping invocations from the periodic
// signal are rejected rather than queued.
var ErrPassInProgress = errors.New("scheduling pass already in progress")

const (
	stateIdle    = "idle"
	stateRunning = "running"

	eventStart  = "start"
	eventFinish = "finish"

	// maxConcurrentDispatches bounds the per-organization fan-out so one
	// organization with many due triggers cannot exhaust outbound sockets.
	maxConcurrentDispatches = 10
)

type TriggerService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection

	orgs       orgDal.Organizations
	triggers   dal.Triggers
	dispatcher dispatch.Dispatcher

	machine *stateless.StateMachine
	now     func() time.Time
}

func NewTriggerService(log logger.Provider, conn *connection.Connection) *TriggerService {
	s := &TriggerService{
		loggerProvider: log,
		conn:           conn,
		orgs:           orgDal.NewOrganizationsFirestoreWithClient(conn.Firestore),
		triggers:       dal.NewTriggersFirestoreWithClient(log, conn.Firestore),
		dispatcher:     dispatch.NewWebhookDispatcher(log),
		now:            time.Now,
	}

	s.machine = newDriverMachine()

	return s
}

// newDriverMachine models the driver lifecycle: Idle -> Running -> Idle.
// Firing start while running is an invalid transition, which is how an
// overlapping pass gets rejected.
func newDriverMachine() *stateless.StateMachine {
	machine := stateless.NewStateMachine(stateIdle)

	machine.Configure(stateIdle).
		Permit(eventStart, stateRunning)

	machine.Configure(stateRunning).
		Permit(eventFinish, stateIdle)

	return machine
}

// RunScheduledTriggers executes one scheduling pass over all organizations.
// Organizations are processed sequentially; a failure in one is logged and
// recorded on the summary without aborting the others. The pass runs to
// completion once started.
func (s *TriggerService) RunScheduledTriggers(ctx context.Context) (*domain.RunSummary, error) {
	if err := s.machine.FireCtx(ctx, eventStart); err != nil {
		return nil, ErrPassInProgress
	}

	defer func() {
		_ = s.machine.FireCtx(ctx, eventFinish)
	}()

	now := s.now().UTC()
	l := s.loggerProvider(ctx)

	orgs, err := s.orgs.GetOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.RunSummary{
		Success:   true,
		Timestamp: now,
	}

	var orgErrors error

	for _, org := range orgs {
		executed, line, err := s.processOrganizationSafe(ctx, org, now)
		if err != nil {
			orgErrors = multierror.Append(orgErrors, fmt.Errorf("org %s: %w", org.ID, err))
			summary.Success = false
			summary.OrgLogLines = append(summary.OrgLogLines, fmt.Sprintf("org %s: error: %s", org.ID, err))

			l.Errorf("org %s: scheduling pass failed: %s", org.ID, err)

			continue
		}

		summary.OrganizationsProcessed++
		summary.DueTriggersExecuted += executed

		if line != "" {
			summary.OrgLogLines = append(summary.OrgLogLines, line)
		}
	}

	if orgErrors != nil {
		l.Errorf("scheduling pass finished with errors: %s", orgErrors)
	}

	l.Infof("scheduling pass done: %d orgs, %d due triggers executed", summary.OrganizationsProcessed, summary.DueTriggersExecuted)

	return summary, nil
}

// processOrganizationSafe shields the pass from a panicking organization so
// the remaining organizations still get processed.
func (s *TriggerService) processOrganizationSafe(ctx context.Context, org *orgDomain.Organization, now time.Time) (executed int, line string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return s.processOrganization(ctx, org, now)
}

// processOrganization runs the full per-organization sequence: migrate
// embedded triggers, roll and check usage, enforce the trigger cap, select
// due triggers, fan out the dispatches, and commit all resulting state in a
// single batch.
func (s *TriggerService) processOrganization(ctx context.Context, org *orgDomain.Organization, now time.Time) (int, string, error) {
	if _, err := s.Migrate(ctx, org); err != nil {
		return 0, "", err
	}

	limits := plans.LimitsFor(org.PlanID)

	usage, reset := rollUsage(org.Usage, now)

	if usage.ExecutionsThisMonth >= limits.MaxExecutionsPerMonth {
		if reset {
			if err := s.orgs.UpdateUsage(ctx, org.ID, usage); err != nil {
				return 0, "", err
			}
		}

		return 0, fmt.Sprintf("org %s: monthly execution cap reached (%d), skipped", org.ID, limits.MaxExecutionsPerMonth), nil
	}

	active, err := s.triggers.GetActiveTriggers(ctx, org.ID)
	if err != nil {
		return 0, "", err
	}

	active, err = s.enforceTriggerCap(ctx, org.ID, active, limits)
	if err != nil {
		return 0, "", err
	}

	due := selectDue(active, now)
	if len(due) == 0 {
		if reset {
			if err := s.orgs.UpdateUsage(ctx, org.ID, usage); err != nil {
				return 0, "", err
			}
		}

		return 0, "", nil
	}

	results := s.dispatchAll(ctx, due)

	loc := org.Location()

	updates := make([]*dal.PassUpdate, len(due))
	for i, trigger := range due {
		updates[i] = s.buildPassUpdate(ctx, trigger, results[i], loc, now)
	}

	usage = chargeUsage(usage, len(due), now, loc)

	if err := s.triggers.CommitPassResults(ctx, org.ID, updates, usage); err != nil {
		return 0, "", err
	}

	return len(due), fmt.Sprintf("org %s: executed %d due triggers", org.ID, len(due)), nil
}

// dispatchAll fans out the outbound calls of one organization's due triggers
// and joins them all. Results are positionally aligned with the input; there
// is no ordering guarantee between the calls themselves.
func (s *TriggerService) dispatchAll(ctx context.Context, due []*domain.Trigger) []*dispatch.Result {
	results := make([]*dispatch.Result, len(due))

	var wg sync.WaitGroup

	sem := make(chan struct{}, maxConcurrentDispatches)

	for i, trigger := range due {
		wg.Add(1)

		go func(i int, trigger *domain.Trigger) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.dispatcher.Execute(ctx, trigger)
		}(i, trigger)
	}

	wg.Wait()

	return results
}
