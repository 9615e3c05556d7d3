package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triggerkit/scheduled-webhooks/framework/connection"
	"github.com/triggerkit/scheduled-webhooks/framework/web"
	"github.com/triggerkit/scheduled-webhooks/logger"
	orgDal "github.com/triggerkit/scheduled-webhooks/organization/dal"
	"github.com/triggerkit/scheduled-webhooks/trigger/dal"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
	"github.com/triggerkit/scheduled-webhooks/trigger/service"
)

type TriggerHandler struct {
	l   logger.Provider
	svc service.ITriggerService
}

func NewTriggerHandler(l logger.Provider, conn *connection.Connection) *TriggerHandler {
	svc := service.NewTriggerService(l, conn)

	return &TriggerHandler{
		l:   l,
		svc: svc,
	}
}

// scheduleRequest accepts both the canonical tagged schedule and the legacy
// duck-typed shape ("type" plus optional "every"). Legacy shapes are mapped
// to the canonical variant exactly once, here at the API boundary.
type scheduleRequest struct {
	Kind   string `json:"kind"`
	Amount int64  `json:"amount"`
	Unit   string `json:"unit"`

	Type  string `json:"type"`
	Every int64  `json:"every"`
}

func (r *scheduleRequest) toDomain() domain.Schedule {
	if r.Kind != "" {
		return domain.Schedule{
			Kind:   domain.ScheduleKind(r.Kind),
			Amount: r.Amount,
			Unit:   domain.IntervalUnit(r.Unit),
		}
	}

	return domain.NormalizeLegacySchedule(r.Type, r.Every)
}

type triggerRequest struct {
	Name              string          `json:"name"`
	URL               string          `json:"url"`
	HTTPMethod        string          `json:"httpMethod"`
	Payload           string          `json:"payload"`
	TimeoutMs         int64           `json:"timeoutMs"`
	GroupID           string          `json:"groupId"`
	Schedule          scheduleRequest `json:"schedule"`
	ExecutionLimit    int64           `json:"executionLimit"`
	ArchiveOnComplete bool            `json:"archiveOnComplete"`
}

func (r *triggerRequest) toInput() *service.TriggerInput {
	return &service.TriggerInput{
		Name:              r.Name,
		URL:               r.URL,
		HTTPMethod:        r.HTTPMethod,
		Payload:           r.Payload,
		TimeoutMs:         r.TimeoutMs,
		GroupID:           r.GroupID,
		Schedule:          r.Schedule.toDomain(),
		ExecutionLimit:    r.ExecutionLimit,
		ArchiveOnComplete: r.ArchiveOnComplete,
	}
}

// RunScheduledTriggers is the periodic entry point invoked by Cloud
// Scheduler. It executes one full scheduling pass and responds with the run
// summary.
func (h *TriggerHandler) RunScheduledTriggers(ctx *gin.Context) error {
	summary, err := h.svc.RunScheduledTriggers(ctx)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, summary, http.StatusOK)
}

func (h *TriggerHandler) CreateTrigger(ctx *gin.Context) error {
	orgID := ctx.Param("orgID")

	var req triggerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	trigger, err := h.svc.CreateTrigger(ctx, orgID, req.toInput())
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, trigger, http.StatusCreated)
}

func (h *TriggerHandler) UpdateTrigger(ctx *gin.Context) error {
	orgID := ctx.Param("orgID")
	triggerID := ctx.Param("triggerID")

	var req triggerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	trigger, err := h.svc.UpdateTrigger(ctx, orgID, triggerID, req.toInput())
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, trigger, http.StatusOK)
}

func (h *TriggerHandler) GetTrigger(ctx *gin.Context) error {
	trigger, err := h.svc.GetTrigger(ctx, ctx.Param("orgID"), ctx.Param("triggerID"))
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, trigger, http.StatusOK)
}

func (h *TriggerHandler) ListTriggers(ctx *gin.Context) error {
	triggers, err := h.svc.ListTriggers(ctx, ctx.Param("orgID"))
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, triggers, http.StatusOK)
}

func (h *TriggerHandler) DeleteTrigger(ctx *gin.Context) error {
	if err := h.svc.DeleteTrigger(ctx, ctx.Param("orgID"), ctx.Param("triggerID")); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *TriggerHandler) PauseTrigger(ctx *gin.Context) error {
	if err := h.svc.PauseTrigger(ctx, ctx.Param("orgID"), ctx.Param("triggerID")); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *TriggerHandler) ResumeTrigger(ctx *gin.Context) error {
	if err := h.svc.ResumeTrigger(ctx, ctx.Param("orgID"), ctx.Param("triggerID")); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *TriggerHandler) TestTrigger(ctx *gin.Context) error {
	entry, err := h.svc.TestTrigger(ctx, ctx.Param("orgID"), ctx.Param("triggerID"))
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, entry, http.StatusOK)
}

func (h *TriggerHandler) GetTriggerLogs(ctx *gin.Context) error {
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	logs, err := h.svc.GetTriggerLogs(ctx, ctx.Param("orgID"), ctx.Param("triggerID"), limit)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, logs, http.StatusOK)
}

func translateServiceError(err error) error {
	switch {
	case errors.Is(err, dal.ErrTriggerNotFound),
		errors.Is(err, orgDal.ErrOrganizationNotFound):
		return web.NewRequestError(err, http.StatusNotFound)

	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrMalformedSchedule),
		errors.Is(err, service.ErrInvalidInterval):
		return web.NewRequestError(err, http.StatusBadRequest)

	case errors.Is(err, service.ErrTriggerLimitReached),
		errors.Is(err, service.ErrTriggerNotPausable),
		errors.Is(err, service.ErrTriggerNotResumable),
		errors.Is(err, service.ErrTriggerTerminal),
		errors.Is(err, service.ErrPassInProgress):
		return web.NewRequestError(err, http.StatusConflict)

	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
