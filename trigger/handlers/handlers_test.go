package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/triggerkit/scheduled-webhooks/framework/web"
	"github.com/triggerkit/scheduled-webhooks/logger"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
	"github.com/triggerkit/scheduled-webhooks/trigger/service"
	serviceMock "github.com/triggerkit/scheduled-webhooks/trigger/service/mocks"
)

const (
	orgID     = "test-org-id"
	triggerID = "test-trigger-id"
)

func getContext() *gin.Context {
	request := httptest.NewRequest(http.MethodPost, "http://example.com/foo", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request
	ctx.Params = gin.Params{
		{Key: "orgID", Value: orgID},
		{Key: "triggerID", Value: triggerID},
	}

	return ctx
}

type fields struct {
	loggerProvider logger.Provider
	service        *serviceMock.ITriggerService
}

func TestTriggerHandler_RunScheduledTriggers(t *testing.T) {
	tests := []struct {
		name    string
		on      func(*fields)
		wantErr bool
	}{
		{
			name: "happy path",
			on: func(f *fields) {
				f.service.
					On("RunScheduledTriggers", mock.Anything).
					Return(&domain.RunSummary{Success: true, Timestamp: time.Now()}, nil).
					Once()
			},
		},
		{
			name:    "pass already in progress",
			wantErr: true,
			on: func(f *fields) {
				f.service.
					On("RunScheduledTriggers", mock.Anything).
					Return(nil, service.ErrPassInProgress).
					Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := getContext()

			f := fields{
				loggerProvider: logger.FromContext,
				service:        &serviceMock.ITriggerService{},
			}

			h := &TriggerHandler{
				l:   f.loggerProvider,
				svc: f.service,
			}

			if tt.on != nil {
				tt.on(&f)
			}

			err := h.RunScheduledTriggers(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTriggerHandler_CreateTrigger(t *testing.T) {
	validBody, _ := json.Marshal(map[string]interface{}{
		"name": "nightly export",
		"url":  "https://example.com/export",
		"schedule": map[string]interface{}{
			"kind":   "interval",
			"amount": 1,
			"unit":   "days",
		},
	})

	legacyBody, _ := json.Marshal(map[string]interface{}{
		"name": "legacy daily",
		"url":  "https://example.com/legacy",
		"schedule": map[string]interface{}{
			"type": "daily",
		},
	})

	tests := []struct {
		name       string
		body       io.ReadCloser
		on         func(*fields)
		wantErr    bool
		wantStatus int
	}{
		{
			name: "happy path",
			body: io.NopCloser(bytes.NewReader(validBody)),
			on: func(f *fields) {
				f.service.
					On("CreateTrigger", mock.Anything, orgID,
						mock.MatchedBy(func(input *service.TriggerInput) bool {
							return input.Schedule == (domain.Schedule{
								Kind:   domain.ScheduleInterval,
								Amount: 1,
								Unit:   domain.UnitDays,
							})
						})).
					Return(&domain.Trigger{ID: "new-id"}, nil).
					Once()
			},
		},
		{
			name: "legacy schedule shape is normalized at the boundary",
			body: io.NopCloser(bytes.NewReader(legacyBody)),
			on: func(f *fields) {
				f.service.
					On("CreateTrigger", mock.Anything, orgID,
						mock.MatchedBy(func(input *service.TriggerInput) bool {
							return input.Schedule == (domain.Schedule{
								Kind:   domain.ScheduleInterval,
								Amount: 1,
								Unit:   domain.UnitDays,
							})
						})).
					Return(&domain.Trigger{ID: "new-id"}, nil).
					Once()
			},
		},
		{
			name:    "malformed request body",
			body:    io.NopCloser(bytes.NewReader([]byte("{not json"))),
			wantErr: true,
		},
		{
			name:       "interval below plan minimum maps to bad request",
			body:       io.NopCloser(bytes.NewReader(validBody)),
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
			on: func(f *fields) {
				f.service.
					On("CreateTrigger", mock.Anything, orgID, mock.AnythingOfType("*service.TriggerInput")).
					Return(nil, service.ErrInvalidInterval).
					Once()
			},
		},
		{
			name:       "trigger cap maps to conflict",
			body:       io.NopCloser(bytes.NewReader(validBody)),
			wantErr:    true,
			wantStatus: http.StatusConflict,
			on: func(f *fields) {
				f.service.
					On("CreateTrigger", mock.Anything, orgID, mock.AnythingOfType("*service.TriggerInput")).
					Return(nil, service.ErrTriggerLimitReached).
					Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := getContext()
			ctx.Request.Body = tt.body

			f := fields{
				loggerProvider: logger.FromContext,
				service:        &serviceMock.ITriggerService{},
			}

			h := &TriggerHandler{
				l:   f.loggerProvider,
				svc: f.service,
			}

			if tt.on != nil {
				tt.on(&f)
			}

			err := h.CreateTrigger(ctx)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			if tt.wantStatus != 0 {
				var webErr *web.Error
				require.ErrorAs(t, err, &webErr)
				assert.Equal(t, tt.wantStatus, webErr.Status)
			}
		})
	}
}

func TestTriggerHandler_PauseResume(t *testing.T) {
	t.Run("pause happy path", func(t *testing.T) {
		ctx := getContext()

		svc := &serviceMock.ITriggerService{}
		svc.On("PauseTrigger", mock.Anything, orgID, triggerID).Return(nil).Once()

		h := &TriggerHandler{l: logger.FromContext, svc: svc}

		assert.NoError(t, h.PauseTrigger(ctx))
	})

	t.Run("resume on active trigger maps to conflict", func(t *testing.T) {
		ctx := getContext()

		svc := &serviceMock.ITriggerService{}
		svc.On("ResumeTrigger", mock.Anything, orgID, triggerID).
			Return(service.ErrTriggerNotResumable).Once()

		h := &TriggerHandler{l: logger.FromContext, svc: svc}

		err := h.ResumeTrigger(ctx)

		var webErr *web.Error
		require.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusConflict, webErr.Status)
	})
}

func TestTriggerHandler_GetTriggerLogs(t *testing.T) {
	ctx := getContext()
	ctx.Request = httptest.NewRequest(http.MethodGet, "http://example.com/logs?limit=10", nil)

	svc := &serviceMock.ITriggerService{}
	svc.On("GetTriggerLogs", mock.Anything, orgID, triggerID, 10).
		Return([]domain.ExecutionLog{{ID: "log-1"}}, nil).Once()

	h := &TriggerHandler{l: logger.FromContext, svc: svc}

	assert.NoError(t, h.GetTriggerLogs(ctx))
}

func TestTriggerHandler_ServiceError(t *testing.T) {
	ctx := getContext()

	svc := &serviceMock.ITriggerService{}
	svc.On("DeleteTrigger", mock.Anything, orgID, triggerID).
		Return(errors.New("firestore unavailable")).Once()

	h := &TriggerHandler{l: logger.FromContext, svc: svc}

	err := h.DeleteTrigger(ctx)

	var webErr *web.Error
	require.ErrorAs(t, err, &webErr)
	assert.Equal(t, http.StatusInternalServerError, webErr.Status)
}
