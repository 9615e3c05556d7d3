package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/triggerkit/scheduled-webhooks/framework/connection"
	"github.com/triggerkit/scheduled-webhooks/framework/mid"
	"github.com/triggerkit/scheduled-webhooks/framework/web"
	"github.com/triggerkit/scheduled-webhooks/logger"
	triggerHandlers "github.com/triggerkit/scheduled-webhooks/trigger/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	triggers := triggerHandlers.NewTriggerHandler(loggerProvider, a.conn)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	// Cloud Scheduler entry points.
	tasks := web.NewGroup(app, "/tasks")
	tasks.Get("/triggers/run", triggers.RunScheduledTriggers)

	// Admin API.
	orgs := web.NewGroup(app, "/api/v1/orgs/:orgID", mid.ValidatePathParamNotEmpty("orgID"))

	orgs.Post("/triggers", triggers.CreateTrigger)
	orgs.Get("/triggers", triggers.ListTriggers)
	orgs.Get("/triggers/:triggerID", triggers.GetTrigger, mid.ValidatePathParamNotEmpty("triggerID"))
	orgs.Patch("/triggers/:triggerID", triggers.UpdateTrigger, mid.ValidatePathParamNotEmpty("triggerID"))
	orgs.Delete("/triggers/:triggerID", triggers.DeleteTrigger, mid.ValidatePathParamNotEmpty("triggerID"))
	orgs.Post("/triggers/:triggerID/pause", triggers.PauseTrigger, mid.ValidatePathParamNotEmpty("triggerID"))
	orgs.Post("/triggers/:triggerID/resume", triggers.ResumeTrigger, mid.ValidatePathParamNotEmpty("triggerID"))
	orgs.Post("/triggers/:triggerID/test", triggers.TestTrigger, mid.ValidatePathParamNotEmpty("triggerID"))
	orgs.Get("/triggers/:triggerID/logs", triggers.GetTriggerLogs, mid.ValidatePathParamNotEmpty("triggerID"))

	return app
}
