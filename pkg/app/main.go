package app

import (
	"time"

	"github.com/gorilla/sessions"

	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/kvstore"
	"github.com/ghuser/orderdesk/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, request_id and user_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order created", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	Redis        *kvstore.RedisClient // nil when sessions are cookie-backed
	SessionStore sessions.Store

	// ReportLocation is the time zone monthly reports are bucketed in.
	ReportLocation *time.Location
}

// IsProduction reports whether the application runs with ENVIRONMENT=production.
func (a *Application) IsProduction() bool {
	return a.Config != nil && a.Config.Environment == config.EnvProduction
}
