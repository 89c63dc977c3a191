package middleware

import (
	"github.com/deppfellow/shanyrak/internal/logger"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	// UserIDKey holds the authenticated user's id (int64) in echo context.
	UserIDKey = "user_id"

	// LoggerKey holds the request-scoped *zerolog.Logger in echo context.
	LoggerKey = "logger"
)

// ContextEnhancer builds a request-scoped logger carrying request_id,
// method, path, ip and, when New Relic is on, trace ids.
//
// The logger is stored in echo context (GetLogger) and in the request's
// context.Context, where services pick it up with zerolog.Ctx.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != 0 {
				contextLogger = contextLogger.With().Int64("user_id", userID).Logger()
			}

			storeLogger(c, contextLogger)

			return next(c)
		}
	}
}

// attachUser re-derives the request logger with the authenticated user id.
func attachUser(c echo.Context, userID int64) {
	storeLogger(c, GetLogger(c).With().Int64("user_id", userID).Logger())
}

func storeLogger(c echo.Context, l zerolog.Logger) {
	c.Set(LoggerKey, &l)

	ctx := l.WithContext(c.Request().Context())
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID returns the authenticated user's id, or 0 outside RequireAuth.
func GetUserID(c echo.Context) int64 {
	if userID, ok := c.Get(UserIDKey).(int64); ok {
		return userID
	}
	return 0
}

// GetLogger retrieves the request-scoped logger from echo context.
//
// If EnhanceContext didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
