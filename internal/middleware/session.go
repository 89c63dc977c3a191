package middleware

import (
	"github.com/deppfellow/shanyrak/internal/database"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware pins one pooled connection to each request. Every
// repository call made while handling the request runs on it, and the
// connection goes back to the pool on every exit path, panics included.
type SessionMiddleware struct {
	source database.SessionSource
}

func NewSessionMiddleware(source database.SessionSource) *SessionMiddleware {
	return &SessionMiddleware{source: source}
}

func (sm *SessionMiddleware) AcquireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		session, err := sm.source.AcquireSession(ctx)
		if err != nil {
			return err
		}
		defer session.Release()

		c.SetRequest(c.Request().WithContext(database.WithSession(ctx, session)))

		return next(c)
	}
}
