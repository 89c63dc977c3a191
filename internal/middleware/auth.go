package middleware

import (
	"errors"
	"strings"

	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/deppfellow/shanyrak/internal/lib/token"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	bearerScheme = "bearer"
	loginRoute   = "/auth/users/login"
)

// errNotAuthenticated carries a redirect to the login route. Every 401 the
// middleware returns is derived from it.
var errNotAuthenticated = func() *errs.HTTPError {
	err := errs.NewUnauthorizedError("Not authenticated", true)
	err.Action = &errs.Action{
		Type:    errs.ActionTypeRedirect,
		Message: "Sign in to continue",
		Value:   loginRoute,
	}
	return err
}()

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(raw string) (int64, error)
}

// AuthMiddleware guards routes that need a signed-in user.
type AuthMiddleware struct {
	server   *server.Server
	verifier TokenVerifier
}

func NewAuthMiddleware(s *server.Server, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		server:   s,
		verifier: verifier,
	}
}

// RequireAuth rejects the request with 401 unless it carries a valid
// "Authorization: Bearer <token>" header. The 401 body tells the client to
// redirect to the login route.
//
// On success the user id is stored under UserIDKey and added to the
// request-scoped logger, so everything logged further down the chain is
// attributed to the caller.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Msg("missing bearer token")
			return errNotAuthenticated
		}

		userID, err := auth.verifier.Verify(raw)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "RequireAuth").
				Msg("rejected bearer token")

			if errors.Is(err, token.ErrExpiredToken) {
				return errNotAuthenticated.WithMessage("Token has expired")
			}
			return errNotAuthenticated.WithMessage("Could not validate credentials")
		}

		c.Set(UserIDKey, userID)
		attachUser(c, userID)

		return next(c)
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, raw, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
