package router

import (
	"net/http"

	"github.com/deppfellow/shanyrak/internal/handler"
	"github.com/deppfellow/shanyrak/internal/middleware"
	"github.com/labstack/echo/v4"
)

// routeGuards holds the per-route middleware. Bearer routes check the token
// before a pooled connection is taken.
type routeGuards struct {
	public  []echo.MiddlewareFunc
	private []echo.MiddlewareFunc
}

func newRouteGuards(auth *middleware.AuthMiddleware, session *middleware.SessionMiddleware) routeGuards {
	return routeGuards{
		public:  []echo.MiddlewareFunc{session.AcquireSession},
		private: []echo.MiddlewareFunc{auth.RequireAuth, session.AcquireSession},
	}
}

// registerAuthRoutes mounts registration, login, profile and favorites
// under /auth/users.
func registerAuthRoutes(users *echo.Group, h *handler.Handlers, g routeGuards) {
	users.POST("", handler.Handle(h.Auth.Register, http.StatusOK), g.public...)
	users.POST("/login", handler.Handle(h.Auth.Login, http.StatusOK), g.public...)

	users.GET("/me", handler.Handle(h.Auth.GetProfile, http.StatusOK), g.private...)
	users.PATCH("/me", handler.HandleNoContent(h.Auth.UpdateProfile, http.StatusOK), g.private...)

	favorites := users.Group("/favorites/shanyraks", g.private...)
	favorites.GET("", handler.Handle(h.Favorite.ListFavorites, http.StatusOK))
	favorites.POST("/:id", handler.HandleNoContent(h.Favorite.AddFavorite, http.StatusOK))
	favorites.DELETE("/:id", handler.HandleNoContent(h.Favorite.RemoveFavorite, http.StatusOK))
}

// registerAdRoutes mounts ads and their comments under /shanyraks.
func registerAdRoutes(ads *echo.Group, h *handler.Handlers, g routeGuards) {
	ads.GET("", handler.Handle(h.Ad.ListAds, http.StatusOK), g.public...)
	ads.POST("", handler.Handle(h.Ad.CreateAd, http.StatusOK), g.private...)

	ads.GET("/:id", handler.Handle(h.Ad.GetAd, http.StatusOK), g.public...)
	ads.PATCH("/:id", handler.HandleNoContent(h.Ad.UpdateAd, http.StatusOK), g.private...)
	ads.DELETE("/:id", handler.HandleNoContent(h.Ad.DeleteAd, http.StatusOK), g.private...)

	ads.GET("/:id/comments", handler.Handle(h.Comment.ListComments, http.StatusOK), g.public...)
	ads.POST("/:id/comments", handler.Handle(h.Comment.CreateComment, http.StatusOK), g.private...)
	ads.PATCH("/:id/comments/:comment_id", handler.HandleNoContent(h.Comment.UpdateComment, http.StatusOK), g.private...)
	ads.DELETE("/:id/comments/:comment_id", handler.HandleNoContent(h.Comment.DeleteComment, http.StatusOK), g.private...)
}
