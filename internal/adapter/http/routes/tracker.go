package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantranwebapi/internal/adapter/http/handlers"
	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/usecase"
	"mantranwebapi/pkg"
)

const (
	PathAuth    = "/auth"
	PathTasks   = "/tasks"
	PathScreens = "/screens"
)

var (
	errMissingSession = pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Missing or invalid session", http.StatusUnauthorized)
	errAdminOnly      = pkg.NewDomainErrorSimple("FORBIDDEN", "Restricted to administrators", http.StatusForbidden)
)

func addTrackerRoutes(
	rg *gin.RouterGroup,
	sessions usecase.ISessionUseCase,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	screenHandler *handlers.ScreenHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", sessionAuth(sessions), authHandler.Logout)
	}

	tasks := rg.Group(PathTasks, sessionAuth(sessions))
	{
		tasks.GET("/pending", taskHandler.Pending)
		tasks.GET("/mine", taskHandler.Mine)
		tasks.GET("/completed", dashboardHandler.Completed)
		tasks.POST("/:id/claim", taskHandler.Claim)
		tasks.POST("/:id/start", taskHandler.Start)
		tasks.POST("/:id/pause", taskHandler.Pause)
		tasks.POST("/:id/resume", taskHandler.Resume)
		tasks.POST("/:id/finish", taskHandler.Finish)
		tasks.PATCH("/:id/status", taskHandler.SetStatus)
		tasks.PATCH("/:id/notes", taskHandler.SaveNotes)
	}

	rg.GET("/dashboard", sessionAuth(sessions), dashboardHandler.Dashboard)

	screens := rg.Group(PathScreens, sessionAuth(sessions))
	{
		screens.GET("", screenHandler.List)
		screens.POST("", adminOnly(), screenHandler.Register)
		screens.PATCH("/:id", adminOnly(), screenHandler.Update)
		screens.DELETE("/:id", adminOnly(), screenHandler.Delete)
	}
}

// sessionAuth resolves the token header into the logged-in user and parks it
// on the context for handlers.CurrentUser.
func sessionAuth(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(handlers.SessionTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}
		user, err := sessions.Current(token)
		if err != nil {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}
		c.Set(handlers.ContextUserKey, user)
		c.Next()
	}
}

func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := handlers.CurrentUser(c)
		if !ok {
			c.Abort()
			return
		}
		switch user.Role {
		case entities.RoleAdmin:
			c.Next()
		case entities.RoleTechnician:
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
		default:
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
		}
	}
}
