package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/pkg"
)

// ContextUserKey is where the session middleware parks the resolved
// identity for the request.
const ContextUserKey = "current_user"

// SessionTokenHeader carries the opaque session token issued at login.
const SessionTokenHeader = "X-Session-Token"

var errNotAuthenticated = pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Missing or invalid session", http.StatusUnauthorized)

// CurrentUser pulls the identity resolved by the session middleware. When
// absent the request is aborted with 401; handlers can return immediately.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		c.JSON(errNotAuthenticated.HTTPStatus, errNotAuthenticated.ToHTTPError())
		return entities.User{}, false
	}
	u, ok := v.(entities.User)
	if !ok {
		c.JSON(errNotAuthenticated.HTTPStatus, errNotAuthenticated.ToHTTPError())
		return entities.User{}, false
	}
	return u, true
}
