package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "mantranwebapi/internal/adapter/http/dto/request"
	response "mantranwebapi/internal/adapter/http/dto/response"
	"mantranwebapi/internal/usecase"
	"mantranwebapi/pkg"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler handles session creation and teardown.

type AuthHandler struct {
	sessions usecase.ISessionUseCase
}

func NewAuthHandler(sessions usecase.ISessionUseCase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates against the usuario table and issues a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "credentials"
// @Success      200      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, user, err := h.sessions.Login(c.Request.Context(), payload.Login, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(token, user))
}

// Logout destroys the session behind the token header. Unknown tokens are
// already logged out; both outcomes look the same to the caller.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Param        X-Session-Token  header  string  true  "session token"
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	_ = h.sessions.Logout(c.GetHeader(SessionTokenHeader))
	c.Status(http.StatusNoContent)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid login or password (or inactive user)", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("EXTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
