package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "mantranwebapi/internal/adapter/http/dto/request"
	response "mantranwebapi/internal/adapter/http/dto/response"
	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/usecase"
	"mantranwebapi/pkg"
)

var errInvalidScreenPayload = pkg.NewDomainErrorSimple("INVALID_SCREEN_INPUT", "Invalid screen payload", http.StatusBadRequest)

// ScreenHandler is the screen/table registration form surface.

type ScreenHandler struct {
	catalog usecase.ICatalogUseCase
}

func NewScreenHandler(catalog usecase.ICatalogUseCase) *ScreenHandler {
	return &ScreenHandler{catalog: catalog}
}

// List returns the catalog, optionally narrowed by module and a
// case-insensitive containment search.
//
// @Summary      List screens
// @Tags         screens
// @Produce      json
// @Param        search  query  string  false  "containment search"
// @Param        module  query  string  false  "module filter"
// @Success      200  {array}   response.WorkItemResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /screens [get]
func (h *ScreenHandler) List(c *gin.Context) {
	rows, err := h.catalog.List(c.Request.Context(), c.Query("search"), c.Query("module"))
	if err != nil {
		appErr := mapScreenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItems(rows, nil))
}

// Register creates a screen. Difficulty and weight come back computed by
// the store's trigger.
//
// @Summary      Register a screen
// @Tags         screens
// @Accept       json
// @Produce      json
// @Param        payload  body  request.ScreenRequest  true  "screen"
// @Success      201  {object}  response.WorkItemResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /screens [post]
func (h *ScreenHandler) Register(c *gin.Context) {
	viewer, ok := CurrentUser(c)
	if !ok {
		return
	}
	var payload request.ScreenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScreenPayload.HTTPStatus, errInvalidScreenPayload.ToHTTPError())
		return
	}

	created, err := h.catalog.Register(c.Request.Context(), usecase.CatalogInput{
		TableName:    payload.TableName,
		Kind:         entities.WorkItemKind(payload.Kind),
		Module:       payload.Module,
		FieldCount:   payload.FieldCount,
		RegisteredBy: viewer.ID,
	})
	if err != nil {
		appErr := mapScreenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkItem(created))
}

// Update rewrites the registration fields of a screen.
//
// @Summary      Update a screen
// @Tags         screens
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "work item id"
// @Param        payload  body  request.ScreenRequest  true  "screen"
// @Success      200  {object}  response.WorkItemResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /screens/{id} [patch]
func (h *ScreenHandler) Update(c *gin.Context) {
	viewer, ok := CurrentUser(c)
	if !ok {
		return
	}
	var payload request.ScreenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScreenPayload.HTTPStatus, errInvalidScreenPayload.ToHTTPError())
		return
	}

	updated, err := h.catalog.Update(c.Request.Context(), c.Param("id"), usecase.CatalogInput{
		TableName:    payload.TableName,
		Kind:         entities.WorkItemKind(payload.Kind),
		Module:       payload.Module,
		FieldCount:   payload.FieldCount,
		RegisteredBy: viewer.ID,
	})
	if err != nil {
		appErr := mapScreenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItem(updated))
}

// Delete removes a screen registration for good.
//
// @Summary      Delete a screen
// @Tags         screens
// @Produce      json
// @Param        id  path  string  true  "work item id"
// @Success      204
// @Failure      500  {object}  pkg.HTTPError
// @Router       /screens/{id} [delete]
func (h *ScreenHandler) Delete(c *gin.Context) {
	if _, ok := CurrentUser(c); !ok {
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapScreenError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapScreenError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTableName),
		errors.Is(err, usecase.ErrInvalidKind),
		errors.Is(err, usecase.ErrInvalidModule),
		errors.Is(err, usecase.ErrInvalidFieldCount),
		errors.Is(err, usecase.ErrInvalidWorkItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkItemNotFound):
		return pkg.NewDomainErrorSimple("SCREEN_NOT_FOUND", "Screen not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("EXTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
