package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "mantranwebapi/internal/adapter/http/dto/request"
	response "mantranwebapi/internal/adapter/http/dto/response"
	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/usecase"
	"mantranwebapi/internal/usecase/interfaces"
	"mantranwebapi/pkg"
)

var errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)

// TaskHandler exposes the pending-task browsing, the claim protocol and the
// lifecycle transitions of a work item.

type TaskHandler struct {
	lifecycle usecase.ILifecycleUseCase
}

func NewTaskHandler(lifecycle usecase.ILifecycleUseCase) *TaskHandler {
	return &TaskHandler{lifecycle: lifecycle}
}

// Pending lists unassigned tasks, optionally filtered and ordered.
//
// @Summary      List pending tasks
// @Tags         tasks
// @Produce      json
// @Param        kind        query  string  false  "Cadastro|Documento"
// @Param        difficulty  query  string  false  "difficulty level"
// @Param        min_fields  query  int     false  "minimum field count"
// @Param        max_fields  query  int     false  "maximum field count"
// @Param        order_by    query  string  false  "order column"
// @Param        order_dir   query  string  false  "asc|desc"
// @Success      200  {array}   response.WorkItemResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /tasks/pending [get]
func (h *TaskHandler) Pending(c *gin.Context) {
	f := interfaces.PendingFilter{
		Kind:       c.Query("kind"),
		Difficulty: c.Query("difficulty"),
		OrderBy:    c.Query("order_by"),
		OrderDir:   c.Query("order_dir"),
	}
	if v := c.Query("min_fields"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
			return
		}
		f.MinFields = n
	}
	if v := c.Query("max_fields"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
			return
		}
		f.MaxFields = n
	}

	items, err := h.lifecycle.Pending(c.Request.Context(), f)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItems(items, nil))
}

// Claim assumes a pending task for the signed-in technician. Losing the
// race yields 409 and the caller should refresh the pending list.
//
// @Summary      Claim a pending task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id       path   string                true  "work item id"
// @Param        payload  body   request.ClaimRequest  true  "screen label"
// @Success      200  {object}  response.WorkItemResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{id}/claim [post]
func (h *TaskHandler) Claim(c *gin.Context) {
	viewer, ok := CurrentUser(c)
	if !ok {
		return
	}
	var payload request.ClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	claimed, err := h.lifecycle.Claim(c.Request.Context(), c.Param("id"), viewer, payload.ResolveScreen())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItem(claimed))
}

// Mine lists the signed-in technician's tasks with their in-progress flags.
//
// @Summary      List my tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   response.WorkItemResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /tasks/mine [get]
func (h *TaskHandler) Mine(c *gin.Context) {
	viewer, ok := CurrentUser(c)
	if !ok {
		return
	}
	items, openIDs, err := h.lifecycle.MyTasks(c.Request.Context(), viewer.ID)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItems(items, openIDs))
}

// Start opens a time entry on the task.
//
// @Summary      Start working
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "work item id"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{id}/start [post]
func (h *TaskHandler) Start(c *gin.Context) {
	h.transition(c, h.lifecycle.Start)
}

// Pause closes the open time entry on the task.
//
// @Summary      Pause working
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "work item id"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{id}/pause [post]
func (h *TaskHandler) Pause(c *gin.Context) {
	h.transition(c, h.lifecycle.Pause)
}

// Resume re-opens work after a pause.
//
// @Summary      Resume working
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "work item id"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{id}/resume [post]
func (h *TaskHandler) Resume(c *gin.Context) {
	h.transition(c, h.lifecycle.Resume)
}

// Finish finalizes the task once every facet is terminal.
//
// @Summary      Finalize a task
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "work item id"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{id}/finish [post]
func (h *TaskHandler) Finish(c *gin.Context) {
	h.transition(c, h.lifecycle.Finalize)
}

func (h *TaskHandler) transition(
	c *gin.Context,
	call func(ctx context.Context, workItemID string, technician entities.User) error,
) {
	viewer, ok := CurrentUser(c)
	if !ok {
		return
	}
	if err := call(c.Request.Context(), c.Param("id"), viewer); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStatus updates one of the three sub-status columns.
//
// @Summary      Set a sub-status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "work item id"
// @Param        payload  body  request.StatusUpdateRequest  true  "field and value"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{id}/status [patch]
func (h *TaskHandler) SetStatus(c *gin.Context) {
	if _, ok := CurrentUser(c); !ok {
		return
	}
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	err := h.lifecycle.SetSubStatus(
		c.Request.Context(),
		c.Param("id"),
		entities.StatusField(payload.Field),
		entities.Status(payload.Status),
	)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveNotes replaces the free-text notes of a task.
//
// @Summary      Save task notes
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id       path  string                true  "work item id"
// @Param        payload  body  request.NotesRequest  true  "notes"
// @Success      200  {object}  response.WorkItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /tasks/{id}/notes [patch]
func (h *TaskHandler) SaveNotes(c *gin.Context) {
	if _, ok := CurrentUser(c); !ok {
		return
	}
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	updated, err := h.lifecycle.SaveNotes(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItem(updated))
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkItemID),
		errors.Is(err, usecase.ErrScreenRequired),
		errors.Is(err, usecase.ErrInvalidStatusField),
		errors.Is(err, usecase.ErrInvalidStatusValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkItemNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskAlreadyClaimed):
		return pkg.NewDomainErrorSimple("TASK_ALREADY_CLAIMED", "Task already claimed by another technician", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkItemComplete),
		errors.Is(err, usecase.ErrTimerAlreadyRunning),
		errors.Is(err, usecase.ErrTimerNotRunning),
		errors.Is(err, usecase.ErrStatusesNotTerminal):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", err.Error(), err, http.StatusConflict)
	default:
		// External-call failures surface their raw message; there is no
		// retry and no local state was mutated.
		return pkg.NewDomainError("EXTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
