package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "mantranwebapi/internal/adapter/http/dto/response"
	"mantranwebapi/internal/usecase"
	"mantranwebapi/pkg"
)

// DashboardHandler serves the aggregate views. The payload shape depends on
// the viewer's role: admins get the per-technician rollups, productivity
// bands and the completion projection, technicians only their own summary.

type DashboardHandler struct {
	reports usecase.IReportUseCase
}

func NewDashboardHandler(reports usecase.IReportUseCase) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// Dashboard returns the role-dependent aggregate view.
//
// @Summary      Dashboard
// @Tags         reports
// @Produce      json
// @Success      200  {object}  usecase.Dashboard
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	viewer, ok := CurrentUser(c)
	if !ok {
		return
	}
	dash, err := h.reports.Dashboard(c.Request.Context(), viewer)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Completed lists finished tasks plus the store-computed average hours per
// screen.
//
// @Summary      Completed tasks
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  pkg.HTTPError
// @Router       /tasks/completed [get]
func (h *DashboardHandler) Completed(c *gin.Context) {
	if _, ok := CurrentUser(c); !ok {
		return
	}
	report, err := h.reports.Completed(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":                    response.FromWorkItems(report.Items, nil),
		"average_hours_per_screen": report.AverageHoursPerScreen,
	})
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownRole):
		return pkg.NewDomainErrorSimple("UNKNOWN_ROLE", "Unknown role", http.StatusForbidden)
	default:
		return pkg.NewDomainError("EXTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
