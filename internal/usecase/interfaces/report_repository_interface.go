package interfaces

import (
	"context"

	"mantranwebapi/internal/domain/entities"
)

// IReportRepository abstracts the reporting views of the external data
// service. The views own the week-window math server-side.
type IReportRepository interface {
	TechnicianWeekHours(ctx context.Context) ([]entities.TechnicianWeekHours, error)
	TechnicianWeekScreens(ctx context.Context) ([]entities.TechnicianWeekScreens, error)
	AverageHoursPerScreen(ctx context.Context) (float64, error)
}
