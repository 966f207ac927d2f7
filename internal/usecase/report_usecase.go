package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/config"
	"mantranwebapi/internal/usecase/interfaces"
)

var ErrUnknownRole = errors.New("unknown role")

// Dashboard is the role-dependent aggregate view. Admin gets the full
// per-technician rollups, productivity and the completion projection;
// technicians get the summary of their own items only.
type Dashboard struct {
	Summary       StatusSummary          `json:"summary"`
	PerTechnician []TechnicianSummary    `json:"per_technician,omitempty"`
	Productivity  []ProductivityRow      `json:"productivity,omitempty"`
	WeekHours     []entities.TechnicianWeekHours `json:"week_hours,omitempty"`
	Projection    *Projection            `json:"projection,omitempty"`
}

// CompletedReport is the finished-work view plus the store-computed average
// hours per screen.
type CompletedReport struct {
	Items                 []entities.WorkItem `json:"items"`
	AverageHoursPerScreen float64             `json:"average_hours_per_screen"`
}

type IReportUseCase interface {
	Dashboard(ctx context.Context, viewer entities.User) (Dashboard, error)
	Completed(ctx context.Context) (CompletedReport, error)
}

type ReportUseCase struct {
	items   interfaces.IWorkItemRepository
	entries interfaces.ITimeEntryRepository
	reports interfaces.IReportRepository
	vocab   entities.StatusVocabulary
	report  config.ReportConfig
	now     func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	items interfaces.IWorkItemRepository,
	entries interfaces.ITimeEntryRepository,
	reports interfaces.IReportRepository,
	vocab entities.StatusVocabulary,
	report config.ReportConfig,
) *ReportUseCase {
	return &ReportUseCase{
		items:   items,
		entries: entries,
		reports: reports,
		vocab:   vocab,
		report:  report,
		now:     time.Now,
	}
}

func (u *ReportUseCase) Dashboard(ctx context.Context, viewer entities.User) (Dashboard, error) {
	switch viewer.Role {
	case entities.RoleAdmin:
		return u.adminDashboard(ctx)
	case entities.RoleTechnician:
		return u.technicianDashboard(ctx, viewer.ID)
	}
	return Dashboard{}, fmt.Errorf("%w: %q", ErrUnknownRole, viewer.Role)
}

func (u *ReportUseCase) adminDashboard(ctx context.Context) (Dashboard, error) {
	items, err := u.items.ListAll(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	openIDs, err := u.entries.OpenWorkItemIDs(ctx, "")
	if err != nil {
		return Dashboard{}, err
	}
	screens, err := u.reports.TechnicianWeekScreens(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	hours, err := u.reports.TechnicianWeekHours(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	summary := Summarize(items, openIDs, u.vocab)
	return Dashboard{
		Summary:       summary,
		PerTechnician: GroupByTechnician(items, openIDs, u.vocab),
		Productivity:  WeeklyProductivity(screens, u.report.WeeklyScreenTarget),
		WeekHours:     hours,
		Projection: ProjectCompletionDate(
			summary.Pending, summary.InProgress,
			u.report.HoursPerScreen, u.report.HoursPerDay,
			u.now(),
		),
	}, nil
}

func (u *ReportUseCase) technicianDashboard(ctx context.Context, technicianID string) (Dashboard, error) {
	items, err := u.items.ListByTechnician(ctx, technicianID)
	if err != nil {
		return Dashboard{}, err
	}
	openIDs, err := u.entries.OpenWorkItemIDs(ctx, technicianID)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Summary: Summarize(items, openIDs, u.vocab)}, nil
}

func (u *ReportUseCase) Completed(ctx context.Context) (CompletedReport, error) {
	items, err := u.items.ListCompleted(ctx)
	if err != nil {
		return CompletedReport{}, err
	}
	avg, err := u.reports.AverageHoursPerScreen(ctx)
	if err != nil {
		return CompletedReport{}, err
	}
	return CompletedReport{Items: items, AverageHoursPerScreen: avg}, nil
}
