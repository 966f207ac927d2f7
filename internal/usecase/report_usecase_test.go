package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/config"
	mock_interfaces "mantranwebapi/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func reportDeps(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIWorkItemRepository, *mock_interfaces.MockITimeEntryRepository, *mock_interfaces.MockIReportRepository) {
	ctrl := gomock.NewController(t)
	items := mock_interfaces.NewMockIWorkItemRepository(ctrl)
	entries := mock_interfaces.NewMockITimeEntryRepository(ctrl)
	reports := mock_interfaces.NewMockIReportRepository(ctrl)
	return ctrl, items, entries, reports
}

func TestReportUseCase_Dashboard(t *testing.T) {
	cfg := config.Default().Report

	t.Run("unknown role", func(t *testing.T) {
		ctrl, items, entries, reports := reportDeps(t)
		defer ctrl.Finish()
		uc := NewReportUseCase(items, entries, reports, vocab(), cfg)

		_, err := uc.Dashboard(context.Background(), entities.User{ID: "u-1", Role: "Gerente"})
		if !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("expected ErrUnknownRole, got %v", err)
		}
	})

	t.Run("admin gets full rollups and projection", func(t *testing.T) {
		ctrl, items, entries, reports := reportDeps(t)
		defer ctrl.Finish()
		uc := NewReportUseCase(items, entries, reports, vocab(), cfg)
		monday := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return monday }

		all := []entities.WorkItem{
			pendingItem("1"),
			pendingItem("2"),
			completedItem("3", "Ana"),
		}
		items.EXPECT().ListAll(gomock.Any()).Return(all, nil)
		entries.EXPECT().OpenWorkItemIDs(gomock.Any(), "").Return([]string{"2"}, nil)
		reports.EXPECT().TechnicianWeekScreens(gomock.Any()).
			Return([]entities.TechnicianWeekScreens{{TechnicianID: "t-Ana", TechnicianName: "Ana", ScreensFinished: 5}}, nil)
		reports.EXPECT().TechnicianWeekHours(gomock.Any()).
			Return([]entities.TechnicianWeekHours{{TechnicianID: "t-Ana", TechnicianName: "Ana", WeeklyTarget: 40, HoursWorked: 32}}, nil)

		d, err := uc.Dashboard(context.Background(), entities.User{ID: "a-1", Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Summary.Total != 3 || d.Summary.Pending != 2 || d.Summary.InProgress != 1 || d.Summary.Complete != 1 {
			t.Fatalf("unexpected summary: %+v", d.Summary)
		}
		if len(d.PerTechnician) != 1 || d.PerTechnician[0].Name != "Ana" {
			t.Fatalf("unexpected per-technician rows: %+v", d.PerTechnician)
		}
		if len(d.Productivity) != 1 || d.Productivity[0].Band != BandGreen {
			t.Fatalf("unexpected productivity: %+v", d.Productivity)
		}
		if len(d.WeekHours) != 1 {
			t.Fatalf("unexpected week hours: %+v", d.WeekHours)
		}
		if d.Projection == nil || d.Projection.RemainingItems != 3 {
			t.Fatalf("unexpected projection: %+v", d.Projection)
		}
	})

	t.Run("technician gets own summary only", func(t *testing.T) {
		ctrl, items, entries, reports := reportDeps(t)
		defer ctrl.Finish()
		uc := NewReportUseCase(items, entries, reports, vocab(), cfg)

		mine := []entities.WorkItem{pendingItem("1"), completedItem("2", "Ana")}
		items.EXPECT().ListByTechnician(gomock.Any(), "t-1").Return(mine, nil)
		entries.EXPECT().OpenWorkItemIDs(gomock.Any(), "t-1").Return(nil, nil)

		d, err := uc.Dashboard(context.Background(), entities.User{ID: "t-1", Role: entities.RoleTechnician})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Summary.Total != 2 || d.Summary.Complete != 1 {
			t.Fatalf("unexpected summary: %+v", d.Summary)
		}
		if d.PerTechnician != nil || d.Productivity != nil || d.Projection != nil {
			t.Fatalf("technician view must not carry admin rollups: %+v", d)
		}
	})
}

func TestReportUseCase_Completed(t *testing.T) {
	ctrl, items, entries, reports := reportDeps(t)
	defer ctrl.Finish()
	uc := NewReportUseCase(items, entries, reports, vocab(), config.Default().Report)

	items.EXPECT().ListCompleted(gomock.Any()).
		Return([]entities.WorkItem{completedItem("1", "Ana")}, nil)
	reports.EXPECT().AverageHoursPerScreen(gomock.Any()).Return(6.5, nil)

	got, err := uc.Completed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 1 || got.AverageHoursPerScreen != 6.5 {
		t.Fatalf("unexpected report: %+v", got)
	}
}
