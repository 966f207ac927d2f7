package repository

import (
	"context"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/infrastructure/dataservice"
	"mantranwebapi/internal/usecase/interfaces"
)

// ReportRestRepository reads the reporting views. The views compute the
// week windows and hour sums server-side.

type ReportRestRepository struct {
	ds *dataservice.Client
}

var _ interfaces.IReportRepository = (*ReportRestRepository)(nil)

func NewReportRestRepository(ds *dataservice.Client) *ReportRestRepository {
	return &ReportRestRepository{ds: ds}
}

func (r *ReportRestRepository) TechnicianWeekHours(ctx context.Context) ([]entities.TechnicianWeekHours, error) {
	q := dataservice.NewQuery().
		Select("tecnico_id", "tecnico_nome", "meta_semanal", "horas_trabalhadas")
	var rows []entities.TechnicianWeekHours
	if err := r.ds.Get(ctx, "vw_horas_tecnico_semana", q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRestRepository) TechnicianWeekScreens(ctx context.Context) ([]entities.TechnicianWeekScreens, error) {
	q := dataservice.NewQuery().
		Select("tecnico_id", "tecnico_nome", "telas_finalizadas")
	var rows []entities.TechnicianWeekScreens
	if err := r.ds.Get(ctx, "vw_produtividade_telas_semana", q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRestRepository) AverageHoursPerScreen(ctx context.Context) (float64, error) {
	q := dataservice.NewQuery().
		Select("media_horas_por_tela").
		Limit(1)
	var rows []entities.AverageHoursPerScreen
	if err := r.ds.Get(ctx, "vw_media_horas_por_tela", q, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Hours, nil
}
