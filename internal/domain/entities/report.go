package entities

// Rollup rows read from the external reporting views. The views own the
// time-window math; this service only classifies and formats.

// TechnicianWeekHours is a row of vw_horas_tecnico_semana.
type TechnicianWeekHours struct {
	TechnicianID   string  `json:"tecnico_id"`
	TechnicianName string  `json:"tecnico_nome"`
	WeeklyTarget   float64 `json:"meta_semanal"`
	HoursWorked    float64 `json:"horas_trabalhadas"`
}

// TechnicianWeekScreens is a row of vw_produtividade_telas_semana.
type TechnicianWeekScreens struct {
	TechnicianID    string `json:"tecnico_id"`
	TechnicianName  string `json:"tecnico_nome"`
	ScreensFinished int    `json:"telas_finalizadas"`
}

// AverageHoursPerScreen is the single row of vw_media_horas_por_tela.
type AverageHoursPerScreen struct {
	Hours float64 `json:"media_horas_por_tela"`
}
