package request

// ScreenRequest is the screen/table registration payload. Difficulty and
// weight are trigger-computed server-side and deliberately absent.
type ScreenRequest struct {
	TableName  string `json:"nome_tabela" binding:"required"`
	Kind       string `json:"tipo_tabela" binding:"required"`
	Module     string `json:"modulo" binding:"required"`
	FieldCount int    `json:"qtd_campos" binding:"required"`
}
