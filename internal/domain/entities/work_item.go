package entities

import "time"

// WorkItemKind classifies the screen backing a work item.
type WorkItemKind string

const (
	WorkItemKindCadastro  WorkItemKind = "Cadastro"
	WorkItemKindDocumento WorkItemKind = "Documento"
)

// Modules is the fixed enumeration of product modules a screen belongs to.
var Modules = []string{"Operacao", "Financeiro", "WMS", "Seguranca", "Oficina"}

// ValidModule reports whether m is one of the known modules.
func ValidModule(m string) bool {
	for _, known := range Modules {
		if m == known {
			return true
		}
	}
	return false
}

// WorkItem is a unit of development work (a "screen") tracked through
// API/Test/Documentation sub-statuses.
//
// Storage model (external data service, table controle_api):
//   - id assigned by the store on insert
//   - nivel_api and peso_api are derived server-side from qtd_campos by a
//     trigger and must never be written by this service
//   - tecnico_id is null while the item is unassigned; the claim protocol
//     relies on a conditional update matching tecnico_id=is.null
type WorkItem struct {
	ID        string       `json:"id"`
	TableName string       `json:"nome_tabela"`
	Screen    string       `json:"tela,omitempty"`
	Kind      WorkItemKind `json:"tipo_tabela"`
	Module    string       `json:"modulo"`

	FieldCount int    `json:"qtd_campos"`
	Difficulty string `json:"nivel_api,omitempty"`
	Weight     int    `json:"peso_api,omitempty"`

	TechnicianID   *string `json:"tecnico_id"`
	TechnicianName *string `json:"tecnico_nome"`

	StatusAPI           Status `json:"status_api"`
	StatusTest          Status `json:"status_teste"`
	StatusDocumentation Status `json:"status_documentacao"`

	Notes string `json:"observacoes,omitempty"`

	RegisteredBy string `json:"usuario_id,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"data_inicio"`
	FinishedAt *time.Time `json:"data_fim_real"`
}

// Assigned reports whether the item has been claimed by a technician.
func (w WorkItem) Assigned() bool {
	return w.TechnicianID != nil && *w.TechnicianID != ""
}

// Complete reports whether every facet reached the terminal value.
// A complete item is immutable to further lifecycle calls.
func (w WorkItem) Complete(v StatusVocabulary) bool {
	return w.StatusAPI == v.Terminal &&
		w.StatusTest == v.Terminal &&
		w.StatusDocumentation == v.Terminal
}

// StatusOf returns the current value of the given sub-status column.
func (w WorkItem) StatusOf(f StatusField) Status {
	switch f {
	case StatusFieldAPI:
		return w.StatusAPI
	case StatusFieldTest:
		return w.StatusTest
	case StatusFieldDocumentation:
		return w.StatusDocumentation
	}
	return ""
}
