package entities

// Status is one of the three per-facet statuses of a WorkItem
// (status_api, status_teste, status_documentacao).
//
// The concrete spellings are NOT fixed by this package: two schema
// generations of the external store spell the terminal value differently
// ("Finalizado" vs "OK"). The live spellings come from StatusVocabulary,
// resolved once from configuration and injected where needed.

type Status string

// StatusField names one of the three independent sub-status columns.
type StatusField string

const (
	StatusFieldAPI           StatusField = "status_api"
	StatusFieldTest          StatusField = "status_teste"
	StatusFieldDocumentation StatusField = "status_documentacao"
)

// ValidStatusField reports whether f is one of the three known columns.
func ValidStatusField(f StatusField) bool {
	switch f {
	case StatusFieldAPI, StatusFieldTest, StatusFieldDocumentation:
		return true
	}
	return false
}

// StatusVocabulary carries the live spellings of the pending/working/terminal
// values used by the external schema.
type StatusVocabulary struct {
	Pending  Status
	Working  Status
	Terminal Status
}

// DefaultStatusVocabulary matches the current schema generation.
func DefaultStatusVocabulary() StatusVocabulary {
	return StatusVocabulary{
		Pending:  "Pendente",
		Working:  "Trabalhando",
		Terminal: "Finalizado",
	}
}

// Valid reports whether s belongs to the vocabulary.
func (v StatusVocabulary) Valid(s Status) bool {
	return s == v.Pending || s == v.Working || s == v.Terminal
}
