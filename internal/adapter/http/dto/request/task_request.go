package request

import "strings"

// ClaimRequest carries the screen label required to assume a pending task.
type ClaimRequest struct {
	Screen string `json:"tela" binding:"required"`
}

func (r ClaimRequest) ResolveScreen() string {
	return strings.TrimSpace(r.Screen)
}

// StatusUpdateRequest sets one of the three sub-status columns.
type StatusUpdateRequest struct {
	Field  string `json:"campo" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// NotesRequest replaces the free-text notes of a work item. An empty string
// clears them.
type NotesRequest struct {
	Notes string `json:"observacoes"`
}
