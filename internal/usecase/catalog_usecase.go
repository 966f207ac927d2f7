package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/usecase/interfaces"
)

var (
	ErrInvalidTableName  = errors.New("invalid table name")
	ErrInvalidKind       = errors.New("invalid kind")
	ErrInvalidModule     = errors.New("invalid module")
	ErrInvalidFieldCount = errors.New("field count must be > 0")
)

// CatalogInput is the screen registration payload. Difficulty and weight
// are computed by the store from the field count and are never accepted
// from callers.
type CatalogInput struct {
	TableName    string
	Kind         entities.WorkItemKind
	Module       string
	FieldCount   int
	RegisteredBy string
}

// ICatalogUseCase covers the screen/table registration form: create,
// update, delete and the searchable listing.

type ICatalogUseCase interface {
	Register(ctx context.Context, in CatalogInput) (entities.WorkItem, error)
	Update(ctx context.Context, id string, in CatalogInput) (entities.WorkItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search, module string) ([]entities.WorkItem, error)
}

type CatalogUseCase struct {
	items interfaces.IWorkItemRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(items interfaces.IWorkItemRepository) *CatalogUseCase {
	return &CatalogUseCase{items: items}
}

func (u *CatalogUseCase) Register(ctx context.Context, in CatalogInput) (entities.WorkItem, error) {
	w, err := buildWorkItem(in)
	if err != nil {
		return entities.WorkItem{}, err
	}
	return u.items.Create(ctx, w)
}

func (u *CatalogUseCase) Update(ctx context.Context, id string, in CatalogInput) (entities.WorkItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}
	w, err := buildWorkItem(in)
	if err != nil {
		return entities.WorkItem{}, err
	}

	updated, err := u.items.Update(ctx, id, w)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if updated.ID == "" {
		return entities.WorkItem{}, ErrWorkItemNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkItemID
	}
	return u.items.Delete(ctx, id)
}

// List fetches the whole catalog and applies the module filter plus a
// case-insensitive containment search client-side, the way the store's
// query protocol cannot.
func (u *CatalogUseCase) List(ctx context.Context, search, module string) ([]entities.WorkItem, error) {
	rows, err := u.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if module == "" && search == "" {
		return rows, nil
	}

	out := make([]entities.WorkItem, 0, len(rows))
	for _, r := range rows {
		if module != "" && r.Module != module {
			continue
		}
		if search != "" &&
			!containsFold(r.TableName, search) &&
			!containsFold(string(r.Kind), search) &&
			!containsFold(r.Module, search) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func buildWorkItem(in CatalogInput) (entities.WorkItem, error) {
	name := NormalizeTableName(in.TableName)
	if name == "" {
		return entities.WorkItem{}, ErrInvalidTableName
	}
	if in.Kind != entities.WorkItemKindCadastro && in.Kind != entities.WorkItemKindDocumento {
		return entities.WorkItem{}, ErrInvalidKind
	}
	if !entities.ValidModule(in.Module) {
		return entities.WorkItem{}, ErrInvalidModule
	}
	if in.FieldCount <= 0 {
		return entities.WorkItem{}, ErrInvalidFieldCount
	}
	return entities.WorkItem{
		TableName:    name,
		Kind:         in.Kind,
		Module:       in.Module,
		FieldCount:   in.FieldCount,
		RegisteredBy: strings.TrimSpace(in.RegisteredBy),
	}, nil
}

var (
	sourceSuffixRe = regexp.MustCompile(`(?i)\.(jsx|tsx|js|ts)$`)
	lowerUpperRe   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymRe      = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
)

// NormalizeTableName turns a screen/component name into the canonical table
// spelling: "ContasPagar" → "CONTAS_PAGAR", "CTePage" → "CTE_PAGE". Names
// already in snake form are only uppercased.
func NormalizeTableName(name string) string {
	cleaned := strings.TrimSpace(sourceSuffixRe.ReplaceAllString(name, ""))
	if cleaned == "" {
		return ""
	}
	if strings.Contains(cleaned, "_") {
		return strings.ToUpper(cleaned)
	}
	snake := lowerUpperRe.ReplaceAllString(cleaned, "${1}_${2}")
	snake = acronymRe.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToUpper(snake)
}

func containsFold(hay, needle string) bool {
	return strings.Contains(strings.ToLower(hay), strings.ToLower(needle))
}
