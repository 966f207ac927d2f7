package repository

import (
	"context"
	"net/http"
	"testing"
)

func TestTimeEntryRestRepository_OpenWorkItemIDs(t *testing.T) {
	t.Run("all technicians", func(t *testing.T) {
		var gotQuery string
		ds := newFakeDataService(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`[{"controle_api_id":"w-1"},{"controle_api_id":"w-3"}]`))
		})

		repo := NewTimeEntryRestRepository(ds)
		ids, err := repo.OpenWorkItemIDs(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 || ids[0] != "w-1" || ids[1] != "w-3" {
			t.Fatalf("unexpected ids: %v", ids)
		}
		if gotQuery != "select=controle_api_id&fim=is.null" {
			t.Fatalf("unexpected query %q", gotQuery)
		}
	})

	t.Run("scoped to one technician", func(t *testing.T) {
		var gotQuery string
		ds := newFakeDataService(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`[]`))
		})

		repo := NewTimeEntryRestRepository(ds)
		ids, err := repo.OpenWorkItemIDs(context.Background(), "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 0 {
			t.Fatalf("expected no ids, got %v", ids)
		}
		if gotQuery != "select=controle_api_id&tecnico_id=eq.t-1&fim=is.null" {
			t.Fatalf("unexpected query %q", gotQuery)
		}
	})
}
