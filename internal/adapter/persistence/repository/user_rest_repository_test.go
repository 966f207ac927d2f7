package repository

import (
	"context"
	"net/http"
	"testing"
)

func TestUserRestRepository_FindByCredentials(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		var gotQuery string
		ds := newFakeDataService(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`[{"id":"u-1","nome":"Ana","login":"ana","perfil":"Tecnico","ativo":true,"meta_semanal":5}]`))
		})

		repo := NewUserRestRepository(ds)
		got, err := repo.FindByCredentials(context.Background(), "ana", "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "u-1" || string(got.Role) != "Tecnico" || got.WeeklyTarget != 5 {
			t.Fatalf("unexpected user: %+v", got)
		}
		if gotQuery != "select=id%2Cnome%2Clogin%2Cperfil%2Cativo%2Cmeta_semanal&login=eq.ana&senha=eq.pw&ativo=is.true&limit=1" {
			t.Fatalf("unexpected query %q", gotQuery)
		}
	})

	t.Run("no match yields zero user", func(t *testing.T) {
		ds := newFakeDataService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		repo := NewUserRestRepository(ds)
		got, err := repo.FindByCredentials(context.Background(), "ana", "wrong")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero user, got %+v", got)
		}
	})
}
