package dataservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		if _, err := New("  ", "key"); err != ErrMissingDataServiceURL {
			t.Fatalf("expected ErrMissingDataServiceURL, got %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := New("http://ds.local", ""); err != ErrMissingDataServiceKey {
			t.Fatalf("expected ErrMissingDataServiceKey, got %v", err)
		}
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		c, err := New("http://ds.local/", "key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.baseURL != "http://ds.local" {
			t.Fatalf("unexpected base url: %q", c.baseURL)
		}
	})
}

func TestQueryEncode(t *testing.T) {
	q := NewQuery().
		Select("id", "nome_tabela").
		Eq("modulo", "Financeiro").
		IsNull("tecnico_id").
		IsTrue("ativo").
		Gte("qtd_campos", 5).
		Lte("qtd_campos", 30).
		Order("qtd_campos", "asc").
		Limit(10)

	want := "select=id%2Cnome_tabela" +
		"&modulo=eq.Financeiro" +
		"&tecnico_id=is.null" +
		"&ativo=is.true" +
		"&qtd_campos=gte.5" +
		"&qtd_campos=lte.30" +
		"&order=qtd_campos.asc" +
		"&limit=10"
	if got := q.Encode(); got != want {
		t.Fatalf("unexpected encoding:\n got %q\nwant %q", got, want)
	}
}

func TestClientHeaders(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "service-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []map[string]any
	if err := c.Get(context.Background(), "controle_api", NewQuery().Select("id"), &rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotReq.Header.Get("apikey") != "service-key" {
		t.Fatalf("expected apikey header, got %q", gotReq.Header.Get("apikey"))
	}
	if gotReq.Header.Get("Authorization") != "Bearer service-key" {
		t.Fatalf("expected bearer header, got %q", gotReq.Header.Get("Authorization"))
	}
	if gotReq.URL.Path != "/rest/v1/controle_api" {
		t.Fatalf("unexpected path: %q", gotReq.URL.Path)
	}
	if gotReq.URL.RawQuery != "select=id" {
		t.Fatalf("unexpected query: %q", gotReq.URL.RawQuery)
	}
	if gotReq.Header.Get("Prefer") != "" {
		t.Fatalf("GET must not ask for representation, got %q", gotReq.Header.Get("Prefer"))
	}
}

func TestClientUpdateAsksForRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("expected PATCH, got %s", r.Method)
		}
		if r.Header.Get("Prefer") != "return=representation" {
			t.Fatalf("expected representation preference, got %q", r.Header.Get("Prefer"))
		}
		w.Write([]byte(`[{"id":"w-1"}]`))
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "key")

	var rows []struct {
		ID string `json:"id"`
	}
	err := c.Update(context.Background(), "controle_api", NewQuery().Eq("id", "w-1"), map[string]string{"tela": "X"}, &rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "w-1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestClientRPC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/rpc/iniciar_trabalho" {
			t.Fatalf("unexpected path: %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, "key")
	err := c.RPC(context.Background(), "iniciar_trabalho", map[string]string{"p_controle_api_id": "w-1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestErrorFromResponse(t *testing.T) {
	t.Run("message field wins", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"duplicate key"}`))
		}))
		defer srv.Close()

		c, _ := New(srv.URL, "key")
		err := c.Insert(context.Background(), "controle_api", map[string]string{}, nil)
		if err == nil || err.Error() != "duplicate key" {
			t.Fatalf("expected duplicate key, got %v", err)
		}
	})

	t.Run("raw text fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		c, _ := New(srv.URL, "key")
		err := c.Get(context.Background(), "controle_api", nil, nil)
		if err == nil || err.Error() != "upstream exploded" {
			t.Fatalf("expected raw text, got %v", err)
		}
	})

	t.Run("generic status fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c, _ := New(srv.URL, "key")
		err := c.Get(context.Background(), "controle_api", nil, nil)
		if err == nil || err.Error() != "HTTP 500" {
			t.Fatalf("expected HTTP 500, got %v", err)
		}
	})
}
