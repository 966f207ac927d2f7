package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mantranwebapi/internal/adapter/http/handlers/mocks"
	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestScreenHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewScreenHandler(uc)

	r := gin.New()
	r.GET("/v1/screens", h.List)

	uc.EXPECT().List(gomock.Any(), "cont", "Financeiro").
		Return([]entities.WorkItem{{ID: "w-1", TableName: "CONTAS_PAGAR"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/screens?search=cont&module=Financeiro", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestScreenHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewScreenHandler(uc)

		r := gin.New()
		r.POST("/v1/screens", asUser(testAdmin()), h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/screens", bytes.NewBufferString(`{"nome_tabela":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewScreenHandler(uc)

		r := gin.New()
		r.POST("/v1/screens", asUser(testAdmin()), h.Register)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(entities.WorkItem{}, usecase.ErrInvalidModule)

		req := httptest.NewRequest(http.MethodPost, "/v1/screens",
			bytes.NewBufferString(`{"nome_tabela":"ContasPagar","tipo_tabela":"Cadastro","modulo":"RH","qtd_campos":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("creates with viewer as registrar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewScreenHandler(uc)

		r := gin.New()
		r.POST("/v1/screens", asUser(testAdmin()), h.Register)

		uc.EXPECT().Register(gomock.Any(), usecase.CatalogInput{
			TableName:    "ContasPagar",
			Kind:         entities.WorkItemKindCadastro,
			Module:       "Financeiro",
			FieldCount:   10,
			RegisteredBy: "a-1",
		}).Return(entities.WorkItem{ID: "w-9", TableName: "CONTAS_PAGAR", Difficulty: "Media"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/screens",
			bytes.NewBufferString(`{"nome_tabela":"ContasPagar","tipo_tabela":"Cadastro","modulo":"Financeiro","qtd_campos":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			ID         string `json:"id"`
			Difficulty string `json:"difficulty"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body.ID != "w-9" || body.Difficulty != "Media" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestScreenHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewScreenHandler(uc)

	r := gin.New()
	r.PATCH("/v1/screens/:id", asUser(testAdmin()), h.Update)

	uc.EXPECT().Update(gomock.Any(), "w-404", gomock.Any()).
		Return(entities.WorkItem{}, usecase.ErrWorkItemNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/v1/screens/w-404",
		bytes.NewBufferString(`{"nome_tabela":"ContasPagar","tipo_tabela":"Cadastro","modulo":"Financeiro","qtd_campos":10}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestScreenHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewScreenHandler(uc)

	r := gin.New()
	r.DELETE("/v1/screens/:id", asUser(testAdmin()), h.Delete)

	uc.EXPECT().Delete(gomock.Any(), "w-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/screens/w-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
