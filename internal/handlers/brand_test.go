package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataxelle/BilMo/internal/models"
	"github.com/mataxelle/BilMo/internal/repository"
)

type mockBrandRepo struct {
	brands       map[uint]*models.Brand
	nextID       uint
	findPageArgs []int
	saveErr      error
	removed      []uint
}

func newMockBrandRepo(brands ...models.Brand) *mockBrandRepo {
	repo := &mockBrandRepo{brands: map[uint]*models.Brand{}, nextID: 1}
	for i := range brands {
		b := brands[i]
		repo.brands[b.ID] = &b
		if b.ID >= repo.nextID {
			repo.nextID = b.ID + 1
		}
	}
	return repo
}

func (m *mockBrandRepo) Find(id uint) (*models.Brand, error) {
	if b, ok := m.brands[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockBrandRepo) FindAll() ([]models.Brand, error) {
	out := make([]models.Brand, 0, len(m.brands))
	for _, b := range m.brands {
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockBrandRepo) FindPage(page, limit int) ([]models.Brand, error) {
	m.findPageArgs = []int{page, limit}
	return m.FindAll()
}

func (m *mockBrandRepo) Save(brand *models.Brand) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if brand.ID == 0 {
		brand.ID = m.nextID
		m.nextID++
	}
	clone := *brand
	m.brands[brand.ID] = &clone
	return nil
}

func (m *mockBrandRepo) Remove(brand *models.Brand) error {
	delete(m.brands, brand.ID)
	m.removed = append(m.removed, brand.ID)
	return nil
}

// asAdmin simule un principal admin posé par AuthRequired.
func asAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_id", uint(1))
		c.Set("email", "admin@bilmo.com")
		c.Set("role", models.RoleAdmin)
		c.Next()
	}
}

func newBrandRouter(repo *mockBrandRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBrandHandler(repo)
	r := gin.New()
	r.GET("/api/brand/list", h.List)
	r.POST("/api/brand/create", asAdmin(), h.Create)
	r.GET("/api/brand/:id", h.Detail)
	r.PUT("/api/brand/:id", asAdmin(), h.Edit)
	r.DELETE("/api/brand/:id", asAdmin(), h.Delete)
	return r
}

func TestBrandList(t *testing.T) {
	brand := models.Brand{Name: "Samsung"}
	brand.ID = 1
	repo := newMockBrandRepo(brand)
	r := newBrandRouter(repo)

	t.Run("liste complète par défaut", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/brand/list", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var out []brandRead
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "Samsung", out[0].Name)
		assert.Equal(t, "/api/brand/1", out[0].Links["self"].Href)
		assert.Nil(t, repo.findPageArgs)
	})

	t.Run("pagination sur demande", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/brand/list?page=2&limit=3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []int{2, 3}, repo.findPageArgs)
	})
}

func TestBrandCreate(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantLocation string
	}{
		{name: "création valide", body: `{"name":"Apple"}`, wantStatus: http.StatusOK, wantLocation: "/api/brand/1"},
		{name: "nom vide", body: `{"name":""}`, wantStatus: http.StatusBadRequest},
		{name: "body invalide", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockBrandRepo()
			r := newBrandRouter(repo)

			req := httptest.NewRequest(http.MethodPost, "/api/brand/create", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("location"))
			}
		})
	}
}

func TestBrandCreateViolations(t *testing.T) {
	repo := newMockBrandRepo()
	r := newBrandRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/brand/create", bytes.NewBufferString(`{"name":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var payload struct {
		Errors []struct {
			Property string `json:"property"`
			Message  string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "name", payload.Errors[0].Property)
	assert.Equal(t, "Un nom de marque est obligatoire", payload.Errors[0].Message)
}

func TestBrandDetail(t *testing.T) {
	brand := models.Brand{Name: "Samsung"}
	brand.ID = 1
	r := newBrandRouter(newMockBrandRepo(brand))

	t.Run("existante", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/brand/1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Samsung")
	})

	t.Run("inconnue", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/brand/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Marque introuvable")
	})

	t.Run("identifiant invalide", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/brand/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Identifiant invalide")
	})
}

func TestBrandEdit(t *testing.T) {
	brand := models.Brand{Name: "Samsung"}
	brand.ID = 1
	repo := newMockBrandRepo(brand)
	r := newBrandRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/api/brand/1", bytes.NewBufferString(`{"name":"Samsung Electronics"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Samsung Electronics", repo.brands[1].Name)
}

func TestBrandDelete(t *testing.T) {
	brand := models.Brand{Name: "Samsung"}
	brand.ID = 1
	repo := newMockBrandRepo(brand)
	r := newBrandRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/brand/1", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []uint{1}, repo.removed)
	assert.Empty(t, repo.brands)
}
