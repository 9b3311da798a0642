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

type mockProductRepo struct {
	products     map[uint]*models.Product
	nextID       uint
	findPageArgs []int
}

func newMockProductRepo(products ...models.Product) *mockProductRepo {
	repo := &mockProductRepo{products: map[uint]*models.Product{}, nextID: 1}
	for i := range products {
		p := products[i]
		repo.products[p.ID] = &p
		if p.ID >= repo.nextID {
			repo.nextID = p.ID + 1
		}
	}
	return repo
}

func (m *mockProductRepo) Find(id uint) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockProductRepo) FindPage(page, limit int) ([]models.Product, error) {
	m.findPageArgs = []int{page, limit}
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) Save(product *models.Product) error {
	if product.ID == 0 {
		product.ID = m.nextID
		m.nextID++
	}
	clone := *product
	m.products[product.ID] = &clone
	return nil
}

func (m *mockProductRepo) Remove(product *models.Product) error {
	delete(m.products, product.ID)
	return nil
}

type stubBrandFinder struct {
	brands map[uint]*models.Brand
}

func (s *stubBrandFinder) Find(id uint) (*models.Brand, error) {
	if b, ok := s.brands[id]; ok {
		return b, nil
	}
	return nil, repository.ErrNotFound
}

type stubCategoryFinder struct {
	categories map[uint]*models.Category
}

func (s *stubCategoryFinder) Find(id uint) (*models.Category, error) {
	if c, ok := s.categories[id]; ok {
		return c, nil
	}
	return nil, repository.ErrNotFound
}

func newProductRouter(repo *mockProductRepo, brands *stubBrandFinder, categories *stubCategoryFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(repo, brands, categories)
	r := gin.New()
	r.GET("/api/product/list", h.List)
	r.POST("/api/product/create", asAdmin(), h.Create)
	r.GET("/api/product/:id", h.Detail)
	r.PUT("/api/product/:id", asAdmin(), h.Edit)
	r.DELETE("/api/product/:id", asAdmin(), h.Delete)
	return r
}

func productFixtures() (*mockProductRepo, *stubBrandFinder, *stubCategoryFinder) {
	brand := &models.Brand{Name: "Samsung"}
	brand.ID = 1
	category := &models.Category{Name: "Smartphone"}
	category.ID = 2
	return newMockProductRepo(),
		&stubBrandFinder{brands: map[uint]*models.Brand{1: brand}},
		&stubCategoryFinder{categories: map[uint]*models.Category{2: category}}
}

func TestProductListAlwaysPaginated(t *testing.T) {
	repo, brands, categories := productFixtures()
	r := newProductRouter(repo, brands, categories)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/product/list", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{1, repository.DefaultLimit}, repo.findPageArgs)
}

func TestProductCreate(t *testing.T) {
	t.Run("références connues", func(t *testing.T) {
		repo, brands, categories := productFixtures()
		r := newProductRouter(repo, brands, categories)

		body := `{"name":"Galaxy S23","description":"Un smartphone.","price":899.99,"sku":"SM-S911B","brandId":1,"categoryId":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/product/create", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var out productRead
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.NotNil(t, out.Brand)
		assert.Equal(t, "Samsung", out.Brand.Name)
		require.NotNil(t, out.Category)
		assert.Equal(t, "Smartphone", out.Category.Name)
		assert.Equal(t, "/api/product/1", w.Header().Get("location"))
	})

	t.Run("références inconnues laissées à null", func(t *testing.T) {
		repo, brands, categories := productFixtures()
		r := newProductRouter(repo, brands, categories)

		body := `{"name":"Galaxy S23","description":"Un smartphone.","price":899.99,"sku":"SM-S911B","brandId":42,"categoryId":42}`
		req := httptest.NewRequest(http.MethodPost, "/api/product/create", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var out productRead
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Nil(t, out.Brand)
		assert.Nil(t, out.Category)
		assert.Nil(t, repo.products[1].BrandID)
		assert.Nil(t, repo.products[1].CategoryID)
	})

	t.Run("prix absent", func(t *testing.T) {
		repo, brands, categories := productFixtures()
		r := newProductRouter(repo, brands, categories)

		body := `{"name":"Galaxy S23","description":"Un smartphone.","sku":"SM-S911B"}`
		req := httptest.NewRequest(http.MethodPost, "/api/product/create", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Le prix est obligatoire")
	})

	t.Run("disponible à faux par défaut", func(t *testing.T) {
		repo, brands, categories := productFixtures()
		r := newProductRouter(repo, brands, categories)

		body := `{"name":"Galaxy S23","description":"Un smartphone.","price":899.99,"sku":"SM-S911B"}`
		req := httptest.NewRequest(http.MethodPost, "/api/product/create", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, repo.products[1].Available)
	})
}

func TestProductEditPartial(t *testing.T) {
	brandID := uint(1)
	product := models.Product{
		Name:        "Galaxy S23",
		Description: "Un smartphone.",
		Price:       899.99,
		SKU:         "SM-S911B",
		Available:   true,
		BrandID:     &brandID,
	}
	product.ID = 10

	t.Run("seul le prix change", func(t *testing.T) {
		repo, brands, categories := productFixtures()
		require.NoError(t, repo.Save(&product))
		r := newProductRouter(repo, brands, categories)

		req := httptest.NewRequest(http.MethodPut, "/api/product/10", bytes.NewBufferString(`{"price":799.99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		saved := repo.products[10]
		assert.Equal(t, 799.99, saved.Price)
		assert.Equal(t, "Galaxy S23", saved.Name)
		require.NotNil(t, saved.BrandID)
		assert.Equal(t, uint(1), *saved.BrandID)
	})

	t.Run("brandId inconnu remet la référence à null", func(t *testing.T) {
		repo, brands, categories := productFixtures()
		require.NoError(t, repo.Save(&product))
		r := newProductRouter(repo, brands, categories)

		req := httptest.NewRequest(http.MethodPut, "/api/product/10", bytes.NewBufferString(`{"brandId":42}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Nil(t, repo.products[10].BrandID)
	})

	t.Run("nom vidé refusé", func(t *testing.T) {
		repo, brands, categories := productFixtures()
		require.NoError(t, repo.Save(&product))
		r := newProductRouter(repo, brands, categories)

		req := httptest.NewRequest(http.MethodPut, "/api/product/10", bytes.NewBufferString(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Un nom de produit est obligatoire")
	})
}

func TestProductDetailNotFound(t *testing.T) {
	repo, brands, categories := productFixtures()
	r := newProductRouter(repo, brands, categories)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/product/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Produit introuvable")
}
