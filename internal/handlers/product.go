package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/models"
	"github.com/mataxelle/BilMo/internal/repository"
	"github.com/mataxelle/BilMo/internal/utils"
	"github.com/mataxelle/BilMo/internal/validation"
)

type ProductProvider interface {
	Find(id uint) (*models.Product, error)
	FindPage(page, limit int) ([]models.Product, error)
	Save(product *models.Product) error
	Remove(product *models.Product) error
}

type BrandFinder interface {
	Find(id uint) (*models.Brand, error)
}

type CategoryFinder interface {
	Find(id uint) (*models.Category, error)
}

type ProductHandler struct {
	repo       ProductProvider
	brands     BrandFinder
	categories CategoryFinder
}

func NewProductHandler(repo ProductProvider, brands BrandFinder, categories CategoryFinder) *ProductHandler {
	return &ProductHandler{repo: repo, brands: brands, categories: categories}
}

// resolveBrand retourne nil pour un id absent ou inconnu : comportement
// permissif voulu, la référence reste à null.
func (h *ProductHandler) resolveBrand(id *uint) (*models.Brand, error) {
	if id == nil {
		return nil, nil
	}
	brand, err := h.brands.Find(*id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return brand, err
}

func (h *ProductHandler) resolveCategory(id *uint) (*models.Category, error) {
	if id == nil {
		return nil, nil
	}
	category, err := h.categories.Find(*id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return category, err
}

func (h *ProductHandler) List(c *gin.Context) {
	page, limit, _ := pageParams(c, repository.DefaultLimit)

	products, err := h.repo.FindPage(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
		return
	}

	admin := isAdmin(c)
	out := make([]productRead, len(products))
	for i, p := range products {
		out[i] = newProductRead(p, admin)
	}

	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		SKU         string   `json:"sku"`
		Available   *bool    `json:"available"`
		BrandID     *uint    `json:"brandId"`
		CategoryID  *uint    `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if violations := validation.ValidateProduct(input.Name, input.Description, input.SKU, input.Price); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	brand, err := h.resolveBrand(input.BrandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture marque"})
		return
	}
	category, err := h.resolveCategory(input.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégorie"})
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		SKU:         input.SKU,
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if brand != nil {
		product.BrandID = &brand.ID
		product.Brand = brand
	}
	if category != nil {
		product.CategoryID = &category.ID
		product.Category = category
	}

	if err := h.repo.Save(&product); err != nil {
		utils.LogFailedAction(c, "create", "product", "", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création"})
		return
	}

	utils.LogAction(c, "create", "product", fmt.Sprint(product.ID))

	c.Header("location", detailHref("product", product.ID))
	c.JSON(http.StatusOK, newProductRead(product, isAdmin(c)))
}

func (h *ProductHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}

	c.JSON(http.StatusOK, newProductRead(*product, isAdmin(c)))
}

// Edit applique une mise à jour partielle : seuls les champs présents dans le
// body écrasent l'existant. La validation porte sur l'entité résultante.
func (h *ProductHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		SKU         *string  `json:"sku"`
		Available   *bool    `json:"available"`
		BrandID     *uint    `json:"brandId"`
		CategoryID  *uint    `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	if violations := validation.ValidateProduct(product.Name, product.Description, product.SKU, &product.Price); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	// Les références ne changent que si le body les fournit ; un id inconnu
	// donne null, comme à la création.
	if input.BrandID != nil {
		brand, err := h.resolveBrand(input.BrandID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture marque"})
			return
		}
		product.Brand = brand
		product.BrandID = nil
		if brand != nil {
			product.BrandID = &brand.ID
		}
	}
	if input.CategoryID != nil {
		category, err := h.resolveCategory(input.CategoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégorie"})
			return
		}
		product.Category = category
		product.CategoryID = nil
		if category != nil {
			product.CategoryID = &category.ID
		}
	}

	if err := h.repo.Save(product); err != nil {
		utils.LogFailedAction(c, "edit", "product", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	utils.LogAction(c, "edit", "product", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}

	if err := h.repo.Remove(product); err != nil {
		utils.LogFailedAction(c, "delete", "product", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	utils.LogAction(c, "delete", "product", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}
