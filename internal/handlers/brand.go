package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/cache"
	"github.com/mataxelle/BilMo/internal/models"
	"github.com/mataxelle/BilMo/internal/repository"
	"github.com/mataxelle/BilMo/internal/utils"
	"github.com/mataxelle/BilMo/internal/validation"
)

const brandListKey = "brand:list"

type BrandProvider interface {
	Find(id uint) (*models.Brand, error)
	FindAll() ([]models.Brand, error)
	FindPage(page, limit int) ([]models.Brand, error)
	Save(brand *models.Brand) error
	Remove(brand *models.Brand) error
}

type BrandHandler struct {
	repo BrandProvider
}

func NewBrandHandler(repo BrandProvider) *BrandHandler {
	return &BrandHandler{repo: repo}
}

// List retourne toutes les marques, ou une page si page/limit sont fournis.
func (h *BrandHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit, explicit := pageParams(c, repository.DefaultLimit)

	var brands []models.Brand
	var err error

	if explicit {
		brands, err = h.repo.FindPage(page, limit)
	} else if !cache.GetList(ctx, brandListKey, &brands) {
		brands, err = h.repo.FindAll()
		if err == nil {
			cache.SetList(ctx, brandListKey, brands)
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture marques"})
		return
	}

	admin := isAdmin(c)
	out := make([]brandRead, len(brands))
	for i, b := range brands {
		out[i] = newBrandRead(b, admin)
	}

	c.JSON(http.StatusOK, out)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if violations := validation.ValidateBrand(input.Name); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	brand := models.Brand{Name: input.Name}
	if err := h.repo.Save(&brand); err != nil {
		utils.LogFailedAction(c, "create", "brand", "", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création"})
		return
	}

	cache.Invalidate(c.Request.Context(), brandListKey)
	utils.LogAction(c, "create", "brand", fmt.Sprint(brand.ID))

	c.Header("location", detailHref("brand", brand.ID))
	c.JSON(http.StatusOK, newBrandRead(brand, isAdmin(c)))
}

func (h *BrandHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	brand, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Marque introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture marque"})
		return
	}

	c.JSON(http.StatusOK, newBrandRead(*brand, isAdmin(c)))
}

func (h *BrandHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	brand, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Marque introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture marque"})
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	brand.Name = input.Name

	if violations := validation.ValidateBrand(brand.Name); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	if err := h.repo.Save(brand); err != nil {
		utils.LogFailedAction(c, "edit", "brand", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	cache.Invalidate(c.Request.Context(), brandListKey)
	utils.LogAction(c, "edit", "brand", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	brand, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Marque introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture marque"})
		return
	}

	if err := h.repo.Remove(brand); err != nil {
		utils.LogFailedAction(c, "delete", "brand", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	cache.Invalidate(c.Request.Context(), brandListKey)
	utils.LogAction(c, "delete", "brand", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}
