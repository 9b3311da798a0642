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

const categoryListKey = "category:list"

type CategoryProvider interface {
	Find(id uint) (*models.Category, error)
	FindAll() ([]models.Category, error)
	FindPage(page, limit int) ([]models.Category, error)
	Save(category *models.Category) error
	Remove(category *models.Category) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(repo CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit, explicit := pageParams(c, repository.DefaultLimit)

	var categories []models.Category
	var err error

	if explicit {
		categories, err = h.repo.FindPage(page, limit)
	} else if !cache.GetList(ctx, categoryListKey, &categories) {
		categories, err = h.repo.FindAll()
		if err == nil {
			cache.SetList(ctx, categoryListKey, categories)
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégories"})
		return
	}

	admin := isAdmin(c)
	out := make([]categoryRead, len(categories))
	for i, cat := range categories {
		out[i] = newCategoryRead(cat, admin)
	}

	c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if violations := validation.ValidateCategory(input.Name); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	category := models.Category{Name: input.Name}
	if err := h.repo.Save(&category); err != nil {
		utils.LogFailedAction(c, "create", "category", "", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création"})
		return
	}

	cache.Invalidate(c.Request.Context(), categoryListKey)
	utils.LogAction(c, "create", "category", fmt.Sprint(category.ID))

	c.Header("location", detailHref("category", category.ID))
	c.JSON(http.StatusOK, newCategoryRead(category, isAdmin(c)))
}

func (h *CategoryHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégorie"})
		return
	}

	c.JSON(http.StatusOK, newCategoryRead(*category, isAdmin(c)))
}

func (h *CategoryHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégorie"})
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	category.Name = input.Name

	if violations := validation.ValidateCategory(category.Name); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	if err := h.repo.Save(category); err != nil {
		utils.LogFailedAction(c, "edit", "category", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	cache.Invalidate(c.Request.Context(), categoryListKey)
	utils.LogAction(c, "edit", "category", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégorie"})
		return
	}

	if err := h.repo.Remove(category); err != nil {
		utils.LogFailedAction(c, "delete", "category", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	cache.Invalidate(c.Request.Context(), categoryListKey)
	utils.LogAction(c, "delete", "category", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}
