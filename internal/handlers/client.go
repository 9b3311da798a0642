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

// La liste clients garde son défaut historique de 5 par page.
const clientDefaultLimit = 5

type ClientProvider interface {
	Find(id uint) (*models.Client, error)
	FindPage(page, limit int) ([]models.Client, error)
	EmailTaken(email string, excludeID uint) (bool, error)
	Save(client *models.Client) error
	Remove(client *models.Client) error
}

type ClientHandler struct {
	repo ClientProvider
}

func NewClientHandler(repo ClientProvider) *ClientHandler {
	return &ClientHandler{repo: repo}
}

func (h *ClientHandler) List(c *gin.Context) {
	page, limit, _ := pageParams(c, clientDefaultLimit)

	clients, err := h.repo.FindPage(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture clients"})
		return
	}

	canMutate := isAuthenticated(c)
	out := make([]clientRead, len(clients))
	for i, cl := range clients {
		out[i] = newClientRead(cl, canMutate)
	}

	c.JSON(http.StatusOK, out)
}

// Create est l'auto-inscription : ouverte à tous, rôle forcé à "user", mot de
// passe hashé avant stockage.
func (h *ClientHandler) Create(c *gin.Context) {
	var input struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		Phone       string `json:"phone"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	violations := validation.ValidateClient(input.Name, input.Email, &input.Password)

	if input.Email != "" {
		taken, err := h.repo.EmailTaken(input.Email, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification email"})
			return
		}
		if taken {
			violations = append(violations, validation.EmailTaken())
		}
	}

	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du hash du mot de passe"})
		return
	}

	client := models.Client{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hash,
		Role:        models.RoleUser,
		Phone:       input.Phone,
		Description: input.Description,
	}

	if err := h.repo.Save(&client); err != nil {
		utils.LogFailedAction(c, "create", "client", "", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création"})
		return
	}

	utils.LogAction(c, "create", "client", fmt.Sprint(client.ID))

	c.Header("location", detailHref("client", client.ID))
	c.JSON(http.StatusOK, newClientRead(client, isAuthenticated(c)))
}

func (h *ClientHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture client"})
		return
	}

	c.JSON(http.StatusOK, newClientRead(*client, isAuthenticated(c)))
}

// Edit applique les champs fournis. Le mot de passe n'est re-hashé que s'il
// est fourni et non vide.
func (h *ClientHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture client"})
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Email       *string `json:"email"`
		Password    *string `json:"password"`
		Phone       *string `json:"phone"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Description != nil {
		client.Description = *input.Description
	}

	violations := validation.ValidateClient(client.Name, client.Email, nil)

	taken, err := h.repo.EmailTaken(client.Email, client.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification email"})
		return
	}
	if taken {
		violations = append(violations, validation.EmailTaken())
	}

	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du hash du mot de passe"})
			return
		}
		client.Password = hash
	}

	if err := h.repo.Save(client); err != nil {
		utils.LogFailedAction(c, "edit", "client", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	utils.LogAction(c, "edit", "client", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture client"})
		return
	}

	if err := h.repo.Remove(client); err != nil {
		utils.LogFailedAction(c, "delete", "client", fmt.Sprint(id), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	utils.LogAction(c, "delete", "client", fmt.Sprint(id))

	c.Status(http.StatusNoContent)
}
