package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/models"
	"github.com/mataxelle/BilMo/internal/repository"
	"github.com/mataxelle/BilMo/internal/utils"
)

type ClientAuthenticator interface {
	FindByEmail(email string) (*models.Client, error)
}

type AuthHandler struct {
	clients ClientAuthenticator
}

func NewAuthHandler(clients ClientAuthenticator) *AuthHandler {
	return &AuthHandler{clients: clients}
}

// Login authentifie un client par email/mot de passe et retourne un JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	client, err := h.clients.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	if !utils.VerifyPassword(input.Password, client.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	token, err := utils.GenerateJWT(*client)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"clientId": client.ID,
		"email":    client.Email,
		"name":     client.Name,
		"role":     client.Role,
	})
}
