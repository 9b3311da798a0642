package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/models"
)

// pageParams lit page/limit depuis la query string. explicit indique si le
// client a demandé une pagination (les listes brand/category ne paginent que
// sur demande).
func pageParams(c *gin.Context, defaultLimit int) (page, limit int, explicit bool) {
	page, limit = 1, defaultLimit

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
			explicit = true
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			limit = n
			explicit = true
		}
	}

	return page, limit, explicit
}

// pathID parse l'id de l'URL. Répond 400 et retourne false en cas d'échec.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return 0, false
	}
	return uint(id), true
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("role") == models.RoleAdmin
}

// isAuthenticated est vrai dès qu'un principal valide a traversé AuthRequired.
func isAuthenticated(c *gin.Context) bool {
	_, ok := c.Get("client_id")
	return ok
}

func principalID(c *gin.Context) *uint {
	if v, ok := c.Get("client_id"); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
