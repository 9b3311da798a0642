package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataxelle/BilMo/internal/models"
	"github.com/mataxelle/BilMo/internal/utils"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"client_id": c.MustGet("client_id"),
			"role":      c.GetString("role"),
		})
	})
	return r
}

func validToken(t *testing.T, role string) string {
	t.Helper()
	client := models.Client{Email: "contact@bilmo.com", Role: role}
	client.ID = 7
	token, err := utils.GenerateJWT(client)
	require.NoError(t, err)
	return token
}

func TestAuthRequired(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "token manquant", header: "", wantStatus: http.StatusUnauthorized, wantError: "Token manquant"},
		{name: "format invalide", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantError: "Format Authorization invalide"},
		{name: "token invalide", header: "Bearer pas-un-jwt", wantStatus: http.StatusUnauthorized, wantError: "Token invalide"},
		{name: "token valide", header: "Bearer " + validToken(t, models.RoleUser), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Contains(t, w.Body.String(), tt.wantError)
			}
		})
	}
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	r := newAuthRouter()

	claims := jwt.MapClaims{
		"client_id": 7,
		"email":     "contact@bilmo.com",
		"role":      models.RoleUser,
		"exp":       time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(utils.JWTSecret())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin-only", AuthRequired(),
		RequireAdmin("Vous n'avez pas les droits suffisants pour créer une marque"),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("rôle user refusé", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+validToken(t, models.RoleUser))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Vous n'avez pas les droits suffisants pour créer une marque")
	})

	t.Run("rôle admin accepté", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+validToken(t, models.RoleAdmin))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("sans authentification", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
