package utils

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mataxelle/BilMo/internal/database"
	"github.com/mataxelle/BilMo/internal/models"
)

// LogAction enregistre une mutation réussie dans les logs d'audit.
func LogAction(c *gin.Context, action, resource, resourceID string) {
	entry := newEntry(c, action, resource, resourceID, true, "")
	go func() {
		if err := persist(entry); err != nil {
			log.Printf("❌ Erreur enregistrement log audit: %v", err)
		}
	}()
}

// LogFailedAction enregistre une mutation échouée dans les logs d'audit.
func LogFailedAction(c *gin.Context, action, resource, resourceID, errorMsg string) {
	entry := newEntry(c, action, resource, resourceID, false, errorMsg)
	go func() {
		if err := persist(entry); err != nil {
			log.Printf("❌ Erreur enregistrement log audit: %v", err)
		}
	}()
}

// newEntry lit le contexte gin avant de quitter la goroutine de la requête.
func newEntry(c *gin.Context, action, resource, resourceID string, success bool, errorMsg string) models.AuditLog {
	entry := models.AuditLog{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Success:    success,
		ErrorMsg:   errorMsg,
		CreatedAt:  time.Now(),
	}

	if v, ok := c.Get("client_id"); ok {
		if id, ok := v.(uint); ok {
			entry.ActorID = &id
		}
	}
	entry.ActorEmail = c.GetString("email")

	return entry
}

func persist(entry models.AuditLog) error {
	if database.DB == nil {
		return nil
	}
	return database.DB.Create(&entry).Error
}
