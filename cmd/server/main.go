package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/config"
	"github.com/mataxelle/BilMo/internal/database"
	"github.com/mataxelle/BilMo/internal/models"
	"github.com/mataxelle/BilMo/internal/routes"
	"github.com/mataxelle/BilMo/internal/utils"
)

func main() {
	config.Load()

	database.Connect()

	bootstrapAdmin()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 API BilMo lancée sur le port", port)
	r.Run(":" + port)
}

// bootstrapAdmin crée le client admin initial si ADMIN_EMAIL/ADMIN_PASSWORD
// sont fournis et qu'aucun client ne porte encore cet email.
func bootstrapAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := database.DB.Model(&models.Client{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("⚠️  Vérification admin impossible: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("⚠️  Échec hash du mot de passe admin: %v", err)
		return
	}

	admin := models.Client{
		Name:     "Admin",
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	admin.StampCreate(time.Now())

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Printf("⚠️  Échec création client admin: %v", err)
		return
	}
	log.Println("✅ Client admin initialisé")
}
