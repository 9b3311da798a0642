package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/database"
	"github.com/mataxelle/BilMo/internal/handlers"
	"github.com/mataxelle/BilMo/internal/middleware"
	"github.com/mataxelle/BilMo/internal/repository"
)

// RegisterRoutes câble la table de routes explicite : une ressource par
// groupe, les gardes de rôle posées route par route.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(corsConfig()))

	db := database.DB

	brandRepo := repository.NewBrandRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	brandHandler := handlers.NewBrandHandler(brandRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	productHandler := handlers.NewProductHandler(productRepo, brandRepo, categoryRepo)
	clientHandler := handlers.NewClientHandler(clientRepo)
	userHandler := handlers.NewUserHandler(userRepo, clientRepo)
	memberHandler := handlers.NewMemberHandler(memberRepo, userRepo)
	authHandler := handlers.NewAuthHandler(clientRepo)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", middleware.LoginRateLimit(), authHandler.Login)

	brand := api.Group("/brand")
	brand.GET("/list", brandHandler.List)
	brand.POST("/create", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour créer une marque"),
		brandHandler.Create)
	brand.GET("/:id", brandHandler.Detail)
	brand.PUT("/:id", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour modifier une marque"),
		brandHandler.Edit)
	brand.DELETE("/:id", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour supprimer une marque"),
		brandHandler.Delete)

	category := api.Group("/category")
	category.GET("/list", categoryHandler.List)
	category.POST("/create", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour créer une catégorie"),
		categoryHandler.Create)
	category.GET("/:id", categoryHandler.Detail)
	category.PUT("/:id", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour modifier une catégorie"),
		categoryHandler.Edit)
	category.DELETE("/:id", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour supprimer une catégorie"),
		categoryHandler.Delete)

	product := api.Group("/product")
	product.GET("/list", productHandler.List)
	product.POST("/create", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour ajouter un produit"),
		productHandler.Create)
	product.GET("/:id", productHandler.Detail)
	product.PUT("/:id", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour modifier un produit"),
		productHandler.Edit)
	product.DELETE("/:id", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour supprimer un produit"),
		productHandler.Delete)

	client := api.Group("/client")
	client.GET("/list", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour afficher la liste de clients"),
		clientHandler.List)
	// L'auto-inscription est ouverte.
	client.POST("/create", clientHandler.Create)
	client.GET("/:id", middleware.AuthRequired(), clientHandler.Detail)
	client.PUT("/:id", middleware.AuthRequired(), clientHandler.Edit)
	client.DELETE("/:id", middleware.AuthRequired(), clientHandler.Delete)

	user := api.Group("/user")
	user.GET("/list", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour afficher la liste"),
		userHandler.List)
	user.GET("/client/:id/list", middleware.AuthRequired(), userHandler.ClientList)
	user.POST("/create", userHandler.Create)
	user.GET("/:id", middleware.AuthRequired(), userHandler.Detail)
	user.PUT("/:id", middleware.AuthRequired(), userHandler.Edit)
	user.DELETE("/:id", middleware.AuthRequired(), userHandler.Delete)

	member := api.Group("/member")
	member.GET("/list", middleware.AuthRequired(),
		middleware.RequireAdmin("Vous n'avez pas les droits suffisants pour afficher la liste"),
		memberHandler.List)
	member.GET("/user/:id/list", middleware.AuthRequired(), memberHandler.UserList)
	member.POST("/create", middleware.AuthRequired(), memberHandler.Create)
	member.GET("/:id", middleware.AuthRequired(), memberHandler.Detail)
	member.PUT("/:id", middleware.AuthRequired(), memberHandler.Edit)
	member.DELETE("/:id", middleware.AuthRequired(), memberHandler.Delete)
}

func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config.AllowOrigins = strings.Split(origins, ",")
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}

	return config
}
