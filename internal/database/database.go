package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mataxelle/BilMo/internal/models"
)

// --- Variables Globales ---
var (
	DB    *gorm.DB
	Redis *redis.Client
)

// Connect initialise PostgreSQL (obligatoire) et Redis (optionnel).
func Connect() {
	connectPostgres()
	connectRedis()

	log.Println("✅ Toutes les bases de données sont connectées")
}

func connectPostgres() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=bilmo password=bilmo dbname=bilmo port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Échec connexion PostgreSQL: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Brand{},
		&models.Category{},
		&models.Product{},
		&models.Client{},
		&models.User{},
		&models.Member{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("❌ Échec migration du schéma: %v", err)
	}

	DB = db
	log.Println("✅ PostgreSQL connecté, schéma migré")
}

// connectRedis laisse Redis à nil si non configuré ou injoignable : le cache
// et le rate limiting se désactivent d'eux-mêmes.
func connectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️  REDIS_ADDR absent — cache et rate limiting désactivés")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis injoignable (%v) — on continue sans cache", err)
		return
	}

	Redis = client
	log.Println("✅ Redis connecté")
}
