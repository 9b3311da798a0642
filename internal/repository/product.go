package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mataxelle/BilMo/internal/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Find(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Brand").Preload("Category").First(&product, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Brand").Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindPage(page, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Scopes(Paginate(page, limit)).Preload("Brand").Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Save(product *models.Product) error {
	now := time.Now()
	if product.ID == 0 {
		product.StampCreate(now)
	} else {
		product.StampUpdate(now)
	}
	return r.db.Omit(clause.Associations).Save(product).Error
}

func (r *ProductRepository) Remove(product *models.Product) error {
	return r.db.Delete(product).Error
}
