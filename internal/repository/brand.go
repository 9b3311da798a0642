package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mataxelle/BilMo/internal/models"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Find(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.Preload("Products").First(&brand, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &brand, nil
}

func (r *BrandRepository) FindAll() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Preload("Products").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepository) FindPage(page, limit int) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Scopes(Paginate(page, limit)).Preload("Products").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Save insère si l'id est nul, met à jour sinon.
func (r *BrandRepository) Save(brand *models.Brand) error {
	return r.db.Omit(clause.Associations).Save(brand).Error
}

// Remove supprime la marque ; ses produits partent en cascade (contrainte DB).
func (r *BrandRepository) Remove(brand *models.Brand) error {
	return r.db.Delete(brand).Error
}
