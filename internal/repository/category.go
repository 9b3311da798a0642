package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mataxelle/BilMo/internal/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Find(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Products").First(&category, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("Products").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindPage(page, limit int) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Scopes(Paginate(page, limit)).Preload("Products").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Omit(clause.Associations).Save(category).Error
}

func (r *CategoryRepository) Remove(category *models.Category) error {
	return r.db.Delete(category).Error
}
