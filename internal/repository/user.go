package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mataxelle/BilMo/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Find(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindPage(page, limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Scopes(Paginate(page, limit)).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByClient liste les utilisateurs créés par un client donné, paginés.
func (r *UserRepository) FindByClient(clientID uint, page, limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Scopes(Paginate(page, limit)).
		Where("created_by_id = ?", clientID).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Save(user *models.User) error {
	now := time.Now()
	if user.ID == 0 {
		user.StampCreate(now)
	} else {
		user.StampUpdate(now)
	}
	return r.db.Omit(clause.Associations).Save(user).Error
}

func (r *UserRepository) Remove(user *models.User) error {
	return r.db.Delete(user).Error
}
