package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mataxelle/BilMo/internal/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Find(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &client, nil
}

func (r *ClientRepository) FindByEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("email = ?", email).First(&client).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &client, nil
}

// EmailTaken vérifie l'unicité de l'email, en excluant la ligne en cours
// d'édition le cas échéant.
func (r *ClientRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Client{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ClientRepository) FindAll() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) FindPage(page, limit int) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Scopes(Paginate(page, limit)).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Save(client *models.Client) error {
	now := time.Now()
	if client.ID == 0 {
		client.StampCreate(now)
	} else {
		client.StampUpdate(now)
	}
	return r.db.Omit(clause.Associations).Save(client).Error
}

// Remove supprime le client ; ses utilisateurs (et leurs membres) partent en
// cascade via les contraintes DB.
func (r *ClientRepository) Remove(client *models.Client) error {
	return r.db.Delete(client).Error
}
