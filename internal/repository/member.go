package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mataxelle/BilMo/internal/models"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Find(id uint) (*models.Member, error) {
	var member models.Member
	if err := r.db.First(&member, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &member, nil
}

func (r *MemberRepository) FindAll() ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) FindPage(page, limit int) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Scopes(Paginate(page, limit)).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByUser liste les membres créés par un utilisateur donné, paginés.
func (r *MemberRepository) FindByUser(userID uint, page, limit int) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Scopes(Paginate(page, limit)).
		Where("created_by_id = ?", userID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Member{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) Save(member *models.Member) error {
	now := time.Now()
	if member.ID == 0 {
		member.StampCreate(now)
	} else {
		member.StampUpdate(now)
	}
	return r.db.Omit(clause.Associations).Save(member).Error
}

func (r *MemberRepository) Remove(member *models.Member) error {
	return r.db.Delete(member).Error
}
