package models

// Member est le dernier niveau de la hiérarchie : créé et mis à jour par un
// User.
type Member struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Firstname   string `gorm:"size:100;not null" json:"firstname"`
	Lastname    string `gorm:"size:100;not null" json:"lastname"`
	Email       string `gorm:"size:180;not null;uniqueIndex" json:"email"`
	CreatedByID *uint  `gorm:"index" json:"-"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"-"`
	UpdatedByID *uint  `json:"-"`
	UpdatedBy   *User  `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Timestamps
}

func (m *Member) TableName() string {
	return "member"
}
