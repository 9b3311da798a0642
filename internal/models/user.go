package models

// User est un sous-enregistrement attribuable : créé et mis à jour par un
// Client (blameable). Ses membres sont supprimés en cascade avec lui.
type User struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Firstname   string   `gorm:"size:100;not null" json:"firstname"`
	Lastname    string   `gorm:"size:100;not null" json:"lastname"`
	Email       string   `gorm:"size:180;not null;uniqueIndex" json:"email"`
	CreatedByID *uint    `gorm:"index" json:"-"`
	CreatedBy   *Client  `gorm:"foreignKey:CreatedByID" json:"-"`
	UpdatedByID *uint    `json:"-"`
	UpdatedBy   *Client  `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Members     []Member `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamps
}

func (u *User) TableName() string {
	return "user"
}
