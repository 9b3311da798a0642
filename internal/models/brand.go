package models

type Brand struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"size:55;not null" json:"name"`
	Products []Product `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"products,omitempty"`
}

func (b *Brand) TableName() string {
	return "brand"
}
