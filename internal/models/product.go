package models

// Product appartient à une marque et une catégorie. Les deux références
// sont nullables : un id inconnu à la création laisse la référence à null.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	SKU         string    `gorm:"size:255;not null" json:"sku"`
	Available   bool      `gorm:"not null" json:"available"`
	BrandID     *uint     `gorm:"index" json:"-"`
	Brand       *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	CategoryID  *uint     `gorm:"index" json:"-"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Timestamps
}

func (p *Product) TableName() string {
	return "product"
}
