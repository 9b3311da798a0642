package models

import "time"

// Timestamps regroupe les colonnes d'audit temporel communes aux entités.
// Le stamping est fait explicitement par les repositories au moment du Save.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// StampCreate initialise created_at et updated_at à la création.
func (t *Timestamps) StampCreate(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// StampUpdate rafraîchit updated_at à chaque mutation.
func (t *Timestamps) StampUpdate(now time.Time) {
	t.UpdatedAt = now
}
