package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound est retourné quand un id ne correspond à aucune ligne.
var ErrNotFound = errors.New("entity not found")

const DefaultLimit = 10

// offsetFor calcule l'offset SQL : OFFSET (page-1)*limit LIMIT limit.
func offsetFor(page, limit int) int {
	return (page - 1) * limit
}

// Paginate est un scope GORM réutilisable par tous les repositories.
func Paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offsetFor(page, limit)).Limit(limit)
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
