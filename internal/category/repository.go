package category

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll() ([]Category, error)
	FindByID(id uint64) (*Category, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAll returns non-deleted categories ordered for display. A NULL
// display_order sorts as 0; postgres and mysql disagree on where bare
// NULLs land, so the COALESCE keeps the listing order driver-independent.
// Ties fall back to insertion order.
func (r *repository) FindAll() ([]Category, error) {
	var categories []Category
	if err := r.db.
		Order("COALESCE(display_order, 0) ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) FindByID(id uint64) (*Category, error) {
	var c Category
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
