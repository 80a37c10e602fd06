package history

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Answer) error
	FindByKey(userID, quizID uint64, answeredAt time.Time) (*Answer, error)
	FindByUser(userID uint64) ([]Answer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts one event. A uniqueness violation comes back as
// gorm.ErrDuplicatedKey (TranslateError is enabled on the connection),
// which callers treat as an expected duplicate, not a failure.
func (r *repository) Create(a *Answer) error {
	return r.db.Create(a).Error
}

func (r *repository) FindByKey(userID, quizID uint64, answeredAt time.Time) (*Answer, error) {
	var a Answer
	err := r.db.
		Where("user_id = ? AND quiz_id = ? AND answered_at = ?", userID, quizID, answeredAt).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByUser(userID uint64) ([]Answer, error) {
	var answers []Answer
	if err := r.db.
		Where("user_id = ?", userID).
		Order("answered_at DESC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
