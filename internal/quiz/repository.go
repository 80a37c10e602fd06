package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(q *Quiz) error
	Save(q *Quiz) error
	FindByID(id uint64) (*Quiz, error)
	FindBySlugUnscoped(slug string) (*Quiz, error)
	FindByCategory(categoryID uint64) ([]Quiz, error)
	SoftDelete(q *Quiz) error

	CreateChoice(c *Choice) error
	FindChoicesByQuiz(quizID uint64) ([]Choice, error)
	DeleteChoicesByQuiz(quizID uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *repository) Save(q *Quiz) error {
	return r.db.Save(q).Error
}

func (r *repository) FindByID(id uint64) (*Quiz, error) {
	var q Quiz
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

// FindBySlugUnscoped looks across deleted quizzes too: a slug stays taken
// even after its quiz is soft-deleted.
func (r *repository) FindBySlugUnscoped(slug string) (*Quiz, error) {
	var q Quiz
	if err := r.db.Unscoped().First(&q, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) FindByCategory(categoryID uint64) ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *repository) SoftDelete(q *Quiz) error {
	return r.db.Delete(q).Error
}

func (r *repository) CreateChoice(c *Choice) error {
	return r.db.Create(c).Error
}

func (r *repository) FindChoicesByQuiz(quizID uint64) ([]Choice, error) {
	var choices []Choice
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("id ASC").
		Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *repository) DeleteChoicesByQuiz(quizID uint64) error {
	return r.db.Delete(&Choice{}, "quiz_id = ?", quizID).Error
}
