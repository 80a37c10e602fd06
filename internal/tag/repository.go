package tag

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindBySlug(slug string) (*Tag, error)
	FindByQuiz(quizID uint64) ([]Tag, error)
	CreateTagging(t *Tagging) error
	DeleteTaggingsByQuiz(quizID uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindBySlug(slug string) (*Tag, error) {
	var t Tag
	if err := r.db.First(&t, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByQuiz(quizID uint64) ([]Tag, error) {
	var tags []Tag
	if err := r.db.
		Joins("JOIN quiz_tagging ON quiz_tagging.quiz_tag_id = quiz_tag.id").
		Where("quiz_tagging.quiz_id = ?", quizID).
		Order("quiz_tag.id ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *repository) CreateTagging(t *Tagging) error {
	return r.db.Create(t).Error
}

func (r *repository) DeleteTaggingsByQuiz(quizID uint64) error {
	return r.db.Delete(&Tagging{}, "quiz_id = ?", quizID).Error
}
