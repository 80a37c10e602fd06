package quiz

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	CategoryID  uint64         `gorm:"column:category_id;not null;index" json:"category_id"`
	AuthorID    uint64         `gorm:"column:author_id;not null" json:"author_id"`
	Question    string         `gorm:"type:text;not null" json:"question"`
	Explanation *string        `gorm:"type:text" json:"explanation,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Quiz) TableName() string {
	return "quiz"
}

// Choice rows are owned by their quiz. They carry no soft-delete column:
// read paths filter at the quiz level, so choices of a deleted quiz are
// simply unreachable.
type Choice struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID       uint64    `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	ChoiceText   string    `gorm:"type:text;not null;column:choice_text" json:"choice_text"`
	IsCorrect    bool      `gorm:"column:is_correct;not null" json:"is_correct"`
	DisplayOrder *int      `gorm:"column:display_order" json:"display_order,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Choice) TableName() string {
	return "quiz_choice"
}
