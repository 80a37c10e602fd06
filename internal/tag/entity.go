package tag

// Tag is a shared vocabulary entry, not owned by any quiz.
type Tag struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (Tag) TableName() string {
	return "quiz_tag"
}

// Tagging links a quiz to a tag. The (quiz_id, quiz_tag_id) pair is
// unique; duplicate associations are rejected by the store.
type Tagging struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID uint64 `gorm:"column:quiz_id;not null;uniqueIndex:uq_quiz_tag" json:"quiz_id"`
	TagID  uint64 `gorm:"column:quiz_tag_id;not null;uniqueIndex:uq_quiz_tag" json:"quiz_tag_id"`
}

func (Tagging) TableName() string {
	return "quiz_tagging"
}
