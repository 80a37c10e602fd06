package history

import "time"

// Answer is an append-only log entry. The (user_id, quiz_id, answered_at)
// triple is the idempotency key for the whole history subsystem:
// answered_at holds whole seconds only, so equality is computed after
// truncation.
type Answer struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uq_user_quiz_answered" json:"user_id"`
	QuizID     uint64    `gorm:"column:quiz_id;not null;uniqueIndex:uq_user_quiz_answered" json:"quiz_id"`
	CategoryID uint64    `gorm:"column:category_id;not null" json:"category_id"`
	IsCorrect  bool      `gorm:"column:is_correct;not null" json:"is_correct"`
	AnsweredAt time.Time `gorm:"column:answered_at;not null;uniqueIndex:uq_user_quiz_answered" json:"answered_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Answer) TableName() string {
	return "quiz_answers"
}
