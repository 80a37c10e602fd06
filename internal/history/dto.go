package history

import "time"

// AnswerPayload is one client-replayed answer event. History endpoints
// use camelCase on the wire, unlike the quiz surface.
type AnswerPayload struct {
	QuizID     uint64 `json:"quizId" validate:"required"`
	CategoryID uint64 `json:"categoryId" validate:"required"`
	IsCorrect  *bool  `json:"isCorrect" validate:"required"`
	AnsweredAt string `json:"answeredAt" validate:"required"`
}

type SyncRequest struct {
	Answers []AnswerPayload `json:"answers"`
}

type SyncResponse struct {
	Synced int `json:"synced"`
}

type AnswerResponse struct {
	QuizID     uint64    `json:"quizId"`
	CategoryID uint64    `json:"categoryId"`
	IsCorrect  bool      `json:"isCorrect"`
	AnsweredAt time.Time `json:"answeredAt"`
}
