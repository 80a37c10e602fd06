package quiz

type ChoiceInput struct {
	ChoiceText   string `json:"choice_text"`
	IsCorrect    bool   `json:"is_correct"`
	DisplayOrder *int   `json:"display_order"`
}

type CreateQuizDTO struct {
	CategoryID  uint64        `json:"category_id" validate:"required"`
	Slug        string        `json:"slug" validate:"required"`
	Question    string        `json:"question" validate:"required"`
	Explanation *string       `json:"explanation"`
	Choices     []ChoiceInput `json:"choices"`
	Tags        []string      `json:"tags"`
}

// UpdateQuizDTO carries partial updates. A nil field was omitted from the
// request; a non-nil field is applied even when it is empty. An empty
// choice list leaves the choice set untouched; an empty tag list clears
// all taggings.
type UpdateQuizDTO struct {
	CategoryID  *uint64        `json:"category_id"`
	Slug        *string        `json:"slug"`
	Question    *string        `json:"question"`
	Explanation *string        `json:"explanation"`
	Choices     *[]ChoiceInput `json:"choices"`
	Tags        *[]string      `json:"tags"`
}

type ChoiceResponse struct {
	ID           uint64 `json:"id"`
	ChoiceText   string `json:"choice_text"`
	IsCorrect    bool   `json:"is_correct"`
	DisplayOrder *int   `json:"display_order,omitempty"`
}

type TagResponse struct {
	ID   uint64 `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type QuizSummaryResponse struct {
	ID       uint64 `json:"id"`
	Slug     string `json:"slug"`
	Question string `json:"question"`
}

type QuizDetailResponse struct {
	ID          uint64           `json:"id"`
	Slug        string           `json:"slug"`
	CategoryID  uint64           `json:"category_id"`
	Question    string           `json:"question"`
	Explanation *string          `json:"explanation,omitempty"`
	Choices     []ChoiceResponse `json:"choices"`
	Tags        []TagResponse    `json:"tags"`
	Message     string           `json:"message,omitempty"`
}
