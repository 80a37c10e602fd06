package quiz

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/saulo-duarte/quizhub/internal/category"
	"github.com/saulo-duarte/quizhub/internal/config"
	"github.com/saulo-duarte/quizhub/internal/tag"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("quiz with this slug already exists")
)

// UnknownTagError reports the first tag slug that could not be resolved
// while writing the aggregate. Tag processing stops there; writes done
// before it are left in place.
type UnknownTagError struct {
	Slug string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag: %s", e.Slug)
}

type Service interface {
	Create(ctx context.Context, authorID uint64, dto CreateQuizDTO) (*QuizDetailResponse, error)
	Update(ctx context.Context, quizID uint64, dto UpdateQuizDTO) (*QuizDetailResponse, error)
	Delete(ctx context.Context, quizID uint64) error
	ListByCategory(ctx context.Context, categoryID uint64) ([]QuizSummaryResponse, error)
	GetDetail(ctx context.Context, quizID uint64) (*QuizDetailResponse, error)
}

type service struct {
	repo       Repository
	categories category.Repository
	tags       tag.Repository
}

func NewService(repo Repository, categories category.Repository, tags tag.Repository) Service {
	return &service{
		repo:       repo,
		categories: categories,
		tags:       tags,
	}
}

// Create writes the quiz aggregate step by step. There is no cross-table
// transaction: the quiz row, each choice row, and each tagging row are
// independent statements, and a failure partway through leaves the
// earlier writes committed. Uniqueness constraints are the only
// serialization points.
func (s *service) Create(ctx context.Context, authorID uint64, dto CreateQuizDTO) (*QuizDetailResponse, error) {
	log := config.WithContext(ctx)

	cat, err := s.categories.FindByID(dto.CategoryID)
	if err != nil {
		log.WithError(err).Error("Failed to look up category")
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	existing, err := s.repo.FindBySlugUnscoped(dto.Slug)
	if err != nil {
		log.WithError(err).Error("Failed to check quiz slug")
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	q := &Quiz{
		Slug:       dto.Slug,
		CategoryID: dto.CategoryID,
		AuthorID:   authorID,
		Question:   dto.Question,
	}
	if dto.Explanation != nil && *dto.Explanation != "" {
		q.Explanation = dto.Explanation
	}
	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	if err := s.insertChoices(ctx, q.ID, dto.Choices); err != nil {
		return nil, err
	}

	if len(dto.Tags) > 0 {
		if err := s.attachTags(ctx, q.ID, dto.Tags); err != nil {
			return nil, err
		}
	}

	log.WithField("quiz_id", q.ID).Info("Quiz created")
	return s.reread(ctx, q, "Created")
}

func (s *service) Update(ctx context.Context, quizID uint64, dto UpdateQuizDTO) (*QuizDetailResponse, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	if dto.CategoryID != nil {
		cat, err := s.categories.FindByID(*dto.CategoryID)
		if err != nil {
			log.WithError(err).Error("Failed to look up category")
			return nil, err
		}
		if cat == nil {
			return nil, ErrCategoryNotFound
		}
		q.CategoryID = *dto.CategoryID
	}
	if dto.Slug != nil {
		q.Slug = *dto.Slug
	}
	if dto.Question != nil {
		q.Question = *dto.Question
	}
	if dto.Explanation != nil {
		q.Explanation = dto.Explanation
	}
	if err := s.repo.Save(q); err != nil {
		log.WithError(err).Error("Failed to update quiz")
		return nil, err
	}

	// A supplied non-empty list replaces every existing choice. A supplied
	// empty list is a no-op.
	if dto.Choices != nil && len(*dto.Choices) > 0 {
		if err := s.repo.DeleteChoicesByQuiz(q.ID); err != nil {
			log.WithError(err).Error("Failed to delete quiz choices")
			return nil, err
		}
		if err := s.insertChoices(ctx, q.ID, *dto.Choices); err != nil {
			return nil, err
		}
	}

	// A supplied tag list, even empty, replaces the whole tagging set.
	if dto.Tags != nil {
		if err := s.tags.DeleteTaggingsByQuiz(q.ID); err != nil {
			log.WithError(err).Error("Failed to delete quiz taggings")
			return nil, err
		}
		if err := s.attachTags(ctx, q.ID, *dto.Tags); err != nil {
			return nil, err
		}
	}

	log.WithField("quiz_id", q.ID).Info("Quiz updated")
	return s.reread(ctx, q, "Updated")
}

func (s *service) Delete(ctx context.Context, quizID uint64) error {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz")
		return err
	}
	if q == nil {
		return ErrQuizNotFound
	}

	// Soft delete of the quiz row only. Choice and tagging rows stay in
	// place; every read path filters at the quiz level.
	if err := s.repo.SoftDelete(q); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", quizID).Info("Quiz deleted")
	return nil
}

func (s *service) ListByCategory(ctx context.Context, categoryID uint64) ([]QuizSummaryResponse, error) {
	log := config.WithContext(ctx)

	cat, err := s.categories.FindByID(categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to look up category")
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	quizzes, err := s.repo.FindByCategory(categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		return nil, err
	}

	responses := make([]QuizSummaryResponse, 0, len(quizzes))
	for _, q := range quizzes {
		responses = append(responses, QuizSummaryResponse{
			ID:       q.ID,
			Slug:     q.Slug,
			Question: q.Question,
		})
	}
	return responses, nil
}

func (s *service) GetDetail(ctx context.Context, quizID uint64) (*QuizDetailResponse, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	return s.composeDetail(ctx, q)
}

// insertChoices writes choices in input order. A choice without an
// explicit display order gets its 1-based position in the list.
func (s *service) insertChoices(ctx context.Context, quizID uint64, inputs []ChoiceInput) error {
	log := config.WithContext(ctx)

	for i, in := range inputs {
		order := in.DisplayOrder
		if order == nil {
			pos := i + 1
			order = &pos
		}
		c := &Choice{
			QuizID:       quizID,
			ChoiceText:   in.ChoiceText,
			IsCorrect:    in.IsCorrect,
			DisplayOrder: order,
		}
		if err := s.repo.CreateChoice(c); err != nil {
			log.WithError(err).Error("Failed to create quiz choice")
			return err
		}
	}
	return nil
}

// attachTags resolves each slug and links it to the quiz. The first
// unknown slug aborts the remaining tag processing; taggings already
// written stay. A slug listed twice yields one tagging.
func (s *service) attachTags(ctx context.Context, quizID uint64, slugs []string) error {
	log := config.WithContext(ctx)

	for _, slug := range slugs {
		t, err := s.tags.FindBySlug(slug)
		if err != nil {
			log.WithError(err).Error("Failed to look up tag")
			return err
		}
		if t == nil {
			return &UnknownTagError{Slug: slug}
		}
		if err := s.tags.CreateTagging(&tag.Tagging{QuizID: quizID, TagID: t.ID}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			log.WithError(err).Error("Failed to create tagging")
			return err
		}
	}
	return nil
}

// reread fetches the aggregate back after a write. If the quiz has
// vanished in between, the write itself already succeeded, so a minimal
// payload is returned instead of an error.
func (s *service) reread(ctx context.Context, q *Quiz, message string) (*QuizDetailResponse, error) {
	saved, err := s.repo.FindByID(q.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to re-read quiz after write")
		return nil, err
	}
	if saved == nil {
		return &QuizDetailResponse{
			ID:      q.ID,
			Slug:    q.Slug,
			Message: message,
			Choices: []ChoiceResponse{},
			Tags:    []TagResponse{},
		}, nil
	}
	return s.composeDetail(ctx, saved)
}

// composeDetail assembles the denormalized view from three independent
// lookups. The choice and tag reads are not one snapshot; a row added
// between them may or may not appear.
func (s *service) composeDetail(ctx context.Context, q *Quiz) (*QuizDetailResponse, error) {
	log := config.WithContext(ctx)

	choices, err := s.repo.FindChoicesByQuiz(q.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz choices")
		return nil, err
	}
	sortChoices(choices)

	tags, err := s.tags.FindByQuiz(q.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz tags")
		return nil, err
	}

	choiceList := make([]ChoiceResponse, 0, len(choices))
	for _, c := range choices {
		choiceList = append(choiceList, ChoiceResponse{
			ID:           c.ID,
			ChoiceText:   c.ChoiceText,
			IsCorrect:    c.IsCorrect,
			DisplayOrder: c.DisplayOrder,
		})
	}

	tagList := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		tagList = append(tagList, TagResponse{ID: t.ID, Slug: t.Slug, Name: t.Name})
	}

	return &QuizDetailResponse{
		ID:          q.ID,
		Slug:        q.Slug,
		CategoryID:  q.CategoryID,
		Question:    q.Question,
		Explanation: q.Explanation,
		Choices:     choiceList,
		Tags:        tagList,
	}, nil
}

// sortChoices orders by display_order ascending, treating a missing
// order as 0. The sort is stable: colliding orders keep insertion order.
func sortChoices(choices []Choice) {
	ord := func(c Choice) int {
		if c.DisplayOrder == nil {
			return 0
		}
		return *c.DisplayOrder
	}
	sort.SliceStable(choices, func(i, j int) bool {
		return ord(choices[i]) < ord(choices[j])
	})
}
