package history

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/quizhub/internal/config"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateAnswer marks an insert rejected by the idempotency key.
	// Handlers turn it into a success-shaped response: a duplicate is the
	// expected outcome of at-least-once client delivery, not a fault.
	ErrDuplicateAnswer = errors.New("answer already exists")

	ErrInvalidAnsweredAt = errors.New("invalid answeredAt timestamp")
)

type Service interface {
	Add(ctx context.Context, userID uint64, payload AnswerPayload) (*Answer, error)
	Sync(ctx context.Context, userID uint64, answers []AnswerPayload) (int, error)
	List(ctx context.Context, userID uint64) ([]AnswerResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, userID uint64, payload AnswerPayload) (*Answer, error) {
	log := config.WithContext(ctx)

	answeredAt, err := parseAnsweredAt(payload.AnsweredAt)
	if err != nil {
		return nil, ErrInvalidAnsweredAt
	}

	a := &Answer{
		UserID:     userID,
		QuizID:     payload.QuizID,
		CategoryID: payload.CategoryID,
		IsCorrect:  *payload.IsCorrect,
		AnsweredAt: answeredAt,
	}
	if err := s.repo.Create(a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAnswer
		}
		log.WithError(err).Error("Failed to store answer")
		return nil, err
	}

	log.WithField("answer_id", a.ID).Info("Answer stored")
	return a, nil
}

// Sync merges a batch of client-replayed events into the log. Replaying
// the same batch any number of times converges to one stored event per
// idempotency key; the returned count covers only events newly persisted
// by this call.
func (s *service) Sync(ctx context.Context, userID uint64, answers []AnswerPayload) (int, error) {
	log := config.WithContext(ctx)

	synced := 0
	for _, a := range answers {
		if a.QuizID == 0 || a.CategoryID == 0 || a.IsCorrect == nil || a.AnsweredAt == "" {
			continue
		}
		answeredAt, err := parseAnsweredAt(a.AnsweredAt)
		if err != nil {
			continue
		}

		existing, err := s.repo.FindByKey(userID, a.QuizID, answeredAt)
		if err != nil {
			log.WithError(err).Error("Failed to check for existing answer")
			return synced, err
		}
		if existing != nil {
			continue
		}

		record := &Answer{
			UserID:     userID,
			QuizID:     a.QuizID,
			CategoryID: a.CategoryID,
			IsCorrect:  *a.IsCorrect,
			AnsweredAt: answeredAt,
		}
		if err := s.repo.Create(record); err != nil {
			// A concurrent duplicate raced ahead between the check and the
			// insert. Expected under the check-then-act model; skip it.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			log.WithError(err).Error("Failed to store answer during sync")
			return synced, err
		}
		synced++
	}

	log.WithField("synced", synced).Info("History sync completed")
	return synced, nil
}

func (s *service) List(ctx context.Context, userID uint64) ([]AnswerResponse, error) {
	log := config.WithContext(ctx)

	answers, err := s.repo.FindByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list answer history")
		return nil, err
	}

	responses := make([]AnswerResponse, 0, len(answers))
	for _, a := range answers {
		responses = append(responses, AnswerResponse{
			QuizID:     a.QuizID,
			CategoryID: a.CategoryID,
			IsCorrect:  a.IsCorrect,
			AnsweredAt: a.AnsweredAt,
		})
	}
	return responses, nil
}

// parseAnsweredAt reads the wire timestamp and truncates it to whole
// seconds. The answered_at column holds second precision, so equality
// must be computed post-truncation or replays with differing fractions
// would store spurious duplicates.
func parseAnsweredAt(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(time.Second), nil
}
