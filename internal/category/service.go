package category

import (
	"context"

	"github.com/saulo-duarte/quizhub/internal/config"
)

type Service interface {
	List(ctx context.Context) ([]CategoryResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]CategoryResponse, error) {
	log := config.WithContext(ctx)

	categories, err := s.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, CategoryResponse{
			ID:            c.ID,
			Slug:          c.Slug,
			CategoryName:  c.CategoryName,
			Description:   c.Description,
			ThumbnailPath: c.ThumbnailPath,
			DisplayOrder:  c.DisplayOrder,
		})
	}
	return responses, nil
}
