package quiz

import (
	"github.com/saulo-duarte/quizhub/internal/category"
	"github.com/saulo-duarte/quizhub/internal/tag"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, categories category.Repository, tags tag.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, categories, tags)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
