package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/quizhub/internal/auth"
	"github.com/saulo-duarte/quizhub/internal/category"
	"github.com/saulo-duarte/quizhub/internal/config"
	"github.com/saulo-duarte/quizhub/internal/history"
	"github.com/saulo-duarte/quizhub/internal/quiz"
	"github.com/saulo-duarte/quizhub/internal/tag"
)

type Container struct {
	CategoryContainer *category.Container
	QuizContainer     *quiz.Container
	HistoryContainer  *history.Container
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	categoryContainer := category.NewContainer(config.DB)
	tagRepo := tag.NewRepository(config.DB)
	quizContainer := quiz.NewContainer(config.DB, categoryContainer.Repo, tagRepo)
	historyContainer := history.NewContainer(config.DB)

	return &Container{
		CategoryContainer: categoryContainer,
		QuizContainer:     quizContainer,
		HistoryContainer:  historyContainer,
	}
}
