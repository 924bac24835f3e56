package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tutorials/infras/otel"
	"tutorials/infras/postgres"
	"tutorials/internal/domains/tutorial/model"
	gDto "tutorials/shared/dto"
	gRepo "tutorials/shared/repository"
)

type Tutorial interface {
	Insert(ctx context.Context, model model.Tutorial) (model.Tutorial, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Tutorial, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup, columns ...string) ([]model.Tutorial, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Tutorial]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Tutorial {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tutorial](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
