package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pawsit/infras/otel"
	"pawsit/infras/postgres"
	"pawsit/internal/domains/visit/model"
	gDto "pawsit/shared/dto"
	gRepo "pawsit/shared/repository"
)

type Visit interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Visit, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Visit, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Upsert(ctx context.Context, model model.Visit, mergeColumns []string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Visit]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Visit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Visit](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
