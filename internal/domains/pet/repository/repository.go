package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pawsit/infras/otel"
	"pawsit/infras/postgres"
	"pawsit/internal/domains/pet/model"
	gDto "pawsit/shared/dto"
	gRepo "pawsit/shared/repository"
)

type Pet interface {
	Insert(ctx context.Context, model model.Pet) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Pet, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Pet, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Pet]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pet {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Pet](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
