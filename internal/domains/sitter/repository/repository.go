package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pawsit/infras/otel"
	"pawsit/infras/postgres"
	"pawsit/internal/domains/sitter/model"
	gDto "pawsit/shared/dto"
	gRepo "pawsit/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Sitter interface {
	Insert(ctx context.Context, model model.Sitter) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Sitter, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Sitter, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type sitterRepositoryImpl struct {
	gRepo.Repository[model.Sitter]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Sitter {
	return &sitterRepositoryImpl{
		Repository: gRepo.NewRepository[model.Sitter](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Availability interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Availability, error)
	Upsert(ctx context.Context, model model.Availability, mergeColumns []string) error
}

type availabilityRepositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAvailability(db *postgres.Connection, otel otel.Otel) Availability {
	return &availabilityRepositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.AvailabilityEntityName, model.AvailabilityTableName, model.AvailabilityFieldSitterID, db, otel),
		db:         db,
		otel:       otel,
	}
}
