package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pawsit/infras/otel"
	"pawsit/infras/postgres"
	"pawsit/internal/domains/assignment/model"
	gDto "pawsit/shared/dto"
	gRepo "pawsit/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Assignment interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Record, error)
	Upsert(ctx context.Context, model model.Record, mergeColumns []string) error
	UpsertTx(ctx context.Context, tx *sqlx.Tx, model model.Record, mergeColumns []string) error
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Record]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Assignment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Record](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Training interface {
	Insert(ctx context.Context, model model.TrainingRecord) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TrainingRecord, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type trainingRepositoryImpl struct {
	gRepo.Repository[model.TrainingRecord]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTraining(db *postgres.Connection, otel otel.Otel) Training {
	return &trainingRepositoryImpl{
		Repository: gRepo.NewRepository[model.TrainingRecord](model.TrainingEntityName, model.TrainingTableName, model.TrainingFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
