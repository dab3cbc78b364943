package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"villadesk/infras/otel"
	"villadesk/infras/postgres"
	"villadesk/internal/domains/region/model"
	gDto "villadesk/shared/dto"
	gRepo "villadesk/shared/repository"
)

type Region interface {
	Insert(ctx context.Context, model model.Region) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Region, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Region, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Region]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Region {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Region](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
