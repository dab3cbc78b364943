package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"villadesk/infras/otel"
	"villadesk/infras/postgres"
	"villadesk/internal/domains/calendar/model"
	gDto "villadesk/shared/dto"
	gRepo "villadesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

// ConflictColumns is the ledger's natural key: one row per villa per day.
var ConflictColumns = []string{model.FieldVillaID, model.FieldDay}

type Calendar interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CalendarDay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CalendarDay, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Upsert(ctx context.Context, models []model.CalendarDay, conflictColumns, updateColumns []string) error
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, models []model.CalendarDay, conflictColumns, updateColumns []string) error
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CalendarDay]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Calendar {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CalendarDay](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
