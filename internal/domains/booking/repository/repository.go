package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	Transaction(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Transaction(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error {
	return r.db.WithTransaction(ctx, fn) //nolint:wrapcheck
}
