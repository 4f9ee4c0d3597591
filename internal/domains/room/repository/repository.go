package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const upsertQuery = `INSERT INTO rooms (room_id, room_number, room_type, bed_type, floor)
VALUES (:room_id, :room_number, :room_type, :bed_type, :floor)
ON CONFLICT (room_id) DO UPDATE SET
	room_number = EXCLUDED.room_number,
	room_type = EXCLUDED.room_type,
	bed_type = EXCLUDED.bed_type,
	floor = EXCLUDED.floor`

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	LockTx(ctx context.Context, sqltx *sqlx.Tx, roomID int) (model.Room, error)
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, rooms []model.Room) error
	Transaction(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockTx reads the room row and holds its lock until sqltx ends. A zero Room means no such room.
func (r *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, roomID int) (model.Room, error) {
	return r.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomID, model.FieldID, model.TableName))
}

func (r *repositoryImpl) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, rooms []model.Room) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpsertTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	for _, room := range rooms {
		if _, err := sqltx.NamedExecContext(ctx, upsertQuery, room); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to upsert room %d: %w", room.ID, err)
		}
	}

	return nil
}

func (r *repositoryImpl) Transaction(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error {
	return r.db.WithTransaction(ctx, fn) //nolint:wrapcheck
}
