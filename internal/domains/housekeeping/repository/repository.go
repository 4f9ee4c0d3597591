package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	updateStatusQuery = `UPDATE cleaning_statuses SET status = :status, last_updated = :last_updated
WHERE room_id = :room_id
RETURNING room_id, status, last_updated, rolled_over_on`

	// A room already rolled over on day is skipped, so re-running the same day changes nothing.
	markNeedsCleaningQuery = `UPDATE cleaning_statuses SET status = $1, last_updated = $2, rolled_over_on = $3
WHERE room_id = ANY($4) AND (rolled_over_on IS NULL OR rolled_over_on < $3)`

	ensureQuery = `INSERT INTO cleaning_statuses (room_id, status, last_updated)
SELECT room_id, $1, $2 FROM UNNEST($3::int[]) AS room_id
ON CONFLICT (room_id) DO NOTHING`
)

type CleaningStatus interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CleaningStatus, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CleaningStatus, error)
	UpdateStatus(ctx context.Context, roomID int, status string, at time.Time) (model.CleaningStatus, bool, error)
	MarkNeedsCleaning(ctx context.Context, roomIDs []int, at, day time.Time) (int64, error)
	EnsureTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []int, at time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CleaningStatus]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CleaningStatus {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CleaningStatus](model.EntityName, model.TableName, model.FieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatus sets the status of one room. found is false when the room has no cleaning status row.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, roomID int, status string, at time.Time) (res model.CleaningStatus, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning_status.UpdateStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, updateStatusQuery)

	prepare, err := r.db.Write.PrepareNamedContext(ctx, updateStatusQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{
		model.FieldRoomID:      roomID,
		model.FieldStatus:      status,
		model.FieldLastUpdated: at,
	}

	err = prepare.GetContext(ctx, &res, args)
	if errors.Is(err, sql.ErrNoRows) {
		return res, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, false, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	return res, true, nil
}

// MarkNeedsCleaning flips roomIDs to Needs Cleaning for day and returns how many rows changed.
func (r *repositoryImpl) MarkNeedsCleaning(ctx context.Context, roomIDs []int, at, day time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning_status.MarkNeedsCleaning")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, markNeedsCleaningQuery)

	if len(roomIDs) == 0 {
		return 0, nil
	}

	result, err := r.db.Write.ExecContext(ctx, markNeedsCleaningQuery, model.StatusNeedsCleaning, at, day, pq.Array(roomIDs))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected, nil
}

// EnsureTx creates a Clean status for every room that has none.
func (r *repositoryImpl) EnsureTx(ctx context.Context, sqltx *sqlx.Tx, roomIDs []int, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cleaning_status.EnsureTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, ensureQuery)

	if _, err := sqltx.ExecContext(ctx, ensureQuery, model.StatusClean, at, pq.Array(roomIDs)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}
