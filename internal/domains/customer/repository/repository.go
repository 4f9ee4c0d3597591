package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const upsertByPhoneQuery = `INSERT INTO customers (customer_name, phone, email, address, tax_id, created_at, updated_at)
VALUES (:customer_name, :phone, :email, :address, :tax_id, :created_at, :updated_at)
ON CONFLICT (phone) DO UPDATE SET
	customer_name = EXCLUDED.customer_name,
	email = EXCLUDED.email,
	address = EXCLUDED.address,
	tax_id = EXCLUDED.tax_id,
	updated_at = EXCLUDED.updated_at
RETURNING customer_id`

type Customer interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpsertByPhoneTx(ctx context.Context, sqltx *sqlx.Tx, customer model.Customer) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertByPhoneTx inserts the customer or updates the one already holding its phone,
// returning the surviving customer id.
func (r *repositoryImpl) UpsertByPhoneTx(ctx context.Context, sqltx *sqlx.Tx, customer model.Customer) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.UpsertByPhoneTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertByPhoneQuery)

	prepare, err := sqltx.PrepareNamedContext(ctx, upsertByPhoneQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var id int64
	if err = prepare.GetContext(ctx, &id, customer); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return id, nil
}
