package model

import "time"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID    = "customer_id"
	FieldName  = "customer_name"
	FieldPhone = "phone"
)

type Customer struct {
	ID        int64     `db:"customer_id"`
	Name      string    `db:"customer_name"`
	Phone     string    `db:"phone"`
	Email     *string   `db:"email"`
	Address   *string   `db:"address"`
	TaxID     *string   `db:"tax_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
