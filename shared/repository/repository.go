// Package repository holds the generic sqlx table access every domain
// repository embeds. Queries use named parameters and run on the read pool
// unless a write or an explicit transaction is involved.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/logger"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

// Joiner is implemented by models that read columns from other tables.
// Those columns carry a `table` tag and are never written.
type Joiner interface {
	GetJoinQuery() string
}

type column struct {
	name  string
	table string
}

func (c column) qualified() string {
	return c.table + "." + c.name
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	entity        string
	table         string
	key           string
	join          string
	columns       []column
	insertColumns []string
}

// NewRepository derives the column list of T from its `db` tags.
// key is the column Count counts on.
func NewRepository[T any](entity, table, key string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	repo := Repository[T]{
		db:     db,
		otel:   otl,
		entity: entity,
		table:  table,
		key:    key,
	}

	repo.columns, repo.insertColumns = columnsOf(table, reflect.TypeOf(zero))

	if joiner, ok := any(zero).(Joiner); ok {
		repo.join = joiner.GetJoinQuery()
	}

	return repo
}

func (repo *Repository[T]) start(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entity+"."+operation)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, "Insert", repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, "InsertTx", sqltx, model)
}

func (repo *Repository[T]) insert(ctx context.Context, operation string, exec execer, model T) error {
	ctx, scope := repo.start(ctx, operation)
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.start(ctx, "Exist")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exist bool
	if err := repo.getOne(ctx, repo.db.Read, query, &exist, args); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.start(ctx, "Count")
	defer scope.End()

	where, args := whereClause(filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.key, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int
	if err := repo.getOne(ctx, repo.db.Read, query, &count, args); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, "Get", repo.db.Read, filter, false, columns...)
}

// GetForUpdateTx reads a single row and locks it until sqltx ends.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, "GetForUpdateTx", sqltx, filter, true, columns...)
}

func (repo *Repository[T]) get(ctx context.Context, operation string, prep preparer, filter dto.FilterGroup, lock bool, columns ...string) (T, error) {
	ctx, scope := repo.start(ctx, operation)
	defer scope.End()

	where, args := whereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns), repo.table, repo.join, where)
	if lock {
		query += " FOR UPDATE OF " + repo.table
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	err := repo.getOne(ctx, prep, query, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, "GetAll", repo.db.Read, params, filter, columns...)
}

// GetAllTx reads inside sqltx so the result reflects rows locked or written by it.
func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, "GetAllTx", sqltx, params, filter, columns...)
}

func (repo *Repository[T]) getAll(ctx context.Context, operation string, prep preparer, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.start(ctx, operation)
	defer scope.End()

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectList(columns), repo.table, repo.join, where, params.OrderBy(), paginate(params, args))

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	prepare, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, "Update", repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, "UpdateTx", sqltx, mod, filter)
}

// update refuses to run without a filter so a bad call cannot rewrite the whole table.
func (repo *Repository[T]) update(ctx context.Context, operation string, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.start(ctx, operation)
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, mod)

	if _, err := exec.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) getOne(ctx context.Context, prep preparer, query string, dest any, args map[string]any) error {
	prepare, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer prepare.Close()

	return prepare.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.insertColumns))
	for idx, col := range repo.insertColumns {
		placeholders[idx] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
}

// selectList renders the qualified columns, narrowed to only when it is non-empty.
func (repo *Repository[T]) selectList(only []string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		selected = append(selected, col.qualified())
	}

	return strings.Join(selected, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

func paginate(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = params.Offset()

	return "LIMIT :limit OFFSET :offset"
}

// columnsOf walks T's fields, flattening embedded structs such as the audit metadata.
func columnsOf(table string, typ reflect.Type) (columns []column, insertColumns []string) {
	for idx := range typ.NumField() {
		field := typ.Field(idx)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := columnsOf(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
			insertColumns = append(insertColumns, name)
		}

		columns = append(columns, column{name: name, table: owner})
	}

	return columns, insertColumns
}
