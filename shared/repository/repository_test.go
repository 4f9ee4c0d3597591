package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/shared/dto"
	"frontdesk/shared/model"
)

type stayRow struct {
	ID         string `db:"id"`
	RoomID     int    `db:"room_id"`
	RoomNumber string `db:"room_number" table:"rooms"`
	Notes      string
	Ignored    string `db:"-"`
	model.Metadata
}

func (stayRow) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = stays.room_id"
}

type plainRow struct {
	ID int `db:"id"`
}

func TestNewRepository(t *testing.T) {
	repo := NewRepository[stayRow]("stay", "stays", "id", nil, otelMocks.NewOtel())

	assert.Equal(t, "JOIN rooms ON rooms.id = stays.room_id", repo.join)
	assert.Equal(t,
		[]string{"id", "room_id", "created_at", "modified_at", "created_by", "modified_by"},
		repo.insertColumns,
	)
	assert.Equal(t,
		"stays.id, stays.room_id, rooms.room_number, stays.created_at, stays.modified_at, stays.created_by, stays.modified_by",
		repo.selectList(nil),
	)
	assert.Equal(t, "stays.id, rooms.room_number", repo.selectList([]string{"id", "room_number"}))
	assert.Equal(t,
		"INSERT INTO stays (id, room_id, created_at, modified_at, created_by, modified_by) VALUES (:id, :room_id, :created_at, :modified_at, :created_by, :modified_by)",
		repo.insertQuery(),
	)

	plain := NewRepository[plainRow]("plain", "plains", "id", nil, otelMocks.NewOtel())
	assert.Empty(t, plain.join)
}

func TestWhereClause(t *testing.T) {
	where, args := whereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)

	where, args = whereClause(dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "room_id", Table: "stays", Operator: dto.FilterOperatorEq, Value: 7},
	}})
	assert.Equal(t, "WHERE (stays.room_id = :room_id)", where)
	assert.Equal(t, map[string]any{"room_id": 7}, args)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		want     string
		wantArgs map[string]any
	}{
		{name: "no limit", params: dto.QueryParams{Page: 2}, want: "", wantArgs: map[string]any{}},
		{name: "limit only", params: dto.QueryParams{Limit: 5}, want: "LIMIT :limit", wantArgs: map[string]any{"limit": 5}},
		{
			name:     "second page",
			params:   dto.QueryParams{Page: 2, Limit: 5},
			want:     "LIMIT :limit OFFSET :offset",
			wantArgs: map[string]any{"limit": 5, "offset": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{}

			assert.Equal(t, tt.want, paginate(tt.params, args))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
