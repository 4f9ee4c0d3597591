package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return intValue, nil
}

// TransformFields maps the non-zero db-tagged fields of a request struct to
// column updates and stamps the modification audit columns.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updatedFields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	for index := range val.NumField() {
		column, ok := typ.Field(index).Tag.Lookup("db")
		if !ok || column == "" || column == "-" || val.Field(index).IsZero() {
			continue
		}

		updatedFields[column] = val.Field(index).Interface()
	}

	return updatedFields
}

// FilterByID selects one row of table by its key column.
func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: fieldID, Table: table, Operator: dto.FilterOperatorEq, Value: id}},
	}
}

// BuildCacheKey joins a cache prefix with its key parts.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key for a list query from its paging and filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")

		return prefix
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under prefix. Failures are only logged.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// DateOrToday parses an optional YYYY-MM-DD value, falling back to today's local date.
func DateOrToday(value string) (time.Time, error) {
	if value == "" {
		return stay.Date(timezone.Now()), nil
	}

	date, err := stay.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return date, nil
}
