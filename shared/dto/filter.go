package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterPlainQuery        = "plain"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is a single predicate rendered as a named-parameter SQL fragment.
// ArgName defaults to Field. Filters sharing an ArgName bind the same value.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in less_eq greater_eq plain"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	name := f.argName()

	if sign, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", f.column(), sign, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", f.column(), name), args
	case FilterOperatorIn:
		return f.inClause(name, args)
	case FilterPlainQuery:
		query, _ := f.Value.(string)

		return fmt.Sprintf("(%s)", query), args
	default:
		return "", args
	}
}

// inClause expands a slice value into one named parameter per element.
// An empty slice matches nothing.
func (f *Filter) inClause(name string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
		args[name] = f.Value

		return fmt.Sprintf("%s = :%s", f.column(), name), args
	}

	if val.Len() == 0 {
		return "FALSE", args
	}

	placeholders := make([]string, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = val.Index(idx).Interface()
		placeholders[idx] = ":" + key
	}

	return fmt.Sprintf("%s IN (%s)", f.column(), strings.Join(placeholders, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var (
			clause string
			arg    map[string]any
		)

		switch typed := item.(type) {
		case Filter:
			clause, arg = typed.GetWhereClause()
		case FilterGroup:
			clause, arg = typed.GetWhereClause()
		default:
			continue
		}

		if clause == "" {
			continue
		}

		clauses = append(clauses, clause)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+operator+" ")), args
}
