package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering and paging of list queries.
// Zero Page or Limit disables the matching clause.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// Offset returns the row offset for Page, or zero when paging is off.
func (q QueryParams) Offset() int {
	if q.Page <= 0 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// OrderBy renders the ORDER BY clause, empty unless both sort fields are set.
func (q QueryParams) OrderBy() string {
	if q.SortBy == "" || q.SortDir == "" {
		return ""
	}

	return "ORDER BY " + q.SortBy + " " + q.SortDir
}
