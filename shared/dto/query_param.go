package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// NewestFirst orders a listing by the given timestamp column, newest rows
// first. Every list-by-album read in the service uses this ordering.
func NewestFirst(column string) QueryParams {
	return QueryParams{
		SortBy:  column,
		SortDir: SortDirDesc,
	}
}
