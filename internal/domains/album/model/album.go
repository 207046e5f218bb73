package model

import "time"

const (
	TableName  = "carpetas"
	EntityName = "album"

	FieldName        = "name"
	FieldUserEmail   = "user_email"
	FieldDescription = "description"
	FieldDate        = "date"
)

// Album is a trip owning photos, notes and places. It is keyed by name plus
// owner email; lookups by name are case-insensitive. The schema does not
// declare the name unique, so two albums differing only by case can coexist
// even though only one of them is reachable by lookup. Kept as is pending a
// product decision.
type Album struct {
	Name        string    `db:"name"`
	UserEmail   string    `db:"user_email"`
	Description *string   `db:"description"`
	Date        time.Time `db:"date"`
}
