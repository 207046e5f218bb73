package shared

import (
	"reflect"
	"strings"

	"travelog/shared/dto"
)

// BuildCacheKey joins key parts with the cache namespace separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// TransformFields converts the non-zero fields of a request struct into a map
// of column -> value, keyed by the `db` tag. Used to build partial UPDATEs.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

// FilterByAlbum matches child rows of an album. Album references are compared
// case-insensitively, mirroring the album name lookup.
func FilterByAlbum(albumName, fieldAlbumID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldAlbumID,
				Value:    albumName,
				Operator: dto.FilterOperatorEqFold,
				Table:    table,
			},
		},
	}
}

// FilterByKey matches a row by an exact key column.
func FilterByKey(value, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
