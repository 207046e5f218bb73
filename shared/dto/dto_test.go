package dto_test

import (
	"testing"
	"travelog/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "email",
				Operator: dto.FilterOperatorEq,
				Value:    "a@b.com",
				Table:    "usuarios",
			},
			expectedWhere: "usuarios.email = :email",
			expectedArgs:  map[string]any{"email": "a@b.com"},
		},
		{
			name: "eq_fold compares case-insensitively",
			filter: dto.Filter{
				Field:    "name",
				Operator: dto.FilterOperatorEqFold,
				Value:    "Roma 2023",
				Table:    "carpetas",
			},
			expectedWhere: "LOWER(carpetas.name) = LOWER(:name)",
			expectedArgs:  map[string]any{"name": "Roma 2023"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "album_name",
				Field:    "album_id",
				Operator: dto.FilterOperatorEqFold,
				Value:    "Japón 2024",
			},
			expectedWhere: "LOWER(album_id) = LOWER(:album_name)",
			expectedArgs:  map[string]any{"album_name": "Japón 2024"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "email",
				Operator: "bogus",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "abc", Table: "fotos"},
			dto.Filter{Field: "album_id", Operator: dto.FilterOperatorEqFold, Value: "Japón 2024", Table: "fotos"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(fotos.id = :id AND LOWER(fotos.album_id) = LOWER(:album_id))", where)
	assert.Equal(t, map[string]any{"id": "abc", "album_id": "Japón 2024"}, args)
}

func TestFilterGroupEmpty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestNewestFirst(t *testing.T) {
	params := dto.NewestFirst("date")

	assert.Equal(t, "date", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
	assert.Zero(t, params.Page)
	assert.Zero(t, params.Limit)
}
