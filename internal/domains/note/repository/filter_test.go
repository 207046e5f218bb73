package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByIDInAlbumWhereClause(t *testing.T) {
	filter := byIDInAlbum("nota-1", "Japan 2024")

	clause, args := filter.GetWhereClause()

	assert.Equal(t, "(notas.id = :id AND LOWER(notas.album_id) = LOWER(:album_id))", clause)
	assert.Equal(t, map[string]any{"id": "nota-1", "album_id": "Japan 2024"}, args)
}
