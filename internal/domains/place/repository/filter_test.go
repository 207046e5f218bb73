package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByNameInAlbumWhereClause(t *testing.T) {
	filter := byNameInAlbum("Senso-ji", "Japan 2024")

	clause, args := filter.GetWhereClause()

	assert.Equal(t, "(lugares.name = :name AND LOWER(lugares.album_id) = LOWER(:album_id))", clause)
	assert.Equal(t, map[string]any{"name": "Senso-ji", "album_id": "Japan 2024"}, args)
}
