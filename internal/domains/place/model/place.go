package model

import "time"

const (
	TableName  = "lugares"
	EntityName = "place"

	FieldName    = "name"
	FieldAlbumID = "album_id"
	FieldLink    = "link"
	FieldDate    = "date"
)

// Place is a point of interest attached to an album, keyed by its name
// within the album. Link is an optional map URL.
type Place struct {
	Name    string    `db:"name"`
	AlbumID string    `db:"album_id"`
	Link    *string   `db:"link"`
	Date    time.Time `db:"date"`
}
