package model

import "time"

const (
	TableName  = "fotos"
	EntityName = "photo"

	FieldID      = "id"
	FieldAlbumID = "album_id"
	FieldTitle   = "title"
	FieldBase64  = "base64"
	FieldDate    = "date"
)

// Photo stores its image inline as a base64 data URI. AlbumID carries the
// owning album's name and is matched case-insensitively.
type Photo struct {
	ID      string    `db:"id"`
	AlbumID string    `db:"album_id"`
	Title   string    `db:"title"`
	Base64  string    `db:"base64"`
	Date    time.Time `db:"date"`
}
