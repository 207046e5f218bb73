package model

import "time"

const (
	TableName  = "notas"
	EntityName = "note"

	FieldID      = "id"
	FieldAlbumID = "album_id"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldDate    = "date"
)

type Note struct {
	ID      string    `db:"id"`
	AlbumID string    `db:"album_id"`
	Title   string    `db:"title"`
	Content *string   `db:"content"`
	Date    time.Time `db:"date"`
}
