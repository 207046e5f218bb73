package dto

import (
	"time"

	"travelog/internal/domains/note/model"
	"travelog/shared/timezone"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string  `json:"title"             validate:"required,max=255"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=10000"`
}

func (c *CreateNoteRequest) ToModel(albumID string) model.Note {
	return model.Note{
		ID:      uuid.NewString(),
		AlbumID: albumID,
		Title:   c.Title,
		Content: c.Content,
		Date:    timezone.Now(),
	}
}

type UpdateNoteRequest struct {
	Title   string  `db:"title"   json:"title"             validate:"omitempty,max=255"`
	Content *string `db:"content" json:"content,omitempty" validate:"omitempty,max=10000"`
}

type NoteResponse struct {
	ID      string    `json:"id"`
	AlbumID string    `json:"album_id"`
	Title   string    `json:"title"`
	Content *string   `json:"content,omitempty"`
	Date    time.Time `json:"date"`
}

func (r *NoteResponse) FromModel(mod model.Note) {
	r.ID = mod.ID
	r.AlbumID = mod.AlbumID
	r.Title = mod.Title
	r.Content = mod.Content
	r.Date = mod.Date
}

type GetNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
	Total int            `json:"total"`
}

func (r *GetNotesResponse) FromModels(models []model.Note) {
	r.Total = len(models)

	r.Notes = make([]NoteResponse, len(models))
	for i, mod := range models {
		r.Notes[i].FromModel(mod)
	}
}
