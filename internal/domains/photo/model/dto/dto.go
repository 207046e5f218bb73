package dto

import (
	"time"

	"travelog/internal/domains/photo/model"
	"travelog/shared/timezone"

	"github.com/google/uuid"
)

type CreatePhotoRequest struct {
	Title  string `json:"title"  validate:"required,max=255"`
	Base64 string `json:"base64" validate:"required,mimetypes=image/jpeg image/png image/gif image/webp,maxfilesize=5"`
}

func (c *CreatePhotoRequest) ToModel(albumID string) model.Photo {
	return model.Photo{
		ID:      uuid.NewString(),
		AlbumID: albumID,
		Title:   c.Title,
		Base64:  c.Base64,
		Date:    timezone.Now(),
	}
}

type PhotoResponse struct {
	ID      string    `json:"id"`
	AlbumID string    `json:"album_id"`
	Title   string    `json:"title"`
	Base64  string    `json:"base64"`
	Date    time.Time `json:"date"`
}

func (r *PhotoResponse) FromModel(mod model.Photo) {
	r.ID = mod.ID
	r.AlbumID = mod.AlbumID
	r.Title = mod.Title
	r.Base64 = mod.Base64
	r.Date = mod.Date
}

type GetPhotosResponse struct {
	Photos []PhotoResponse `json:"photos"`
	Total  int             `json:"total"`
}

func (r *GetPhotosResponse) FromModels(models []model.Photo) {
	r.Total = len(models)

	r.Photos = make([]PhotoResponse, len(models))
	for i, mod := range models {
		r.Photos[i].FromModel(mod)
	}
}
