package dto

import (
	"time"

	"travelog/internal/domains/album/model"
	"travelog/shared/timezone"
)

type CreateAlbumRequest struct {
	Name        string  `json:"name"                  validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

func (c *CreateAlbumRequest) ToModel(owner string) model.Album {
	return model.Album{
		Name:        c.Name,
		UserEmail:   owner,
		Description: c.Description,
		Date:        timezone.Now(),
	}
}

type AlbumResponse struct {
	Name        string    `json:"name"`
	UserEmail   string    `json:"user_email"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

func (r *AlbumResponse) FromModel(mod model.Album) {
	r.Name = mod.Name
	r.UserEmail = mod.UserEmail
	r.Description = mod.Description
	r.Date = mod.Date
}

type GetAlbumsResponse struct {
	Albums []AlbumResponse `json:"albums"`
	Total  int             `json:"total"`
}

func (r *GetAlbumsResponse) FromModels(models []model.Album) {
	r.Total = len(models)

	r.Albums = make([]AlbumResponse, len(models))
	for i, mod := range models {
		r.Albums[i].FromModel(mod)
	}
}
