package dto

import (
	"time"

	"travelog/internal/domains/place/model"
	"travelog/shared/timezone"
)

type CreatePlaceRequest struct {
	Name string  `json:"name"           validate:"required,max=255"`
	Link *string `json:"link,omitempty" validate:"omitempty,url,max=2000"`
}

func (c *CreatePlaceRequest) ToModel(albumID string) model.Place {
	return model.Place{
		Name:    c.Name,
		AlbumID: albumID,
		Link:    c.Link,
		Date:    timezone.Now(),
	}
}

type UpdatePlaceRequest struct {
	Link *string `db:"link" json:"link,omitempty" validate:"omitempty,url,max=2000"`
}

type PlaceResponse struct {
	Name    string    `json:"name"`
	AlbumID string    `json:"album_id"`
	Link    *string   `json:"link,omitempty"`
	Date    time.Time `json:"date"`
}

func (r *PlaceResponse) FromModel(mod model.Place) {
	r.Name = mod.Name
	r.AlbumID = mod.AlbumID
	r.Link = mod.Link
	r.Date = mod.Date
}

type GetPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
	Total  int             `json:"total"`
}

func (r *GetPlacesResponse) FromModels(models []model.Place) {
	r.Total = len(models)

	r.Places = make([]PlaceResponse, len(models))
	for i, mod := range models {
		r.Places[i].FromModel(mod)
	}
}
