package router

import (
	"travelog/internal/handlers/album"
	"travelog/internal/handlers/auth"
	"travelog/internal/handlers/note"
	"travelog/internal/handlers/photo"
	"travelog/internal/handlers/place"
	"travelog/internal/handlers/system"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth   auth.Handler
	Album  album.Handler
	Photo  photo.Handler
	Note   note.Handler
	Place  place.Handler
	System system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.System.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Album.Router(routerGroup)
		r.DomainHandlers.Photo.Router(routerGroup)
		r.DomainHandlers.Note.Router(routerGroup)
		r.DomainHandlers.Place.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
