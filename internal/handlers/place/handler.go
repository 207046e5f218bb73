package place

import (
	"net/http"

	"travelog/infras/otel"
	"travelog/internal/domains/place/model/dto"
	"travelog/internal/domains/place/service"
	"travelog/shared/constant"
	"travelog/shared/validator"
	"travelog/transport/http/middleware"
	"travelog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Place
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Place, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/albums/{album}/places", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Session)

		routerGroup.Get("/", handler.GetPlaces)
		routerGroup.Post("/", handler.CreatePlace)
		routerGroup.Patch("/{name}", handler.UpdatePlace)
		routerGroup.Delete("/{name}", handler.DeletePlace)
	})
}

// GetPlaces lists an album's places, newest first.
// @Summary List places
// @Tags Place
// @Produce json
// @Param album path string true "Album name"
// @Success 200 {object} response.Data[dto.GetPlacesResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/places [get]
func (handler *Handler) GetPlaces(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlaces")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)

	places, err := handler.service.List(ctx, albumName, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, places)
}

// CreatePlace adds a point of interest to the album.
// @Summary Add a place
// @Tags Place
// @Accept json
// @Produce json
// @Param album path string true "Album name"
// @Param request body dto.CreatePlaceRequest true "Create Place Request"
// @Success 201 {object} response.Data[dto.PlaceResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/places [post]
func (handler *Handler) CreatePlace(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlace")
	defer scope.End()

	req := dto.CreatePlaceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)

	place, err := handler.service.Create(ctx, req, albumName, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, place)
}

// UpdatePlace edits a place's map link.
// @Summary Update a place
// @Tags Place
// @Accept json
// @Produce json
// @Param album path string true "Album name"
// @Param name path string true "Place name"
// @Param request body dto.UpdatePlaceRequest true "Update Place Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/places/{name} [patch]
func (handler *Handler) UpdatePlace(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePlace")
	defer scope.End()

	req := dto.UpdatePlaceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)
	name := chi.URLParam(request, constant.RequestParamName)

	if err := handler.service.Update(ctx, req, name, albumName, owner); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Place updated")
}

// DeletePlace removes one place. Deleting a place that does not exist still
// responds OK.
// @Summary Delete a place
// @Tags Place
// @Produce json
// @Param album path string true "Album name"
// @Param name path string true "Place name"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/places/{name} [delete]
func (handler *Handler) DeletePlace(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePlace")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)
	name := chi.URLParam(request, constant.RequestParamName)

	if err := handler.service.Delete(ctx, name, albumName, owner); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Place deleted")
}
