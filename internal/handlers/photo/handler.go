package photo

import (
	"net/http"

	"travelog/infras/otel"
	"travelog/internal/domains/photo/model/dto"
	"travelog/internal/domains/photo/service"
	"travelog/shared/constant"
	"travelog/shared/validator"
	"travelog/transport/http/middleware"
	"travelog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Photo
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Photo, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/albums/{album}/photos", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Session)

		routerGroup.Get("/", handler.GetPhotos)
		routerGroup.Post("/", handler.CreatePhoto)
		routerGroup.Delete("/{id}", handler.DeletePhoto)
	})
}

// GetPhotos lists an album's photos, newest first.
// @Summary List photos
// @Tags Photo
// @Produce json
// @Param album path string true "Album name"
// @Success 200 {object} response.Data[dto.GetPhotosResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/photos [get]
func (handler *Handler) GetPhotos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotos")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)

	photos, err := handler.service.List(ctx, albumName, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, photos)
}

// CreatePhoto stores a photo in the album. The payload must be a base64
// data URI of an allowed image type.
// @Summary Add a photo
// @Tags Photo
// @Accept json
// @Produce json
// @Param album path string true "Album name"
// @Param request body dto.CreatePhotoRequest true "Create Photo Request"
// @Success 201 {object} response.Data[dto.PhotoResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/photos [post]
func (handler *Handler) CreatePhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePhoto")
	defer scope.End()

	req := dto.CreatePhotoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)

	photo, err := handler.service.Create(ctx, req, albumName, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, photo)
}

// DeletePhoto removes one photo. Deleting a photo that does not exist still
// responds OK.
// @Summary Delete a photo
// @Tags Photo
// @Produce json
// @Param album path string true "Album name"
// @Param id path string true "Photo id"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/photos/{id} [delete]
func (handler *Handler) DeletePhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)
	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, albumName, owner); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Photo deleted")
}
