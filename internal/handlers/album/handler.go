package album

import (
	"net/http"

	"travelog/infras/otel"
	"travelog/internal/domains/album/model/dto"
	"travelog/internal/domains/album/service"
	"travelog/shared/constant"
	"travelog/shared/validator"
	"travelog/transport/http/middleware"
	"travelog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Album
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Album, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/albums", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Session)

		routerGroup.Get("/", handler.GetAlbums)
		routerGroup.Post("/", handler.CreateAlbum)
		routerGroup.Get("/{album}", handler.GetAlbum)
		routerGroup.Delete("/{album}", handler.DeleteAlbum)
	})
}

// GetAlbums lists the session user's albums, newest first.
// @Summary List albums
// @Tags Album
// @Produce json
// @Success 200 {object} response.Data[dto.GetAlbumsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/albums [get]
func (handler *Handler) GetAlbums(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAlbums")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	albums, err := handler.service.List(ctx, owner)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list albums")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, albums)
}

// CreateAlbum creates a trip owned by the session user.
// @Summary Create an album
// @Tags Album
// @Accept json
// @Produce json
// @Param request body dto.CreateAlbumRequest true "Create Album Request"
// @Success 201 {object} response.Data[dto.AlbumResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/albums [post]
func (handler *Handler) CreateAlbum(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAlbum")
	defer scope.End()

	req := dto.CreateAlbumRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	album, err := handler.service.Create(ctx, req, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, album)
}

// GetAlbum fetches one album by name. The name match is case-insensitive.
// @Summary Get an album
// @Tags Album
// @Produce json
// @Param album path string true "Album name"
// @Success 200 {object} response.Data[dto.AlbumResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album} [get]
func (handler *Handler) GetAlbum(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAlbum")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	name := chi.URLParam(request, constant.RequestParamAlbum)

	album, err := handler.service.GetOwned(ctx, name, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	var res dto.AlbumResponse
	res.FromModel(album)

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteAlbum removes an album with its photos, notes and places. Deleting
// an album that does not exist still responds OK.
// @Summary Delete an album
// @Tags Album
// @Produce json
// @Param album path string true "Album name"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Router /v1/albums/{album} [delete]
func (handler *Handler) DeleteAlbum(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAlbum")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	name := chi.URLParam(request, constant.RequestParamAlbum)

	if err := handler.service.Delete(ctx, name, owner); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Album deleted")
}
