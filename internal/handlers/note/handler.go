package note

import (
	"net/http"

	"travelog/infras/otel"
	"travelog/internal/domains/note/model/dto"
	"travelog/internal/domains/note/service"
	"travelog/shared/constant"
	"travelog/shared/validator"
	"travelog/transport/http/middleware"
	"travelog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Note
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Note, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/albums/{album}/notes", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Session)

		routerGroup.Get("/", handler.GetNotes)
		routerGroup.Post("/", handler.CreateNote)
		routerGroup.Patch("/{id}", handler.UpdateNote)
		routerGroup.Delete("/{id}", handler.DeleteNote)
	})
}

// GetNotes lists an album's notes, newest first.
// @Summary List notes
// @Tags Note
// @Produce json
// @Param album path string true "Album name"
// @Success 200 {object} response.Data[dto.GetNotesResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/notes [get]
func (handler *Handler) GetNotes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotes")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)

	notes, err := handler.service.List(ctx, albumName, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, notes)
}

// CreateNote adds a note to the album.
// @Summary Add a note
// @Tags Note
// @Accept json
// @Produce json
// @Param album path string true "Album name"
// @Param request body dto.CreateNoteRequest true "Create Note Request"
// @Success 201 {object} response.Data[dto.NoteResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/notes [post]
func (handler *Handler) CreateNote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNote")
	defer scope.End()

	req := dto.CreateNoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)

	note, err := handler.service.Create(ctx, req, albumName, owner)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, note)
}

// UpdateNote edits a note's title or content.
// @Summary Update a note
// @Tags Note
// @Accept json
// @Produce json
// @Param album path string true "Album name"
// @Param id path string true "Note id"
// @Param request body dto.UpdateNoteRequest true "Update Note Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/notes/{id} [patch]
func (handler *Handler) UpdateNote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateNote")
	defer scope.End()

	req := dto.UpdateNoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)
	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Update(ctx, req, id, albumName, owner); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Note updated")
}

// DeleteNote removes one note. Deleting a note that does not exist still
// responds OK.
// @Summary Delete a note
// @Tags Note
// @Produce json
// @Param album path string true "Album name"
// @Param id path string true "Note id"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/albums/{album}/notes/{id} [delete]
func (handler *Handler) DeleteNote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteNote")
	defer scope.End()

	owner, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	albumName := chi.URLParam(request, constant.RequestParamAlbum)
	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, albumName, owner); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Note deleted")
}
