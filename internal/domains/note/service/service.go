package service

import (
	"context"
	"fmt"

	"travelog/config"
	"travelog/infras/otel"
	albumService "travelog/internal/domains/album/service"
	"travelog/internal/domains/note/model/dto"
	"travelog/internal/domains/note/repository"
	"travelog/shared"
	"travelog/shared/constant"
	"travelog/shared/failure"

	"github.com/rs/zerolog/log"
)

type Note interface {
	List(ctx context.Context, albumName, owner string) (dto.GetNotesResponse, error)
	Create(ctx context.Context, req dto.CreateNoteRequest, albumName, owner string) (dto.NoteResponse, error)
	Update(ctx context.Context, req dto.UpdateNoteRequest, id, albumName, owner string) error
	Delete(ctx context.Context, id, albumName, owner string) error
}

type serviceImpl struct {
	repo   repository.Note
	albums albumService.Album
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Note, albums albumService.Album, cfg *config.Config, otl otel.Otel) Note {
	return &serviceImpl{
		repo:   repo,
		albums: albums,
		cfg:    cfg,
		otel:   otl,
	}
}

func (s *serviceImpl) List(ctx context.Context, albumName, owner string) (res dto.GetNotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListNotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return res, err
	}

	notes, err := s.repo.ListByAlbum(ctx, album.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to list notes")

		return res, fmt.Errorf("failed to list notes: %w", err)
	}

	res.FromModels(notes)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateNoteRequest, albumName, owner string) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return res, err
	}

	note := req.ToModel(album.Name)
	if err = s.repo.Insert(ctx, note); err != nil {
		log.Error().Err(err).Msg("failed to create note")

		return res, fmt.Errorf("failed to create note: %w", err)
	}

	log.Info().Str("note", note.ID).Str("album", album.Name).Msg("note created")

	res.FromModel(note)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateNoteRequest, id, albumName, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateNoteRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, id, album.Name, shared.TransformFields(req)); err != nil {
		log.Error().Err(err).Msg("failed to update note")

		return fmt.Errorf("failed to update note: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, albumName, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteNote")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id, album.Name); err != nil {
		log.Error().Err(err).Msg("failed to delete note")

		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
