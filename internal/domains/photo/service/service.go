package service

import (
	"context"
	"fmt"

	"travelog/config"
	"travelog/infras/otel"
	albumService "travelog/internal/domains/album/service"
	"travelog/internal/domains/photo/model/dto"
	"travelog/internal/domains/photo/repository"
	"travelog/shared/constant"

	"github.com/rs/zerolog/log"
)

// Photo operations always resolve the album through the album service
// first, so a caller can only touch photos inside albums they own. Inserts
// reference the album by its stored name, keeping children consistent even
// when the request used different casing.
type Photo interface {
	List(ctx context.Context, albumName, owner string) (dto.GetPhotosResponse, error)
	Create(ctx context.Context, req dto.CreatePhotoRequest, albumName, owner string) (dto.PhotoResponse, error)
	Delete(ctx context.Context, id, albumName, owner string) error
}

type serviceImpl struct {
	repo   repository.Photo
	albums albumService.Album
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Photo, albums albumService.Album, cfg *config.Config, otl otel.Otel) Photo {
	return &serviceImpl{
		repo:   repo,
		albums: albums,
		cfg:    cfg,
		otel:   otl,
	}
}

func (s *serviceImpl) List(ctx context.Context, albumName, owner string) (res dto.GetPhotosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPhotos")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return res, err
	}

	photos, err := s.repo.ListByAlbum(ctx, album.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to list photos")

		return res, fmt.Errorf("failed to list photos: %w", err)
	}

	res.FromModels(photos)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePhotoRequest, albumName, owner string) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return res, err
	}

	photo := req.ToModel(album.Name)
	if err = s.repo.Insert(ctx, photo); err != nil {
		log.Error().Err(err).Msg("failed to create photo")

		return res, fmt.Errorf("failed to create photo: %w", err)
	}

	log.Info().Str("photo", photo.ID).Str("album", album.Name).Msg("photo created")

	res.FromModel(photo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, albumName, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id, album.Name); err != nil {
		log.Error().Err(err).Msg("failed to delete photo")

		return fmt.Errorf("failed to delete photo: %w", err)
	}

	return nil
}
