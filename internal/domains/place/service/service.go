package service

import (
	"context"
	"fmt"

	"travelog/config"
	"travelog/infras/otel"
	albumService "travelog/internal/domains/album/service"
	"travelog/internal/domains/place/model/dto"
	"travelog/internal/domains/place/repository"
	"travelog/shared"
	"travelog/shared/constant"
	"travelog/shared/failure"

	"github.com/rs/zerolog/log"
)

type Place interface {
	List(ctx context.Context, albumName, owner string) (dto.GetPlacesResponse, error)
	Create(ctx context.Context, req dto.CreatePlaceRequest, albumName, owner string) (dto.PlaceResponse, error)
	Update(ctx context.Context, req dto.UpdatePlaceRequest, name, albumName, owner string) error
	Delete(ctx context.Context, name, albumName, owner string) error
}

type serviceImpl struct {
	repo   repository.Place
	albums albumService.Album
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Place, albums albumService.Album, cfg *config.Config, otl otel.Otel) Place {
	return &serviceImpl{
		repo:   repo,
		albums: albums,
		cfg:    cfg,
		otel:   otl,
	}
}

func (s *serviceImpl) List(ctx context.Context, albumName, owner string) (res dto.GetPlacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPlaces")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return res, err
	}

	places, err := s.repo.ListByAlbum(ctx, album.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to list places")

		return res, fmt.Errorf("failed to list places: %w", err)
	}

	res.FromModels(places)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlaceRequest, albumName, owner string) (res dto.PlaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePlace")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return res, err
	}

	place := req.ToModel(album.Name)
	if err = s.repo.Insert(ctx, place); err != nil {
		log.Error().Err(err).Msg("failed to create place")

		return res, fmt.Errorf("failed to create place: %w", err)
	}

	log.Info().Str("place", place.Name).Str("album", album.Name).Msg("place created")

	res.FromModel(place)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePlaceRequest, name, albumName, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePlace")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePlaceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, name, album.Name, shared.TransformFields(req)); err != nil {
		log.Error().Err(err).Msg("failed to update place")

		return fmt.Errorf("failed to update place: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, name, albumName, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePlace")
	defer scope.End()
	defer scope.TraceIfError(err)

	album, err := s.albums.GetOwned(ctx, albumName, owner)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, name, album.Name); err != nil {
		log.Error().Err(err).Msg("failed to delete place")

		return fmt.Errorf("failed to delete place: %w", err)
	}

	return nil
}
