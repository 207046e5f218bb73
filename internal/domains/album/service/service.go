package service

import (
	"context"
	"fmt"
	"strings"

	"travelog/config"
	"travelog/infras/otel"
	"travelog/internal/domains/album/model"
	"travelog/internal/domains/album/model/dto"
	"travelog/internal/domains/album/repository"
	"travelog/shared/cache"
	"travelog/shared/constant"
	"travelog/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "album:"

// Album owns trip-level operations. Every child domain resolves its parent
// through GetOwned, which is where the ownership invariant is enforced.
type Album interface {
	Create(ctx context.Context, req dto.CreateAlbumRequest, owner string) (dto.AlbumResponse, error)
	List(ctx context.Context, owner string) (dto.GetAlbumsResponse, error)
	GetOwned(ctx context.Context, name, owner string) (model.Album, error)
	Delete(ctx context.Context, name, owner string) error
}

type serviceImpl struct {
	repo  repository.Album
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Album, cfg *config.Config, cch cache.Cache, otl otel.Otel) Album {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cch,
		otel:  otl,
	}
}

// cacheKey is lowercased because album lookups are case-insensitive.
func cacheKey(name string) string {
	return cacheKeyPrefix + strings.ToLower(name)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAlbumRequest, owner string) (res dto.AlbumResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAlbum")
	defer scope.End()
	defer scope.TraceIfError(err)

	album := req.ToModel(owner)
	if err = s.repo.Insert(ctx, album); err != nil {
		log.Error().Err(err).Msg("failed to create album")

		return res, fmt.Errorf("failed to create album: %w", err)
	}

	if cacheErr := s.cache.Delete(ctx, cacheKey(album.Name)); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to invalidate album cache")
	}

	log.Info().Str("album", album.Name).Str("owner", owner).Msg("album created")

	res.FromModel(album)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, owner string) (res dto.GetAlbumsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAlbums")
	defer scope.End()
	defer scope.TraceIfError(err)

	albums, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		log.Error().Err(err).Msg("failed to list albums")

		return res, fmt.Errorf("failed to list albums: %w", err)
	}

	res.FromModels(albums)

	return res, nil
}

// GetOwned resolves an album by name and verifies it belongs to owner.
// Missing albums yield not-found; albums belonging to someone else yield
// forbidden.
func (s *serviceImpl) GetOwned(ctx context.Context, name, owner string) (album model.Album, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOwnedAlbum")
	defer scope.End()

	if cacheErr := s.cache.Get(ctx, cacheKey(name), &album); cacheErr != nil {
		album, err = s.repo.GetByName(ctx, name)
		if err != nil {
			log.Error().Err(err).Msg("failed to get album")

			return album, fmt.Errorf("failed to get album: %w", err)
		}

		if album.Name != "" {
			if saveErr := s.cache.Save(ctx, cacheKey(name), album, s.cfg.Cache.TTL); saveErr != nil {
				log.Warn().Err(saveErr).Msg("failed to cache album")
			}
		}
	}

	if album.Name == "" {
		return album, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if album.UserEmail != owner {
		return model.Album{}, failure.ForbiddenError // nolint:wrapcheck
	}

	return album, nil
}

func (s *serviceImpl) Delete(ctx context.Context, name, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAlbum")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, name, owner); err != nil {
		log.Error().Err(err).Msg("failed to delete album")

		return fmt.Errorf("failed to delete album: %w", err)
	}

	if cacheErr := s.cache.Delete(ctx, cacheKey(name)); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to invalidate album cache")
	}

	log.Info().Str("album", name).Str("owner", owner).Msg("album deleted")

	return nil
}
