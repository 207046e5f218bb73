package service_test

import (
	"context"
	"testing"

	"travelog/config"
	"travelog/infras/memory"
	"travelog/infras/otel/mocks"
	albumModel "travelog/internal/domains/album/model"
	albumRepository "travelog/internal/domains/album/repository"
	albumService "travelog/internal/domains/album/service"
	"travelog/internal/domains/place/model/dto"
	"travelog/internal/domains/place/repository"
	"travelog/internal/domains/place/service"
	"travelog/shared/cache"
	"travelog/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forceDemoMode(t *testing.T) {
	t.Helper()

	for _, envVar := range []string{
		"DATABASE_URL", "POSTGRES_URL", "POSTGRES_PRISMA_URL",
		"POSTGRES_URL_NON_POOLING", "DATABASE_URL_UNPOOLED",
		"PGHOST", "PGUSER", "PGPASSWORD", "PGDATABASE",
	} {
		t.Setenv(envVar, "")
	}
}

func newMemoryService(t *testing.T, store *memory.Store) service.Place {
	t.Helper()
	forceDemoMode(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	mockOtel := mocks.NewOtel()
	albums := albumService.New(
		albumRepository.New(cfg, nil, store, mockOtel),
		cfg,
		cache.New(nil, mockOtel),
		mockOtel,
	)

	return service.New(repository.New(cfg, nil, store, mockOtel), albums, cfg, mockOtel)
}

func TestPlaceService_CreateAndList(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com"})

	svc := newMemoryService(t, store)
	ctx := context.Background()

	link := "https://maps.example.com/sensoji"
	created, err := svc.Create(ctx, dto.CreatePlaceRequest{Name: "Senso-ji", Link: &link}, "JAPAN 2024", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Senso-ji", created.Name)
	assert.Equal(t, "Japan 2024", created.AlbumID)
	require.NotNil(t, created.Link)
	assert.Equal(t, link, *created.Link)

	res, err := svc.List(ctx, "japan 2024", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	_, err = svc.List(ctx, "Japan 2024", "intruder@x.com")
	assert.Equal(t, 403, failure.GetCode(err))

	_, err = svc.List(ctx, "No such trip", "a@b.com")
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestPlaceService_Update(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com"})

	svc := newMemoryService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreatePlaceRequest{Name: "Senso-ji"}, "Japan 2024", "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, created.Link)

	t.Run("sets the link", func(t *testing.T) {
		link := "https://maps.example.com/sensoji"
		err := svc.Update(ctx, dto.UpdatePlaceRequest{Link: &link}, "Senso-ji", "Japan 2024", "a@b.com")
		require.NoError(t, err)

		res, err := svc.List(ctx, "Japan 2024", "a@b.com")
		require.NoError(t, err)
		require.Len(t, res.Places, 1)
		require.NotNil(t, res.Places[0].Link)
		assert.Equal(t, link, *res.Places[0].Link)
	})

	t.Run("empty update is a bad request", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdatePlaceRequest{}, "Senso-ji", "Japan 2024", "a@b.com")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("foreign album is forbidden", func(t *testing.T) {
		link := "https://evil.example.com"
		err := svc.Update(ctx, dto.UpdatePlaceRequest{Link: &link}, "Senso-ji", "Japan 2024", "intruder@x.com")
		require.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestPlaceService_Delete(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com"})

	svc := newMemoryService(t, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreatePlaceRequest{Name: "Senso-ji"}, "Japan 2024", "a@b.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "Senso-ji", "Japan 2024", "a@b.com"))

	res, err := svc.List(ctx, "Japan 2024", "a@b.com")
	require.NoError(t, err)
	assert.Zero(t, res.Total)

	require.NoError(t, svc.Delete(ctx, "Senso-ji", "Japan 2024", "a@b.com"))
}
