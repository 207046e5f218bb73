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
	"travelog/internal/domains/note/model/dto"
	"travelog/internal/domains/note/repository"
	"travelog/internal/domains/note/service"
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

func newMemoryService(t *testing.T, store *memory.Store) service.Note {
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

func TestNoteService_CreateAndList(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com"})

	svc := newMemoryService(t, store)
	ctx := context.Background()

	content := "Ramen was excellent"
	created, err := svc.Create(ctx, dto.CreateNoteRequest{Title: "Day one", Content: &content}, "japan 2024", "a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Japan 2024", created.AlbumID)
	require.NotNil(t, created.Content)
	assert.Equal(t, content, *created.Content)

	res, err := svc.List(ctx, "Japan 2024", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	_, err = svc.List(ctx, "Japan 2024", "intruder@x.com")
	assert.Equal(t, 403, failure.GetCode(err))
}

func TestNoteService_Update(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com"})

	svc := newMemoryService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateNoteRequest{Title: "Day one"}, "Japan 2024", "a@b.com")
	require.NoError(t, err)

	t.Run("updates the given fields only", func(t *testing.T) {
		newContent := "Rewritten"
		err := svc.Update(ctx, dto.UpdateNoteRequest{Content: &newContent}, created.ID, "Japan 2024", "a@b.com")
		require.NoError(t, err)

		res, err := svc.List(ctx, "Japan 2024", "a@b.com")
		require.NoError(t, err)
		require.Len(t, res.Notes, 1)
		assert.Equal(t, "Day one", res.Notes[0].Title)
		require.NotNil(t, res.Notes[0].Content)
		assert.Equal(t, newContent, *res.Notes[0].Content)
	})

	t.Run("empty update is a bad request", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdateNoteRequest{}, created.ID, "Japan 2024", "a@b.com")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("foreign album is forbidden", func(t *testing.T) {
		newTitle := dto.UpdateNoteRequest{Title: "Hijacked"}
		err := svc.Update(ctx, newTitle, created.ID, "Japan 2024", "intruder@x.com")
		require.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestNoteService_Delete(t *testing.T) {
	store := memory.New()
	store.PutAlbum(albumModel.Album{Name: "Japan 2024", UserEmail: "a@b.com"})

	svc := newMemoryService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateNoteRequest{Title: "Day one"}, "Japan 2024", "a@b.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, "Japan 2024", "a@b.com"))

	res, err := svc.List(ctx, "Japan 2024", "a@b.com")
	require.NoError(t, err)
	assert.Zero(t, res.Total)

	require.NoError(t, svc.Delete(ctx, created.ID, "Japan 2024", "a@b.com"))
}
