package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"travelog/config"
	"travelog/infras/memory"
	"travelog/infras/otel"
	"travelog/infras/postgres"
	"travelog/internal/domains/photo/model"
	"travelog/shared"
	"travelog/shared/dto"
	gRepo "travelog/shared/repository"
)

// Photo is the photo store. Listings match the album reference
// case-insensitively and come back newest first. Delete is a no-op when no
// row matches.
type Photo interface {
	ListByAlbum(ctx context.Context, albumID string) ([]model.Photo, error)
	Insert(ctx context.Context, photo model.Photo) error
	Delete(ctx context.Context, id, albumID string) error
}

func New(cfg *config.Config, db *postgres.Connection, store *memory.Store, otl otel.Otel) Photo {
	if cfg.DemoMode() {
		return &memoryImpl{store: store}
	}

	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Photo](model.EntityName, model.TableName, model.FieldID, db, otl),
	}
}

type postgresImpl struct {
	gRepo.Repository[model.Photo]
}

func (r *postgresImpl) ListByAlbum(ctx context.Context, albumID string) ([]model.Photo, error) {
	return r.GetAll(
		ctx,
		dto.NewestFirst(model.FieldDate),
		shared.FilterByAlbum(albumID, model.FieldAlbumID, model.TableName),
	)
}

func (r *postgresImpl) Delete(ctx context.Context, id, albumID string) error {
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: model.FieldID, Value: id, Operator: dto.FilterOperatorEq, Table: model.TableName},
			dto.Filter{Field: model.FieldAlbumID, Value: albumID, Operator: dto.FilterOperatorEqFold, Table: model.TableName},
		},
	}

	return r.Repository.Delete(ctx, filter)
}

type memoryImpl struct {
	store *memory.Store
}

func (r *memoryImpl) ListByAlbum(_ context.Context, albumID string) ([]model.Photo, error) {
	return r.store.PhotosByAlbum(albumID), nil
}

func (r *memoryImpl) Insert(_ context.Context, photo model.Photo) error {
	r.store.PutPhoto(photo)

	return nil
}

func (r *memoryImpl) Delete(_ context.Context, id, albumID string) error {
	r.store.RemovePhoto(id, albumID)

	return nil
}
