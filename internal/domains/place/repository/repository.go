package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"travelog/config"
	"travelog/infras/memory"
	"travelog/infras/otel"
	"travelog/infras/postgres"
	"travelog/internal/domains/place/model"
	"travelog/shared"
	"travelog/shared/dto"
	gRepo "travelog/shared/repository"
)

type Place interface {
	ListByAlbum(ctx context.Context, albumID string) ([]model.Place, error)
	Insert(ctx context.Context, place model.Place) error
	Update(ctx context.Context, name, albumID string, fields map[string]any) error
	Delete(ctx context.Context, name, albumID string) error
}

func New(cfg *config.Config, db *postgres.Connection, store *memory.Store, otl otel.Otel) Place {
	if cfg.DemoMode() {
		return &memoryImpl{store: store}
	}

	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Place](model.EntityName, model.TableName, model.FieldName, db, otl),
	}
}

type postgresImpl struct {
	gRepo.Repository[model.Place]
}

func byNameInAlbum(name, albumID string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: model.FieldName, Value: name, Operator: dto.FilterOperatorEq, Table: model.TableName},
			dto.Filter{Field: model.FieldAlbumID, Value: albumID, Operator: dto.FilterOperatorEqFold, Table: model.TableName},
		},
	}
}

func (r *postgresImpl) ListByAlbum(ctx context.Context, albumID string) ([]model.Place, error) {
	return r.GetAll(
		ctx,
		dto.NewestFirst(model.FieldDate),
		shared.FilterByAlbum(albumID, model.FieldAlbumID, model.TableName),
	)
}

func (r *postgresImpl) Update(ctx context.Context, name, albumID string, fields map[string]any) error {
	return r.Repository.Update(ctx, fields, byNameInAlbum(name, albumID))
}

func (r *postgresImpl) Delete(ctx context.Context, name, albumID string) error {
	return r.Repository.Delete(ctx, byNameInAlbum(name, albumID))
}

type memoryImpl struct {
	store *memory.Store
}

func (r *memoryImpl) ListByAlbum(_ context.Context, albumID string) ([]model.Place, error) {
	return r.store.PlacesByAlbum(albumID), nil
}

func (r *memoryImpl) Insert(_ context.Context, place model.Place) error {
	r.store.PutPlace(place)

	return nil
}

func (r *memoryImpl) Update(_ context.Context, name, albumID string, fields map[string]any) error {
	r.store.UpdatePlace(name, albumID, func(place *model.Place) {
		if link, ok := fields[model.FieldLink].(*string); ok {
			place.Link = link
		}
	})

	return nil
}

func (r *memoryImpl) Delete(_ context.Context, name, albumID string) error {
	r.store.RemovePlace(name, albumID)

	return nil
}
