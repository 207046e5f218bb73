package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"travelog/config"
	"travelog/infras/memory"
	"travelog/infras/otel"
	"travelog/infras/postgres"
	"travelog/internal/domains/note/model"
	"travelog/shared"
	"travelog/shared/dto"
	gRepo "travelog/shared/repository"
)

type Note interface {
	ListByAlbum(ctx context.Context, albumID string) ([]model.Note, error)
	Insert(ctx context.Context, note model.Note) error
	Update(ctx context.Context, id, albumID string, fields map[string]any) error
	Delete(ctx context.Context, id, albumID string) error
}

func New(cfg *config.Config, db *postgres.Connection, store *memory.Store, otl otel.Otel) Note {
	if cfg.DemoMode() {
		return &memoryImpl{store: store}
	}

	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Note](model.EntityName, model.TableName, model.FieldID, db, otl),
	}
}

type postgresImpl struct {
	gRepo.Repository[model.Note]
}

func byIDInAlbum(id, albumID string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: model.FieldID, Value: id, Operator: dto.FilterOperatorEq, Table: model.TableName},
			dto.Filter{Field: model.FieldAlbumID, Value: albumID, Operator: dto.FilterOperatorEqFold, Table: model.TableName},
		},
	}
}

func (r *postgresImpl) ListByAlbum(ctx context.Context, albumID string) ([]model.Note, error) {
	return r.GetAll(
		ctx,
		dto.NewestFirst(model.FieldDate),
		shared.FilterByAlbum(albumID, model.FieldAlbumID, model.TableName),
	)
}

func (r *postgresImpl) Update(ctx context.Context, id, albumID string, fields map[string]any) error {
	return r.Repository.Update(ctx, fields, byIDInAlbum(id, albumID))
}

func (r *postgresImpl) Delete(ctx context.Context, id, albumID string) error {
	return r.Repository.Delete(ctx, byIDInAlbum(id, albumID))
}

type memoryImpl struct {
	store *memory.Store
}

func (r *memoryImpl) ListByAlbum(_ context.Context, albumID string) ([]model.Note, error) {
	return r.store.NotesByAlbum(albumID), nil
}

func (r *memoryImpl) Insert(_ context.Context, note model.Note) error {
	r.store.PutNote(note)

	return nil
}

func (r *memoryImpl) Update(_ context.Context, id, albumID string, fields map[string]any) error {
	r.store.UpdateNote(id, albumID, func(note *model.Note) {
		if title, ok := fields[model.FieldTitle].(string); ok {
			note.Title = title
		}

		if content, ok := fields[model.FieldContent].(*string); ok {
			note.Content = content
		}
	})

	return nil
}

func (r *memoryImpl) Delete(_ context.Context, id, albumID string) error {
	r.store.RemoveNote(id, albumID)

	return nil
}
