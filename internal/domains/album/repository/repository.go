package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"travelog/config"
	"travelog/infras/memory"
	"travelog/infras/otel"
	"travelog/infras/postgres"
	"travelog/internal/domains/album/model"
	noteModel "travelog/internal/domains/note/model"
	photoModel "travelog/internal/domains/photo/model"
	placeModel "travelog/internal/domains/place/model"
	"travelog/shared"
	"travelog/shared/constant"
	"travelog/shared/dto"
	"travelog/shared/logger"
	gRepo "travelog/shared/repository"
)

// Album is the trip store. GetByName matches case-insensitively and returns
// a zero model when nothing matches. Delete removes the album's photos,
// notes and places in the same transaction and is a no-op when the album
// does not exist.
type Album interface {
	GetByName(ctx context.Context, name string) (model.Album, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]model.Album, error)
	Insert(ctx context.Context, album model.Album) error
	Delete(ctx context.Context, name, ownerEmail string) error
}

func New(cfg *config.Config, db *postgres.Connection, store *memory.Store, otl otel.Otel) Album {
	if cfg.DemoMode() {
		return &memoryImpl{store: store}
	}

	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Album](model.EntityName, model.TableName, model.FieldName, db, otl),
		photos:     gRepo.NewRepository[photoModel.Photo](photoModel.EntityName, photoModel.TableName, photoModel.FieldID, db, otl),
		notes:      gRepo.NewRepository[noteModel.Note](noteModel.EntityName, noteModel.TableName, noteModel.FieldID, db, otl),
		places:     gRepo.NewRepository[placeModel.Place](placeModel.EntityName, placeModel.TableName, placeModel.FieldName, db, otl),
		db:         db,
		otel:       otl,
	}
}

type postgresImpl struct {
	gRepo.Repository[model.Album]
	photos gRepo.Repository[photoModel.Photo]
	notes  gRepo.Repository[noteModel.Note]
	places gRepo.Repository[placeModel.Place]
	db     *postgres.Connection
	otel   otel.Otel
}

func (r *postgresImpl) GetByName(ctx context.Context, name string) (model.Album, error) {
	return r.Get(ctx, shared.FilterByAlbum(name, model.FieldName, model.TableName))
}

func (r *postgresImpl) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Album, error) {
	return r.GetAll(
		ctx,
		dto.NewestFirst(model.FieldDate),
		shared.FilterByKey(ownerEmail, model.FieldUserEmail, model.TableName),
	)
}

func (r *postgresImpl) Delete(ctx context.Context, name, ownerEmail string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteAlbum")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin album delete transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	// Children first so a failure never leaves orphaned rows behind a
	// missing parent.
	if err = r.photos.DeleteTx(ctx, tx, shared.FilterByAlbum(name, photoModel.FieldAlbumID, photoModel.TableName)); err != nil {
		return fmt.Errorf("failed to delete album photos: %w", err)
	}

	if err = r.notes.DeleteTx(ctx, tx, shared.FilterByAlbum(name, noteModel.FieldAlbumID, noteModel.TableName)); err != nil {
		return fmt.Errorf("failed to delete album notes: %w", err)
	}

	if err = r.places.DeleteTx(ctx, tx, shared.FilterByAlbum(name, placeModel.FieldAlbumID, placeModel.TableName)); err != nil {
		return fmt.Errorf("failed to delete album places: %w", err)
	}

	albumFilter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: model.FieldName, Value: name, Operator: dto.FilterOperatorEq, Table: model.TableName},
			dto.Filter{Field: model.FieldUserEmail, Value: ownerEmail, Operator: dto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if err = r.DeleteTx(ctx, tx, albumFilter); err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit album delete transaction: %w", err)
	}

	return nil
}

type memoryImpl struct {
	store *memory.Store
}

func (r *memoryImpl) GetByName(_ context.Context, name string) (model.Album, error) {
	album, _ := r.store.FindAlbum(name)

	return album, nil
}

func (r *memoryImpl) ListByOwner(_ context.Context, ownerEmail string) ([]model.Album, error) {
	return r.store.AlbumsByOwner(ownerEmail), nil
}

func (r *memoryImpl) Insert(_ context.Context, album model.Album) error {
	r.store.PutAlbum(album)

	return nil
}

func (r *memoryImpl) Delete(_ context.Context, name, ownerEmail string) error {
	r.store.RemoveAlbum(name, ownerEmail)

	return nil
}
