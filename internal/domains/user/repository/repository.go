package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"travelog/config"
	"travelog/infras/memory"
	"travelog/infras/otel"
	"travelog/infras/postgres"
	"travelog/internal/domains/user/model"
	"travelog/shared"
	gRepo "travelog/shared/repository"
)

// User is the account store. GetByEmail returns a zero model when no row
// matches; absence is not an error.
type User interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Insert(ctx context.Context, user model.User) error
	Exist(ctx context.Context, email string) (bool, error)
}

// New picks the backend once at startup. Demo mode gets the in-memory
// store, everything else goes to Postgres.
func New(cfg *config.Config, db *postgres.Connection, store *memory.Store, otel otel.Otel) User {
	if cfg.DemoMode() {
		return &memoryImpl{store: store}
	}

	return &postgresImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldEmail, db, otel),
	}
}

type postgresImpl struct {
	gRepo.Repository[model.User]
}

func (r *postgresImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.Get(ctx, shared.FilterByKey(email, model.FieldEmail, model.TableName))
}

func (r *postgresImpl) Exist(ctx context.Context, email string) (bool, error) {
	return r.Repository.Exist(ctx, shared.FilterByKey(email, model.FieldEmail, model.TableName))
}

type memoryImpl struct {
	store *memory.Store
}

func (r *memoryImpl) GetByEmail(_ context.Context, email string) (model.User, error) {
	user, _ := r.store.GetUser(email)

	return user, nil
}

func (r *memoryImpl) Insert(_ context.Context, user model.User) error {
	r.store.PutUser(user)

	return nil
}

func (r *memoryImpl) Exist(_ context.Context, email string) (bool, error) {
	_, found := r.store.GetUser(email)

	return found, nil
}
