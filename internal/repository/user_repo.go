package repository

import (
	"context"
	"strings"
	"time"

	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/store"

	"github.com/google/uuid"
)

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
}

type localUserRepo struct{ s *store.Store }

func (r *localUserRepo) load() ([]model.User, error) {
	return store.LoadCollection[model.User](r.s, KeyUsers)
}

func (r *localUserRepo) save(users []model.User) error {
	return store.SaveCollection(r.s, KeyUsers, users)
}

func (r *localUserRepo) Create(_ context.Context, u *model.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return r.save(append(users, *u))
}

func (r *localUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localUserRepo) Update(_ context.Context, u *model.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			u.UpdatedAt = time.Now().UTC()
			users[i] = *u
			return r.save(users)
		}
	}
	return ErrNotFound
}
