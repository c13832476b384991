package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/config"
	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/repository"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cloned := *u
	r.users[u.ID] = &cloned
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cloned := *u
	r.users[u.ID] = &cloned
	return nil
}

func newAuthService(repo repository.UserRepository) AuthService {
	return NewAuthService(repo, &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1})
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Name: "Dana", Email: "Dana@Example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", user.Email, "emails are normalized to lowercase")
	assert.True(t, user.Active)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "dana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, user.ID, resp.User.ID)

	// The token must verify against the configured secret and carry the
	// user id claim the auth middleware reads.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID, claims["user_id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "dana@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Name: "Other", Email: "DANA@example.com", Password: "other"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, uuid.MustParse(user.ID))
	require.NoError(t, err)
	stored.Active = false
	require.NoError(t, repo.Update(ctx, stored))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "dana@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
