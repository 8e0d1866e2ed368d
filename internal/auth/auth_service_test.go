package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coaltools/internal/auth"
	autherrors "coaltools/internal/auth/errors"
)

type fakeAuthRepository struct {
	getByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	createFn     func(ctx context.Context, user *auth.User) error
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (f *fakeSessionStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	f.sessions[token] = userID
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return "", autherrors.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func testUser(t *testing.T, password string) *auth.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &auth.User{
		ID:       uuid.New(),
		Name:     "Siti Admin",
		Email:    "siti@tambang.co.id",
		Password: string(hashed),
		Role:     "ADMIN",
		IsActive: true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "rahasia-tambang")

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			assert.Equal(t, user.Email, email)
			return user, nil
		},
	}
	sessions := newFakeSessionStore()
	svc := auth.NewService(repo, sessions)

	pair, err := svc.Login(ctx, user.Email, "rahasia-tambang")

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, user.Email, pair.User.Email)
	assert.Equal(t, user.ID.String(), sessions.sessions[pair.RefreshToken])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "rahasia-tambang")

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
	}
	svc := auth.NewService(repo, newFakeSessionStore())

	_, err := svc.Login(ctx, user.Email, "salah")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(&fakeAuthRepository{}, newFakeSessionStore())

	_, err := svc.Login(ctx, "tidakada@tambang.co.id", "apapun")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "rahasia-tambang")

	repo := &fakeAuthRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	sessions := newFakeSessionStore()
	sessions.sessions["refresh-lama"] = user.ID.String()
	svc := auth.NewService(repo, sessions)

	pair, err := svc.Refresh(ctx, "refresh-lama")

	require.NoError(t, err)
	assert.NotContains(t, sessions.sessions, "refresh-lama")
	assert.Equal(t, user.ID.String(), sessions.sessions[pair.RefreshToken])
}

func TestAuthService_Refresh_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(&fakeAuthRepository{}, newFakeSessionStore())

	_, err := svc.Refresh(ctx, "tidak-terdaftar")

	assert.ErrorIs(t, err, autherrors.ErrSessionNotFound)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "rahasia-tambang")

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
	}
	svc := auth.NewService(repo, newFakeSessionStore())

	_, err := svc.Register(ctx, auth.RegisterRequest{
		Name:     "Siti Lain",
		Email:    user.Email,
		Password: "password123",
		Role:     "STAFF",
	})

	assert.ErrorIs(t, err, autherrors.ErrEmailTaken)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctx := context.Background()

	var created *auth.User
	repo := &fakeAuthRepository{
		createFn: func(ctx context.Context, user *auth.User) error {
			created = user
			return nil
		},
	}
	svc := auth.NewService(repo, newFakeSessionStore())

	resp, err := svc.Register(ctx, auth.RegisterRequest{
		Name:     "Budi Staff",
		Email:    "budi@tambang.co.id",
		Password: "password123",
		Role:     "STAFF",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	assert.Equal(t, "STAFF", resp.Role)
}
