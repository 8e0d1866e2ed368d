package auth

import (
	"context"
	"os"
	"time"

	autherrors "coaltools/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
}

type service struct {
	repo     Repository
	sessions SessionStore
}

func NewService(repo Repository, sessions SessionStore) Service {
	return &service{repo: repo, sessions: sessions}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPairResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error) {
	userIDStr, err := s.sessions.Get(ctx, refreshToken)
	if err != nil {
		return TokenPairResponse{}, err
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrUserNotFound
	}

	// Rotasi: session lama dibuang sebelum yang baru dibuat.
	if err := s.sessions.Delete(ctx, refreshToken); err != nil {
		return TokenPairResponse{}, err
	}

	return s.issueTokenPair(ctx, user)
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	return s.sessions.Delete(ctx, refreshToken)
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	return &AuthResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return AuthResponse{}, autherrors.ErrEmailTaken
	}

	user := &User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *service) issueTokenPair(ctx context.Context, user *User) (TokenPairResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}

	// Refresh token opaque, hanya hidup di session store.
	refreshToken := uuid.New().String()
	if err := s.sessions.Save(ctx, refreshToken, user.ID.String(), refreshTokenTTL); err != nil {
		return TokenPairResponse{}, err
	}

	return TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: AuthResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

func (s *service) generateAccessToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
