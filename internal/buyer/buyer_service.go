package buyer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	buyererrors "coaltools/internal/buyer/errors"
)

//go:generate mockgen -source=buyer_service.go -destination=mock/buyer_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, req CreateBuyerRequest) (*BuyerResponse, error)
	GetByID(ctx context.Context, id string) (*BuyerResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]BuyerResponse, error)
	Update(ctx context.Context, id string, req UpdateBuyerRequest) (*BuyerResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("buyer.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateBuyerRequest) (*BuyerResponse, error) {
	if req.HargaPerTonDefault <= 0 {
		return nil, buyererrors.ErrInvalidDefaultPrice
	}

	b := &Buyer{
		Nama:               req.Nama,
		Alamat:             req.Alamat,
		Telepon:            req.Telepon,
		Email:              req.Email,
		HargaPerTonDefault: req.HargaPerTonDefault,
		Aktif:              true,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("gagal membuat buyer", zap.Error(err))
		return nil, err
	}

	s.logger.Info("buyer dibuat",
		zap.String("buyer_id", b.ID.String()),
		zap.String("nama", b.Nama),
	)
	return mapToResponse(b), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*BuyerResponse, error) {
	buyerID, err := uuid.Parse(id)
	if err != nil {
		return nil, buyererrors.ErrInvalidBuyerID
	}

	b, err := s.repo.FindByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, buyererrors.ErrBuyerNotFound
		}
		return nil, err
	}
	return mapToResponse(b), nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]BuyerResponse, error) {
	buyers, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	out := make([]BuyerResponse, 0, len(buyers))
	for i := range buyers {
		out = append(out, *mapToResponse(&buyers[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBuyerRequest) (*BuyerResponse, error) {
	buyerID, err := uuid.Parse(id)
	if err != nil {
		return nil, buyererrors.ErrInvalidBuyerID
	}

	b, err := s.repo.FindByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, buyererrors.ErrBuyerNotFound
		}
		return nil, err
	}

	if req.Nama != nil {
		b.Nama = *req.Nama
	}
	if req.Alamat != nil {
		b.Alamat = *req.Alamat
	}
	if req.Telepon != nil {
		b.Telepon = *req.Telepon
	}
	if req.Email != nil {
		b.Email = *req.Email
	}
	if req.HargaPerTonDefault != nil {
		if *req.HargaPerTonDefault <= 0 {
			return nil, buyererrors.ErrInvalidDefaultPrice
		}
		b.HargaPerTonDefault = *req.HargaPerTonDefault
	}
	if req.Aktif != nil {
		b.Aktif = *req.Aktif
	}

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("gagal memperbarui buyer",
			zap.String("buyer_id", id), zap.Error(err))
		return nil, err
	}
	return mapToResponse(b), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	buyerID, err := uuid.Parse(id)
	if err != nil {
		return buyererrors.ErrInvalidBuyerID
	}

	if _, err := s.repo.FindByID(ctx, buyerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return buyererrors.ErrBuyerNotFound
		}
		return err
	}

	if err := s.repo.Deactivate(ctx, buyerID); err != nil {
		return err
	}

	s.logger.Info("buyer dinonaktifkan", zap.String("buyer_id", id))
	return nil
}

func mapToResponse(b *Buyer) *BuyerResponse {
	return &BuyerResponse{
		ID:                 b.ID.String(),
		Nama:               b.Nama,
		Alamat:             b.Alamat,
		Telepon:            b.Telepon,
		Email:              b.Email,
		HargaPerTonDefault: b.HargaPerTonDefault,
		Aktif:              b.Aktif,
	}
}
