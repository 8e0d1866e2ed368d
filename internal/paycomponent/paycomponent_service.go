package paycomponent

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	paycomponenterrors "coaltools/internal/paycomponent/errors"
)

//go:generate mockgen -source=paycomponent_service.go -destination=mock/paycomponent_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, req CreatePayComponentRequest) (*PayComponentResponse, error)
	GetByID(ctx context.Context, id string) (*PayComponentResponse, error)
	List(ctx context.Context, includeInactive bool) ([]PayComponentResponse, error)
	Update(ctx context.Context, id string, req UpdatePayComponentRequest) (*PayComponentResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("paycomponent.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreatePayComponentRequest) (*PayComponentResponse, error) {
	component := &PayComponent{
		Nama:      req.Nama,
		Kind:      Kind(req.Kind),
		Taxable:   req.Taxable,
		Method:    Method(req.Method),
		Basis:     Basis(req.Basis),
		Rate:      req.Rate,
		Nominal:   req.Nominal,
		CapMin:    req.CapMin,
		CapMax:    req.CapMax,
		SortOrder: req.SortOrder,
		Aktif:     true,
	}

	if err := component.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, component); err != nil {
		s.logger.Error("gagal membuat pay component", zap.Error(err))
		return nil, err
	}

	s.logger.Info("pay component dibuat",
		zap.String("component_id", component.ID.String()),
		zap.String("nama", component.Nama),
		zap.String("kind", string(component.Kind)),
	)
	return mapToResponse(component), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*PayComponentResponse, error) {
	componentID, err := uuid.Parse(id)
	if err != nil {
		return nil, paycomponenterrors.ErrInvalidComponentID
	}

	component, err := s.repo.FindByID(ctx, componentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paycomponenterrors.ErrComponentNotFound
		}
		return nil, err
	}
	return mapToResponse(component), nil
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]PayComponentResponse, error) {
	components, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	out := make([]PayComponentResponse, 0, len(components))
	for i := range components {
		out = append(out, *mapToResponse(&components[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayComponentRequest) (*PayComponentResponse, error) {
	componentID, err := uuid.Parse(id)
	if err != nil {
		return nil, paycomponenterrors.ErrInvalidComponentID
	}

	component, err := s.repo.FindByID(ctx, componentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paycomponenterrors.ErrComponentNotFound
		}
		return nil, err
	}

	applyUpdate(component, req)

	if err := component.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, component); err != nil {
		s.logger.Error("gagal memperbarui pay component",
			zap.String("component_id", id), zap.Error(err))
		return nil, err
	}
	return mapToResponse(component), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	componentID, err := uuid.Parse(id)
	if err != nil {
		return paycomponenterrors.ErrInvalidComponentID
	}

	if _, err := s.repo.FindByID(ctx, componentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return paycomponenterrors.ErrComponentNotFound
		}
		return err
	}

	if err := s.repo.Deactivate(ctx, componentID); err != nil {
		return err
	}

	s.logger.Info("pay component dinonaktifkan", zap.String("component_id", id))
	return nil
}

func applyUpdate(component *PayComponent, req UpdatePayComponentRequest) {
	if req.Nama != nil {
		component.Nama = *req.Nama
	}
	if req.Kind != nil {
		component.Kind = Kind(*req.Kind)
	}
	if req.Taxable != nil {
		component.Taxable = *req.Taxable
	}
	if req.Method != nil {
		component.Method = Method(*req.Method)
	}
	if req.Basis != nil {
		component.Basis = Basis(*req.Basis)
	}
	if req.Rate != nil {
		component.Rate = *req.Rate
	}
	if req.Nominal != nil {
		component.Nominal = *req.Nominal
	}
	if req.CapMin != nil {
		component.CapMin = req.CapMin
	}
	if req.CapMax != nil {
		component.CapMax = req.CapMax
	}
	if req.SortOrder != nil {
		component.SortOrder = *req.SortOrder
	}
	if req.Aktif != nil {
		component.Aktif = *req.Aktif
	}
}

func mapToResponse(component *PayComponent) *PayComponentResponse {
	return &PayComponentResponse{
		ID:        component.ID.String(),
		Nama:      component.Nama,
		Kind:      string(component.Kind),
		Taxable:   component.Taxable,
		Method:    string(component.Method),
		Basis:     string(component.Basis),
		Rate:      component.Rate,
		Nominal:   component.Nominal,
		CapMin:    component.CapMin,
		CapMax:    component.CapMax,
		SortOrder: component.SortOrder,
		Aktif:     component.Aktif,
	}
}
