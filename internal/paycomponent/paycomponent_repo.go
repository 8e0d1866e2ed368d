package paycomponent

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coaltools/internal/scope"
)

//go:generate mockgen -source=paycomponent_repo.go -destination=mock/paycomponent_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, component *PayComponent) error
	FindByID(ctx context.Context, id uuid.UUID) (*PayComponent, error)
	FindAll(ctx context.Context, includeInactive bool) ([]PayComponent, error)
	ListActive(ctx context.Context) ([]PayComponent, error)
	Update(ctx context.Context, component *PayComponent) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, component *PayComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*PayComponent, error) {
	var component PayComponent
	err := r.db.WithContext(ctx).First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]PayComponent, error) {
	var components []PayComponent
	q := r.db.WithContext(ctx).Order(catalogOrder)
	if !includeInactive {
		q = q.Scopes(scope.Active())
	}
	if err := q.Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

// Urutan katalog: order menaik, EARNING sebelum DEDUCTION saat seri,
// lalu nama. Urutan ini menentukan running gross di kalkulator.
const catalogOrder = "sort_order ASC, CASE WHEN kind = 'EARNING' THEN 0 ELSE 1 END ASC, nama ASC"

func (r *repository) ListActive(ctx context.Context) ([]PayComponent, error) {
	var components []PayComponent
	err := r.db.WithContext(ctx).
		Scopes(scope.Active()).
		Order(catalogOrder).
		Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

func (r *repository) Update(ctx context.Context, component *PayComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&PayComponent{}).
		Where("id = ?", id).
		Update("aktif", false).Error
}
