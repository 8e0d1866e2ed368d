package buyer

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coaltools/internal/scope"
)

//go:generate mockgen -source=buyer_repo.go -destination=mock/buyer_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, buyer *Buyer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Buyer, error)
	FindAll(ctx context.Context, includeInactive bool) ([]Buyer, error)
	Update(ctx context.Context, buyer *Buyer) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, buyer *Buyer) error {
	return r.db.WithContext(ctx).Create(buyer).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Buyer, error) {
	var buyer Buyer
	err := r.db.WithContext(ctx).First(&buyer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]Buyer, error) {
	var buyers []Buyer
	q := r.db.WithContext(ctx).Order("nama ASC")
	if !includeInactive {
		q = q.Scopes(scope.Active())
	}
	if err := q.Find(&buyers).Error; err != nil {
		return nil, err
	}
	return buyers, nil
}

func (r *repository) Update(ctx context.Context, buyer *Buyer) error {
	return r.db.WithContext(ctx).Save(buyer).Error
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Buyer{}).
		Where("id = ?", id).
		Update("aktif", false).Error
}
