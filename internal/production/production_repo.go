package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coaltools/internal/scope"
	"coaltools/internal/workflow"
)

//go:generate mockgen -source=production_repo.go -destination=mock/production_repo_mock.go -package=mock

type ListFilter struct {
	Status      workflow.Status
	BuyerID     *uuid.UUID
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

type Repository interface {
	Create(ctx context.Context, report *ProductionReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionReport, error)
	FindAll(ctx context.Context, filter ListFilter) ([]ProductionReport, error)
	Update(ctx context.Context, report *ProductionReport) error
	// UpdateStatus hanya mengubah baris jika status saat ini masih from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status) (int64, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, report *ProductionReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ProductionReport, error) {
	var report ProductionReport
	err := r.db.WithContext(ctx).
		Preload("Buyer").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]ProductionReport, error) {
	var reports []ProductionReport
	q := r.db.WithContext(ctx).
		Preload("Buyer").
		Order("tanggal DESC, created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.BuyerID != nil {
		q = q.Where("buyer_id = ?", *filter.BuyerID)
	}
	if filter.PeriodStart != nil && filter.PeriodEnd != nil {
		q = q.Scopes(scope.Period("tanggal", *filter.PeriodStart, *filter.PeriodEnd))
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *repository) Update(ctx context.Context, report *ProductionReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&ProductionReport{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, workflow.StatusDraft).
		Delete(&ProductionReport{})
	return res.RowsAffected, res.Error
}
