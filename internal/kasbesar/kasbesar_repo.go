package kasbesar

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coaltools/internal/workflow"
)

//go:generate mockgen -source=kasbesar_repo.go -destination=mock/kasbesar_repo_mock.go -package=mock

type ListFilter struct {
	Status workflow.Status
	Bulan  string
	Jenis  string
}

type Repository interface {
	Create(ctx context.Context, trx *Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Transaction, error)
	Update(ctx context.Context, trx *Transaction) error
	// UpdateStatus hanya mengubah baris bila status saat ini masih from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status, catatan string) (int64, error)
	// DeleteDraft menghapus permanen transaksi yang masih DRAFT.
	DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error)
	// SoftDelete menandai transaksi non-DRAFT terhapus tanpa membuang jejak.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SumTotalByStatus(ctx context.Context, status workflow.Status) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, trx *Transaction) error {
	return r.db.WithContext(ctx).Create(trx).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	var trx Transaction
	err := r.db.WithContext(ctx).First(&trx, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	var trxs []Transaction
	q := r.db.WithContext(ctx).Order("tanggal DESC, created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Bulan != "" {
		q = q.Where("bulan = ?", filter.Bulan)
	}
	if filter.Jenis != "" {
		q = q.Where("jenis = ?", filter.Jenis)
	}
	if err := q.Find(&trxs).Error; err != nil {
		return nil, err
	}
	return trxs, nil
}

func (r *repository) Update(ctx context.Context, trx *Transaction) error {
	return r.db.WithContext(ctx).Save(trx).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status, catatan string) (int64, error) {
	values := map[string]any{"status": to}
	if catatan != "" {
		values["catatan_persetujuan"] = catatan
	}
	res := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("id = ? AND status = ?", id, workflow.StatusDraft).
		Delete(&Transaction{})
	return res.RowsAffected, res.Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Transaction{}).Error
}

func (r *repository) SumTotalByStatus(ctx context.Context, status workflow.Status) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}
