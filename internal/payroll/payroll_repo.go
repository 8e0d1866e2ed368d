package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coaltools/internal/scope"
	"coaltools/internal/workflow"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock

type ListFilter struct {
	Status      workflow.Status
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

type Repository interface {
	// WithTx mengembalikan repository yang menjalankan seluruh query di atas
	// transaksi tx milik pemanggil; commit/rollback tetap urusan pemanggil.
	WithTx(tx *sql.Tx) Repository
	// CreateRun menyimpan run beserta seluruh line dan komponennya dalam
	// satu transaksi: semua tersimpan atau tidak sama sekali.
	CreateRun(ctx context.Context, run *PayrollRun) error
	FindByID(ctx context.Context, id uuid.UUID) (*PayrollRun, error)
	FindAll(ctx context.Context, filter ListFilter) ([]PayrollRun, error)
	// UpdateStatus melakukan update kondisional: baris hanya berubah jika
	// status saat ini masih sama dengan from. Mengembalikan jumlah baris
	// yang berubah; nol berarti ada transisi lain yang mendahului.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status, fields map[string]any) (int64, error)
	// DeleteDraft menghapus run hanya jika masih DRAFT.
	DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	// gorm menjalankan statement lewat ConnPool; mengarahkannya ke tx
	// membuat semua query repository ikut transaksi tersebut.
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	// Create dengan asosiasi: gorm membungkus run, lines, dan komponen
	// dalam satu transaksi database.
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC")
		}).
		Preload("Lines.Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC")
		}).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]PayrollRun, error) {
	var runs []PayrollRun
	q := r.db.WithContext(ctx).
		Preload("Lines").
		Order("periode_awal DESC, created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PeriodStart != nil && filter.PeriodEnd != nil {
		q = q.Scopes(scope.Period("periode_awal", *filter.PeriodStart, *filter.PeriodEnd))
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status, fields map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range fields {
		updates[k] = v
	}
	res := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, workflow.StatusDraft).
		Delete(&PayrollRun{})
	return res.RowsAffected, res.Error
}
