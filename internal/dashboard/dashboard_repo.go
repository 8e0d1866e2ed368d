package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"coaltools/internal/employee"
	"coaltools/internal/payroll"
	"coaltools/internal/production"
	"coaltools/internal/workflow"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock

// Repository membaca angka agregat lintas tabel untuk ringkasan dashboard.
// Semua query bersifat read-only.
type Repository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountRunsByStatus(ctx context.Context, status workflow.Status) (int64, error)
	SumPaidNet(ctx context.Context) (int64, error)
	ProductionByStatus(ctx context.Context, status workflow.Status) (count int64, nettoTon decimal.Decimal, value int64, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("aktif = ?", true).
		Count(&count).Error
	return count, err
}

func (r *repository) CountRunsByStatus(ctx context.Context, status workflow.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&payroll.PayrollRun{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) SumPaidNet(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&payroll.PayrollLine{}).
		Joins("JOIN payroll_runs ON payroll_runs.id = payroll_lines.payroll_run_id").
		Where("payroll_runs.status = ? AND payroll_runs.deleted_at IS NULL", workflow.StatusPaid).
		Select("COALESCE(SUM(payroll_lines.net), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) ProductionByStatus(ctx context.Context, status workflow.Status) (int64, decimal.Decimal, int64, error) {
	var row struct {
		Count    int64
		NettoTon decimal.Decimal
		Value    int64
	}
	err := r.db.WithContext(ctx).
		Model(&production.ProductionReport{}).
		Where("status = ?", status).
		Select("COUNT(*) AS count, COALESCE(SUM(netto_ton), 0) AS netto_ton, COALESCE(SUM(total), 0) AS value").
		Scan(&row).Error
	if err != nil {
		return 0, decimal.Zero, 0, err
	}
	return row.Count, row.NettoTon, row.Value, nil
}
