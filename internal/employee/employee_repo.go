package employee

import (
	"context"
	"database/sql"

	"coaltools/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	// WithTx mengembalikan repository yang menjalankan seluruh query di atas
	// transaksi tx milik pemanggil.
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, employee *Employee) error
	FindAll(ctx context.Context, includeInactive bool) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, employee *Employee) error
	Deactivate(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]Employee, error) {
	var employees []Employee
	db := r.db.WithContext(ctx).Order("nama ASC")
	if !includeInactive {
		db = db.Scopes(scope.Active())
	}
	err := db.Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repository) Update(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("aktif", false).Error
}
