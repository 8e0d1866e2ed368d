package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"coaltools/internal/employee"
	"coaltools/internal/events"
	"coaltools/internal/messaging/kafka"
	"coaltools/internal/paycomponent"
	"coaltools/internal/payroll"
	payrollerrors "coaltools/internal/payroll/errors"
	"coaltools/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepository struct {
	createRunFn    func(ctx context.Context, run *payroll.PayrollRun) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error)
	findAllFn      func(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollRun, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, from, to workflow.Status, fields map[string]any) (int64, error)
	deleteDraftFn  func(ctx context.Context, id uuid.UUID) (int64, error)
	boundTx        *sql.Tx
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	f.boundTx = tx
	return f
}

func (f *fakePayrollRepository) CreateRun(ctx context.Context, run *payroll.PayrollRun) error {
	if f.createRunFn != nil {
		return f.createRunFn(ctx, run)
	}
	return nil
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindAll(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollRun, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakePayrollRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status, fields map[string]any) (int64, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, from, to, fields)
	}
	return 1, nil
}

func (f *fakePayrollRepository) DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.deleteDraftFn != nil {
		return f.deleteDraftFn(ctx, id)
	}
	return 1, nil
}

type fakeEmployeeDirectory struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeDirectory) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{ID: uuid.MustParse(id), Nama: "Budi", KontrakUpahHarian: 200_000, Aktif: true}, nil
}

type fakeComponentCatalog struct {
	listActiveFn func(ctx context.Context) ([]paycomponent.PayComponent, error)
}

func (f *fakeComponentCatalog) ListActive(ctx context.Context) ([]paycomponent.PayComponent, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payrollServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   payroll.Service
	repo      *fakePayrollRepository
	employees *fakeEmployeeDirectory
	catalog   *fakeComponentCatalog
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	employees := &fakeEmployeeDirectory{}
	catalog := &fakeComponentCatalog{}
	svc := payroll.NewService(db, repo, employees, catalog)

	return &payrollServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		employees: employees,
		catalog:   catalog,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPayrollService_CreateRun(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.catalog.listActiveFn = func(ctx context.Context) ([]paycomponent.PayComponent, error) {
		return []paycomponent.PayComponent{
			{
				ID:      uuid.New(),
				Nama:    "Uang Makan",
				Kind:    paycomponent.KindEarning,
				Method:  paycomponent.MethodFlat,
				Nominal: 500_000,
				Aktif:   true,
			},
		}, nil
	}
	deps.repo.createRunFn = func(ctx context.Context, run *payroll.PayrollRun) error {
		run.ID = uuid.New()
		assert.Equal(t, workflow.StatusDraft, run.Status)
		if assert.Len(t, run.Lines, 1) {
			// gaji pokok 200.000 x 22 + uang makan 500.000
			assert.Equal(t, int64(4_900_000), run.Lines[0].Gross)
		}
		return nil
	}

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.CreateRun(ctx, actorID, payroll.CreateRunRequest{
		PeriodeAwal:  "2026-07-01",
		PeriodeAkhir: "2026-07-31",
		Lines: []payroll.CreateRunLineRequest{
			{EmployeeID: employeeID, Workdays: 22},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, string(workflow.StatusDraft), resp.Status)
	assert.Equal(t, int64(4_900_000), resp.TotalGross)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Budi", resp.Lines[0].EmployeeName)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_CreateRun_InactiveEmployee(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{ID: uuid.MustParse(id), Nama: "Budi", Aktif: false}, nil
	}

	_, err := deps.service.CreateRun(ctx, actorID, payroll.CreateRunRequest{
		PeriodeAwal:  "2026-07-01",
		PeriodeAkhir: "2026-07-31",
		Lines: []payroll.CreateRunLineRequest{
			{EmployeeID: employeeID, Workdays: 22},
		},
	})

	assert.ErrorIs(t, err, payrollerrors.ErrLineEmployeeInactive)
}

func TestPayrollService_CreateRun_DuplicateEmployee(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.CreateRun(ctx, actorID, payroll.CreateRunRequest{
		PeriodeAwal:  "2026-07-01",
		PeriodeAkhir: "2026-07-31",
		Lines: []payroll.CreateRunLineRequest{
			{EmployeeID: employeeID, Workdays: 22},
			{EmployeeID: employeeID, Workdays: 20},
		},
	})

	assert.ErrorIs(t, err, payrollerrors.ErrDuplicateLineEmployee)
}

func TestPayrollService_CreateRun_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.CreateRun(ctx, actorID, payroll.CreateRunRequest{
		PeriodeAwal:  "2026-07-31",
		PeriodeAkhir: "2026-07-01",
		Lines: []payroll.CreateRunLineRequest{
			{EmployeeID: uuid.New().String(), Workdays: 22},
		},
	})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
}

func TestPayrollService_Transition(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	runID := uuid.New()

	t.Run("reviewed to approved records approver", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: id, Status: workflow.StatusReviewed}, nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, id uuid.UUID, from, to workflow.Status, fields map[string]any) (int64, error) {
			assert.Equal(t, workflow.StatusReviewed, from)
			assert.Equal(t, workflow.StatusApproved, to)
			assert.Contains(t, fields, "approved_by")
			return 1, nil
		}

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.Transition(ctx, runID.String(), actorID, "APPROVED")

		require.NoError(t, err)
		assert.Equal(t, string(workflow.StatusApproved), resp.Status)
		assert.Equal(t, actorID, resp.ApprovedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approved to paid records paid_at", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: id, Status: workflow.StatusApproved}, nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, id uuid.UUID, from, to workflow.Status, fields map[string]any) (int64, error) {
			assert.Contains(t, fields, "paid_at")
			return 1, nil
		}

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.Transition(ctx, runID.String(), actorID, "PAID")

		require.NoError(t, err)
		assert.Equal(t, string(workflow.StatusPaid), resp.Status)
		assert.NotNil(t, resp.PaidAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("draft straight to approved rejected", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: id, Status: workflow.StatusDraft}, nil
		}

		_, err := deps.service.Transition(ctx, runID.String(), actorID, "APPROVED")

		var invalid *workflow.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, workflow.StatusDraft, invalid.From)
		assert.Equal(t, workflow.StatusApproved, invalid.To)
	})

	t.Run("concurrent transition detected", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: id, Status: workflow.StatusDraft}, nil
		}
		deps.repo.updateStatusFn = func(ctx context.Context, id uuid.UUID, from, to workflow.Status, fields map[string]any) (int64, error) {
			return 0, nil
		}

		expectTx(t, deps.sqlMock, false)
		_, err := deps.service.Transition(ctx, runID.String(), actorID, "REVIEWED")

		assert.ErrorIs(t, err, payrollerrors.ErrStatusConflict)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_Transition_QueuesLifecycleEvent(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	runID := uuid.New()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: id, Status: workflow.StatusDraft}, nil
		},
	}
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			assert.Equal(t, events.PayrollLifecycleTopic, event.Topic)
			var payload events.PayrollStatusChangedEvent
			err := json.Unmarshal(event.Payload, &payload)
			assert.NoError(t, err)
			assert.Equal(t, runID.String(), payload.PayrollRunID)
			assert.Equal(t, string(workflow.StatusDraft), payload.FromStatus)
			assert.Equal(t, string(workflow.StatusReviewed), payload.ToStatus)
			return nil
		},
	}
	svc := payroll.NewServiceWithOutbox(db, repo, &fakeEmployeeDirectory{}, &fakeComponentCatalog{}, outbox)

	expectTx(t, sqlMock, true)
	_, err = svc.Transition(ctx, runID.String(), actorID, "REVIEWED")

	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPayrollService_CreateRun_OutboxFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &fakePayrollRepository{
		createRunFn: func(ctx context.Context, run *payroll.PayrollRun) error {
			run.ID = uuid.New()
			return nil
		},
	}
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			return errors.New("outbox insert gagal")
		},
	}
	svc := payroll.NewServiceWithOutbox(db, repo, &fakeEmployeeDirectory{}, &fakeComponentCatalog{}, outbox)

	expectTx(t, sqlMock, false)
	_, err = svc.CreateRun(ctx, actorID, payroll.CreateRunRequest{
		PeriodeAwal:  "2026-07-01",
		PeriodeAkhir: "2026-07-31",
		Lines: []payroll.CreateRunLineRequest{
			{EmployeeID: employeeID, Workdays: 22},
		},
	})

	require.Error(t, err)
	// run ditulis lewat repository yang terikat transaksi yang sama, jadi
	// rollback ikut membatalkan penyimpanan run
	require.NotNil(t, repo.boundTx)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Delete_OnlyDraft(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	t.Run("non-draft rejected", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: id, Status: workflow.StatusPaid}, nil
		}
		deps.repo.deleteDraftFn = func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, nil
		}

		err := deps.service.Delete(ctx, runID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrRunNotDraft)
	})

	t.Run("draft deleted", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: id, Status: workflow.StatusDraft}, nil
		}

		err := deps.service.Delete(ctx, runID.String())

		assert.NoError(t, err)
	})
}

func TestPayrollService_List(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollRun, error) {
		assert.Equal(t, workflow.StatusDraft, filter.Status)
		return []payroll.PayrollRun{
			{
				ID:           uuid.New(),
				PeriodeAwal:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
				PeriodeAkhir: time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
				Status:       workflow.StatusDraft,
				Lines: []payroll.PayrollLine{
					{Gross: 5_000_000, Net: 4_500_000},
					{Gross: 3_000_000, Net: 3_000_000},
				},
			},
		}, nil
	}

	resp, err := deps.service.List(ctx, "DRAFT")

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].LineCount)
	assert.Equal(t, int64(8_000_000), resp[0].TotalGross)
	assert.Equal(t, int64(7_500_000), resp[0].TotalNet)
}

func TestPayrollService_CreateRun_FlatOverrideApplied(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()
	componentID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{ID: uuid.MustParse(id), Nama: "Siti", Aktif: true}, nil
	}
	deps.catalog.listActiveFn = func(ctx context.Context) ([]paycomponent.PayComponent, error) {
		return []paycomponent.PayComponent{
			{
				ID:      componentID,
				Nama:    "Uang Makan",
				Kind:    paycomponent.KindEarning,
				Method:  paycomponent.MethodFlat,
				Nominal: 500_000,
				Aktif:   true,
			},
		}, nil
	}
	deps.repo.createRunFn = func(ctx context.Context, run *payroll.PayrollRun) error {
		run.ID = uuid.New()
		if assert.Len(t, run.Lines, 1) {
			assert.Equal(t, int64(650_000), run.Lines[0].Gross)
		}
		return nil
	}

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.CreateRun(ctx, actorID, payroll.CreateRunRequest{
		PeriodeAwal:  "2026-07-01",
		PeriodeAkhir: "2026-07-31",
		TaxRate:      decimal.Zero,
		Lines: []payroll.CreateRunLineRequest{
			{
				EmployeeID:    employeeID,
				FlatOverrides: map[string]int64{componentID.String(): 650_000},
			},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(650_000), resp.TotalGross)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
