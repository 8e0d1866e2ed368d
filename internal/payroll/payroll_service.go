package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coaltools/internal/employee"
	"coaltools/internal/events"
	"coaltools/internal/messaging/kafka"
	"coaltools/internal/paycomponent"
	payrollerrors "coaltools/internal/payroll/errors"
	"coaltools/internal/shared/apperror"
	"coaltools/internal/shared/contextutil"
	"coaltools/internal/workflow"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock

// EmployeeDirectory memasok data karyawan untuk snapshot kalkulasi.
// employee.Repository memenuhinya.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// ComponentCatalog memasok katalog komponen aktif, terurut sesuai konfigurasi.
// paycomponent.Repository memenuhinya.
type ComponentCatalog interface {
	ListActive(ctx context.Context) ([]paycomponent.PayComponent, error)
}

type Service interface {
	CreateRun(ctx context.Context, actorID string, req CreateRunRequest) (*PayrollRunResponse, error)
	GetByID(ctx context.Context, id string) (*PayrollRunResponse, error)
	List(ctx context.Context, status string) ([]PayrollRunSummaryResponse, error)
	// Transition memindahkan run ke status target sesuai tabel transisi.
	// Saat masuk APPROVED, aktor tercatat sebagai approver; saat masuk PAID,
	// waktu pembayaran tercatat.
	Transition(ctx context.Context, id, actorID, target string) (*PayrollRunResponse, error)
	// Breakdown meratakan run menjadi satu baris per komponen per karyawan.
	Breakdown(ctx context.Context, id string) ([]BreakdownRowResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	catalog   ComponentCatalog
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeDirectory, catalog ComponentCatalog) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		catalog:   catalog,
		logger:    zap.L().Named("payroll.service"),
	}
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, employees EmployeeDirectory, catalog ComponentCatalog, outbox kafka.OutboxRepository) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		catalog:   catalog,
		outbox:    outbox,
		logger:    zap.L().Named("payroll.service"),
	}
}

func (s *service) CreateRun(ctx context.Context, actorID string, req CreateRunRequest) (*PayrollRunResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidActorID
	}

	awal, err := time.Parse(dateLayout, req.PeriodeAwal)
	if err != nil {
		return nil, apperror.InvalidField("periodeAwal")
	}
	akhir, err := time.Parse(dateLayout, req.PeriodeAkhir)
	if err != nil {
		return nil, apperror.InvalidField("periodeAkhir")
	}
	if akhir.Before(awal) {
		return nil, payrollerrors.ErrInvalidPeriod
	}
	if len(req.Lines) == 0 {
		return nil, payrollerrors.ErrEmptyRun
	}

	snapshots, err := s.buildSnapshots(ctx, req)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	run := BuildRun(awal, akhir, snapshots, catalog, actor)
	run.Catatan = req.Catatan

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateRun(ctx, &run); err != nil {
		s.logger.Error("gagal menyimpan payroll run", zap.Error(err))
		return nil, err
	}

	if err := s.publishLifecycle(ctx, tx, &run, "payroll_run_created", "", run.Status, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payroll run dibuat",
		zap.String("run_id", run.ID.String()),
		zap.Int("lines", len(run.Lines)),
		zap.Int64("total_gross", run.TotalGross()),
		zap.String("actor_id", actorID),
	)

	return mapRunToResponse(&run, true), nil
}

func (s *service) buildSnapshots(ctx context.Context, req CreateRunRequest) ([]EmployeeSnapshot, error) {
	seen := make(map[string]bool, len(req.Lines))
	snapshots := make([]EmployeeSnapshot, 0, len(req.Lines))

	for _, lineReq := range req.Lines {
		if seen[lineReq.EmployeeID] {
			return nil, payrollerrors.ErrDuplicateLineEmployee.WithDetails(
				map[string]string{"employeeId": lineReq.EmployeeID})
		}
		seen[lineReq.EmployeeID] = true

		emp, err := s.employees.FindByID(ctx, lineReq.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, payrollerrors.ErrLineEmployeeNotFound.WithDetails(
					map[string]string{"employeeId": lineReq.EmployeeID})
			}
			return nil, err
		}
		if !emp.Aktif {
			return nil, payrollerrors.ErrLineEmployeeInactive.WithDetails(
				map[string]string{"employeeId": lineReq.EmployeeID})
		}

		snapshot := EmployeeSnapshot{
			EmployeeID:    emp.ID,
			EmployeeName:  emp.Nama,
			DailyWage:     emp.KontrakUpahHarian,
			Workdays:      lineReq.Workdays,
			OvertimeHours: lineReq.OvertimeHours,
			OvertimeRate:  lineReq.OvertimeRate,
			Kasbon:        lineReq.Kasbon,
			TaxRate:       req.TaxRate,
		}
		if lineReq.DailyWage != nil {
			snapshot.DailyWage = *lineReq.DailyWage
		}
		if lineReq.TaxRate != nil {
			snapshot.TaxRate = *lineReq.TaxRate
		}
		if len(lineReq.FlatOverrides) > 0 {
			snapshot.FlatOverrides = make(map[uuid.UUID]int64, len(lineReq.FlatOverrides))
			for key, nominal := range lineReq.FlatOverrides {
				componentID, err := uuid.Parse(key)
				if err != nil {
					return nil, apperror.InvalidField("flatOverrides")
				}
				snapshot.FlatOverrides[componentID] = nominal
			}
		}
		if len(lineReq.ComponentIDs) > 0 {
			snapshot.SelectedComponents = make(map[uuid.UUID]bool, len(lineReq.ComponentIDs))
			for _, raw := range lineReq.ComponentIDs {
				componentID, err := uuid.Parse(raw)
				if err != nil {
					return nil, apperror.InvalidField("componentIds")
				}
				snapshot.SelectedComponents[componentID] = true
			}
		}
		for _, custom := range lineReq.CustomComponents {
			snapshot.CustomComponents = append(snapshot.CustomComponents, CustomComponent{
				Nama:    custom.Nama,
				Kind:    paycomponent.Kind(custom.Kind),
				Taxable: custom.Taxable,
				Amount:  custom.Amount,
			})
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*PayrollRunResponse, error) {
	run, err := s.findRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapRunToResponse(run, true), nil
}

func (s *service) List(ctx context.Context, status string) ([]PayrollRunSummaryResponse, error) {
	filter := ListFilter{}
	if status != "" {
		filter.Status = workflow.Status(status)
	}

	runs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]PayrollRunSummaryResponse, 0, len(runs))
	for i := range runs {
		run := &runs[i]
		out = append(out, PayrollRunSummaryResponse{
			ID:           run.ID.String(),
			PeriodeAwal:  run.PeriodeAwal.Format(dateLayout),
			PeriodeAkhir: run.PeriodeAkhir.Format(dateLayout),
			Status:       string(run.Status),
			LineCount:    len(run.Lines),
			TotalGross:   run.TotalGross(),
			TotalNet:     run.TotalNet(),
		})
	}
	return out, nil
}

func (s *service) Breakdown(ctx context.Context, id string) ([]BreakdownRowResponse, error) {
	run, err := s.findRun(ctx, id)
	if err != nil {
		return nil, err
	}

	rows := make([]BreakdownRowResponse, 0, len(run.Lines)*4)
	for i := range run.Lines {
		line := &run.Lines[i]
		for j := range line.Components {
			comp := &line.Components[j]
			rows = append(rows, BreakdownRowResponse{
				RunID:         run.ID.String(),
				PeriodeAwal:   run.PeriodeAwal.Format(dateLayout),
				PeriodeAkhir:  run.PeriodeAkhir.Format(dateLayout),
				EmployeeID:    line.EmployeeID.String(),
				EmployeeName:  line.EmployeeName,
				ComponentNama: comp.Nama,
				Kind:          string(comp.Kind),
				Taxable:       comp.Taxable,
				Amount:        comp.Amount,
				LineGross:     line.Gross,
				LineNet:       line.Net,
			})
		}
	}
	return rows, nil
}

func (s *service) Transition(ctx context.Context, id, actorID, target string) (*PayrollRunResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidActorID
	}

	run, err := s.findRun(ctx, id)
	if err != nil {
		return nil, err
	}

	targetStatus := workflow.Status(target)
	if err := workflow.PayrollRuns.Step(run.Status, targetStatus); err != nil {
		var invalid *workflow.InvalidTransitionError
		if errors.As(err, &invalid) {
			return nil, payrollerrors.InvalidTransition(invalid)
		}
		return nil, err
	}

	fields := map[string]any{}
	now := time.Now().UTC()
	switch targetStatus {
	case workflow.StatusApproved:
		fields["approved_by"] = actor
	case workflow.StatusPaid:
		fields["paid_at"] = now
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).UpdateStatus(ctx, run.ID, run.Status, targetStatus, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Transisi lain menang duluan; pengecekan tabel harus diulang dari
		// status terbaru.
		return nil, payrollerrors.ErrStatusConflict
	}

	if err := s.publishLifecycle(ctx, tx, run, "payroll_status_changed", run.Status, targetStatus, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payroll run bertransisi",
		zap.String("run_id", run.ID.String()),
		zap.String("from", string(run.Status)),
		zap.String("to", string(targetStatus)),
		zap.String("actor_id", actorID),
	)

	run.Status = targetStatus
	if targetStatus == workflow.StatusApproved {
		run.ApprovedBy = &actor
	}
	if targetStatus == workflow.StatusPaid {
		run.PaidAt = &now
	}
	return mapRunToResponse(run, false), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	run, err := s.findRun(ctx, id)
	if err != nil {
		return err
	}

	rows, err := s.repo.DeleteDraft(ctx, run.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return payrollerrors.ErrRunNotDraft
	}

	s.logger.Info("payroll run dihapus", zap.String("run_id", id))
	return nil
}

func (s *service) findRun(ctx context.Context, id string) (*PayrollRun, error) {
	runID, err := uuid.Parse(id)
	if err != nil {
		return nil, payrollerrors.ErrInvalidRunID
	}

	run, err := s.repo.FindByID(ctx, runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrRunNotFound
		}
		return nil, err
	}
	return run, nil
}

func (s *service) publishLifecycle(ctx context.Context, tx *sql.Tx, run *PayrollRun, eventType string, from, to workflow.Status, actor uuid.UUID) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollStatusChangedEvent{
		EventType:    eventType,
		PayrollRunID: run.ID.String(),
		FromStatus:   string(from),
		ToStatus:     string(to),
		ActorID:      actor.String(),
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     eventType,
		Topic:         events.PayrollLifecycleTopic,
		Payload:       payload,
	})
}

func mapRunToResponse(run *PayrollRun, withLines bool) *PayrollRunResponse {
	resp := &PayrollRunResponse{
		ID:           run.ID.String(),
		PeriodeAwal:  run.PeriodeAwal.Format(dateLayout),
		PeriodeAkhir: run.PeriodeAkhir.Format(dateLayout),
		Status:       string(run.Status),
		CreatedBy:    run.CreatedBy.String(),
		PaidAt:       run.PaidAt,
		Catatan:      run.Catatan,
		TotalGross:   run.TotalGross(),
		TotalNet:     run.TotalNet(),
		CreatedAt:    run.CreatedAt,
	}
	if run.ApprovedBy != nil {
		resp.ApprovedBy = run.ApprovedBy.String()
	}
	if !withLines {
		return resp
	}

	resp.Lines = make([]PayrollLineResponse, 0, len(run.Lines))
	for i := range run.Lines {
		resp.Lines = append(resp.Lines, mapLineToResponse(&run.Lines[i]))
	}
	return resp
}

func mapLineToResponse(line *PayrollLine) PayrollLineResponse {
	components := make([]LineComponentResponse, 0, len(line.Components))
	for _, c := range line.Components {
		components = append(components, LineComponentResponse{
			Nama:    c.Nama,
			Kind:    string(c.Kind),
			Taxable: c.Taxable,
			Amount:  c.Amount,
		})
	}
	return PayrollLineResponse{
		ID:             line.ID.String(),
		EmployeeID:     line.EmployeeID.String(),
		EmployeeName:   line.EmployeeName,
		DailyWage:      line.DailyWage,
		Workdays:       line.Workdays,
		OvertimeHours:  line.OvertimeHours,
		Kasbon:         line.Kasbon,
		TaxRate:        line.TaxRate,
		Gross:          line.Gross,
		TaxAmount:      line.TaxAmount,
		DeductionTotal: line.DeductionTotal,
		Net:            line.Net,
		NetAdjusted:    line.NetAdjusted,
		Components:     components,
	}
}
