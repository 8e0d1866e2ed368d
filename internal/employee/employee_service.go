package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "coaltools/internal/employee/errors"
	"coaltools/internal/events"
	"coaltools/internal/messaging/kafka"
	"coaltools/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("employee.service")}
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox, logger: zap.L().Named("employee.service")}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	emp, err := entityFromCreateRequest(req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			EmployeeID: emp.ID.String(),
			Site:       emp.Site,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return EmployeeResponse{}, err
		}

		err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "employee",
			AggregateID:   emp.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
		})
		if err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("site", emp.Site),
		zap.String("actor_id", actorID),
	)

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	tanggalLahir, err := parseOptionalDate(req.TanggalLahir)
	if err != nil {
		return EmployeeResponse{}, err
	}
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	emp.Nama = req.Nama
	emp.NIK = req.NIK
	emp.Jabatan = req.Jabatan
	emp.Site = req.Site
	emp.TempatLahir = req.TempatLahir
	emp.TanggalLahir = tanggalLahir
	emp.Alamat = req.Alamat
	emp.KontrakUpahHarian = req.KontrakUpahHarian
	emp.DefaultUangMakan = req.DefaultUangMakan
	emp.DefaultUangBbm = req.DefaultUangBbm
	emp.BankName = req.BankName
	emp.BankAccount = req.BankAccount
	emp.NPWP = req.NPWP
	emp.StartDate = startDate
	if req.Aktif != nil {
		emp.Aktif = *req.Aktif
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	emp, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.Aktif {
		return employeeerrors.ErrEmployeeInactive
	}

	return mapRepositoryError(s.repo.Deactivate(ctx, id))
}

func entityFromCreateRequest(req CreateEmployeeRequest) (*Employee, error) {
	tanggalLahir, err := parseOptionalDate(req.TanggalLahir)
	if err != nil {
		return nil, err
	}
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	return &Employee{
		ID:                uuid.New(),
		Nama:              req.Nama,
		NIK:               req.NIK,
		Jabatan:           req.Jabatan,
		Site:              req.Site,
		TempatLahir:       req.TempatLahir,
		TanggalLahir:      tanggalLahir,
		Alamat:            req.Alamat,
		KontrakUpahHarian: req.KontrakUpahHarian,
		DefaultUangMakan:  req.DefaultUangMakan,
		DefaultUangBbm:    req.DefaultUangBbm,
		BankName:          req.BankName,
		BankAccount:       req.BankAccount,
		NPWP:              req.NPWP,
		StartDate:         startDate,
		Aktif:             true,
	}, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                emp.ID.String(),
		Nama:              emp.Nama,
		NIK:               emp.NIK,
		Jabatan:           emp.Jabatan,
		Site:              emp.Site,
		TempatLahir:       emp.TempatLahir,
		Alamat:            emp.Alamat,
		KontrakUpahHarian: emp.KontrakUpahHarian,
		DefaultUangMakan:  emp.DefaultUangMakan,
		DefaultUangBbm:    emp.DefaultUangBbm,
		BankName:          emp.BankName,
		BankAccount:       emp.BankAccount,
		NPWP:              emp.NPWP,
		Aktif:             emp.Aktif,
	}

	if emp.TanggalLahir != nil {
		resp.TanggalLahir = emp.TanggalLahir.Format("2006-01-02")
	}
	if emp.StartDate != nil {
		resp.StartDate = emp.StartDate.Format("2006-01-02")
	}

	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, emp := range employees {
		resp[i] = mapToResponse(emp)
	}
	return resp
}
