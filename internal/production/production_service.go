package production

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coaltools/internal/buyer"
	productionerrors "coaltools/internal/production/errors"
	"coaltools/internal/shared/apperror"
	"coaltools/internal/workflow"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=production_service.go -destination=mock/production_service_mock.go -package=mock

// BuyerDirectory memasok data buyer untuk harga default laporan.
// buyer.Repository memenuhinya.
type BuyerDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*buyer.Buyer, error)
}

type Service interface {
	Create(ctx context.Context, actorID string, req CreateReportRequest) (*ProductionReportResponse, error)
	GetByID(ctx context.Context, id string) (*ProductionReportResponse, error)
	List(ctx context.Context, status, buyerID string) ([]ProductionReportResponse, error)
	Update(ctx context.Context, id string, req UpdateReportRequest) (*ProductionReportResponse, error)
	Transition(ctx context.Context, id, target string) (*ProductionReportResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	buyers BuyerDirectory
	logger *zap.Logger
}

func NewService(repo Repository, buyers BuyerDirectory) Service {
	return &service{
		repo:   repo,
		buyers: buyers,
		logger: zap.L().Named("production.service"),
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateReportRequest) (*ProductionReportResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, apperror.InvalidField("actor id")
	}
	tanggal, err := time.Parse(dateLayout, req.Tanggal)
	if err != nil {
		return nil, apperror.InvalidField("tanggal")
	}
	buyerID, err := uuid.Parse(req.BuyerID)
	if err != nil {
		return nil, apperror.InvalidField("buyerId")
	}

	b, err := s.buyers.FindByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productionerrors.ErrReportBuyerNotFound
		}
		return nil, err
	}

	netto, err := computeNetto(req.GrossTon, req.TareTon)
	if err != nil {
		return nil, err
	}

	hargaPerTon := b.HargaPerTonDefault
	if req.HargaPerTon != nil {
		hargaPerTon = *req.HargaPerTon
	}

	report := &ProductionReport{
		Tanggal:     tanggal,
		NopolTruk:   req.NopolTruk,
		Tujuan:      req.Tujuan,
		BuyerID:     buyerID,
		BuyerNama:   b.Nama,
		GrossTon:    req.GrossTon,
		TareTon:     req.TareTon,
		NettoTon:    netto,
		HargaPerTon: hargaPerTon,
		Total:       totalValue(netto, hargaPerTon),
		Status:      workflow.StatusDraft,
		Keterangan:  req.Keterangan,
		CreatedBy:   actor,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		s.logger.Error("gagal menyimpan laporan produksi", zap.Error(err))
		return nil, err
	}
	report.Buyer = b

	s.logger.Info("laporan produksi dibuat",
		zap.String("report_id", report.ID.String()),
		zap.String("buyer_id", buyerID.String()),
		zap.String("netto_ton", netto.String()),
	)
	return mapToResponse(report), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ProductionReportResponse, error) {
	report, err := s.findReport(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(report), nil
}

func (s *service) List(ctx context.Context, status, buyerID string) ([]ProductionReportResponse, error) {
	filter := ListFilter{}
	if status != "" {
		filter.Status = workflow.Status(status)
	}
	if buyerID != "" {
		parsed, err := uuid.Parse(buyerID)
		if err != nil {
			return nil, apperror.InvalidField("buyerId")
		}
		filter.BuyerID = &parsed
	}

	reports, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]ProductionReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, *mapToResponse(&reports[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateReportRequest) (*ProductionReportResponse, error) {
	report, err := s.findReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status != workflow.StatusDraft {
		return nil, productionerrors.ErrReportNotDraft
	}

	if req.Tanggal != nil {
		tanggal, err := time.Parse(dateLayout, *req.Tanggal)
		if err != nil {
			return nil, apperror.InvalidField("tanggal")
		}
		report.Tanggal = tanggal
	}
	if req.NopolTruk != nil {
		report.NopolTruk = *req.NopolTruk
	}
	if req.Tujuan != nil {
		report.Tujuan = *req.Tujuan
	}
	if req.GrossTon != nil {
		report.GrossTon = *req.GrossTon
	}
	if req.TareTon != nil {
		report.TareTon = *req.TareTon
	}
	if req.HargaPerTon != nil {
		report.HargaPerTon = *req.HargaPerTon
	}
	if req.Keterangan != nil {
		report.Keterangan = *req.Keterangan
	}

	netto, err := computeNetto(report.GrossTon, report.TareTon)
	if err != nil {
		return nil, err
	}
	report.NettoTon = netto
	report.Total = totalValue(netto, report.HargaPerTon)

	if err := s.repo.Update(ctx, report); err != nil {
		s.logger.Error("gagal memperbarui laporan produksi",
			zap.String("report_id", id), zap.Error(err))
		return nil, err
	}
	return mapToResponse(report), nil
}

func (s *service) Transition(ctx context.Context, id, target string) (*ProductionReportResponse, error) {
	report, err := s.findReport(ctx, id)
	if err != nil {
		return nil, err
	}

	targetStatus := workflow.Status(target)
	if err := workflow.Expenses.Step(report.Status, targetStatus); err != nil {
		var invalid *workflow.InvalidTransitionError
		if errors.As(err, &invalid) {
			return nil, productionerrors.InvalidTransition(invalid)
		}
		return nil, err
	}

	rows, err := s.repo.UpdateStatus(ctx, report.ID, report.Status, targetStatus)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, productionerrors.ErrStatusConflict
	}

	s.logger.Info("laporan produksi bertransisi",
		zap.String("report_id", id),
		zap.String("from", string(report.Status)),
		zap.String("to", string(targetStatus)),
	)

	report.Status = targetStatus
	return mapToResponse(report), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	report, err := s.findReport(ctx, id)
	if err != nil {
		return err
	}

	rows, err := s.repo.DeleteDraft(ctx, report.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return productionerrors.ErrReportNotDraft
	}

	s.logger.Info("laporan produksi dihapus", zap.String("report_id", id))
	return nil
}

func (s *service) findReport(ctx context.Context, id string) (*ProductionReport, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return nil, productionerrors.ErrInvalidReportID
	}

	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, productionerrors.ErrReportNotFound
		}
		return nil, err
	}
	return report, nil
}

// computeNetto menghitung netto = gross - tare dan menolak tare > gross.
func computeNetto(gross, tare decimal.Decimal) (decimal.Decimal, error) {
	if tare.GreaterThan(gross) {
		return decimal.Zero, productionerrors.ErrTareExceedsGross
	}
	return gross.Sub(tare), nil
}

func totalValue(netto decimal.Decimal, hargaPerTon int64) int64 {
	return netto.Mul(decimal.NewFromInt(hargaPerTon)).Round(0).IntPart()
}

func mapToResponse(report *ProductionReport) *ProductionReportResponse {
	resp := &ProductionReportResponse{
		ID:          report.ID.String(),
		Tanggal:     report.Tanggal.Format(dateLayout),
		NopolTruk:   report.NopolTruk,
		Tujuan:      report.Tujuan,
		BuyerID:     report.BuyerID.String(),
		BuyerNama:   report.BuyerNama,
		GrossTon:    report.GrossTon,
		TareTon:     report.TareTon,
		NettoTon:    report.NettoTon,
		HargaPerTon: report.HargaPerTon,
		Total:       report.Total,
		Status:      string(report.Status),
		Keterangan:  report.Keterangan,
		CreatedAt:   report.CreatedAt,
	}
	return resp
}
