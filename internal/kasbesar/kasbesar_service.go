package kasbesar

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	kasbesarerrors "coaltools/internal/kasbesar/errors"
	"coaltools/internal/shared/apperror"
	"coaltools/internal/workflow"
)

const dateLayout = "2006-01-02"

var namaHari = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

//go:generate mockgen -source=kasbesar_service.go -destination=mock/kasbesar_service_mock.go -package=mock

type Service interface {
	Create(ctx context.Context, actorID string, req CreateTransactionRequest) (*TransactionResponse, error)
	GetByID(ctx context.Context, id string) (*TransactionResponse, error)
	List(ctx context.Context, status, bulan, jenis string) ([]TransactionResponse, error)
	Update(ctx context.Context, id string, req UpdateTransactionRequest) (*TransactionResponse, error)
	Transition(ctx context.Context, id, target, catatan string) (*TransactionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("kasbesar.service"),
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateTransactionRequest) (*TransactionResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, apperror.InvalidField("actor id")
	}
	tanggal, err := time.Parse(dateLayout, req.Tanggal)
	if err != nil {
		return nil, apperror.InvalidField("tanggal")
	}

	total := computeTotal(req.Banyak, req.HargaSatuan)
	if req.Total != nil && *req.Total != total {
		return nil, kasbesarerrors.ErrTotalMismatch
	}

	trx := &Transaction{
		Hari:          namaHari[tanggal.Weekday()],
		Tanggal:       tanggal,
		Bulan:         tanggal.Format("2006-01"),
		TipeAktivitas: req.TipeAktivitas,
		Barang:        req.Barang,
		Banyak:        req.Banyak,
		Satuan:        req.Satuan,
		HargaSatuan:   req.HargaSatuan,
		Total:         total,
		VendorNama:    req.VendorNama,
		VendorTelp:    req.VendorTelp,
		VendorEmail:   req.VendorEmail,
		Jenis:         req.Jenis,
		SubJenis:      req.SubJenis,
		BuktiURL:      req.BuktiURL,
		KontrakURL:    req.KontrakURL,
		Status:        workflow.StatusDraft,
		CreatedBy:     actor,
	}

	if err := s.repo.Create(ctx, trx); err != nil {
		s.logger.Error("gagal menyimpan kas besar", zap.Error(err))
		return nil, err
	}

	s.logger.Info("kas besar dibuat",
		zap.String("transaction_id", trx.ID.String()),
		zap.String("barang", trx.Barang),
		zap.String("vendor", trx.VendorNama),
		zap.Int64("total", trx.Total),
	)
	return mapToResponse(trx), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*TransactionResponse, error) {
	trx, err := s.findTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(trx), nil
}

func (s *service) List(ctx context.Context, status, bulan, jenis string) ([]TransactionResponse, error) {
	filter := ListFilter{Bulan: bulan, Jenis: jenis}
	if status != "" {
		filter.Status = workflow.Status(status)
	}

	trxs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]TransactionResponse, 0, len(trxs))
	for i := range trxs {
		out = append(out, *mapToResponse(&trxs[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTransactionRequest) (*TransactionResponse, error) {
	trx, err := s.findTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if trx.Status != workflow.StatusDraft {
		return nil, kasbesarerrors.ErrTransactionNotDraft
	}

	if req.Tanggal != nil {
		tanggal, err := time.Parse(dateLayout, *req.Tanggal)
		if err != nil {
			return nil, apperror.InvalidField("tanggal")
		}
		trx.Tanggal = tanggal
		trx.Hari = namaHari[tanggal.Weekday()]
		trx.Bulan = tanggal.Format("2006-01")
	}
	if req.TipeAktivitas != nil {
		trx.TipeAktivitas = *req.TipeAktivitas
	}
	if req.Barang != nil {
		trx.Barang = *req.Barang
	}
	if req.Banyak != nil {
		trx.Banyak = *req.Banyak
	}
	if req.Satuan != nil {
		trx.Satuan = *req.Satuan
	}
	if req.HargaSatuan != nil {
		trx.HargaSatuan = *req.HargaSatuan
	}
	if req.VendorNama != nil {
		trx.VendorNama = *req.VendorNama
	}
	if req.VendorTelp != nil {
		trx.VendorTelp = *req.VendorTelp
	}
	if req.VendorEmail != nil {
		trx.VendorEmail = *req.VendorEmail
	}
	if req.Jenis != nil {
		trx.Jenis = *req.Jenis
	}
	if req.SubJenis != nil {
		trx.SubJenis = *req.SubJenis
	}
	if req.BuktiURL != nil {
		trx.BuktiURL = *req.BuktiURL
	}
	if req.KontrakURL != nil {
		trx.KontrakURL = *req.KontrakURL
	}
	trx.Total = computeTotal(trx.Banyak, trx.HargaSatuan)

	if err := s.repo.Update(ctx, trx); err != nil {
		s.logger.Error("gagal memperbarui kas besar",
			zap.String("transaction_id", id), zap.Error(err))
		return nil, err
	}
	return mapToResponse(trx), nil
}

func (s *service) Transition(ctx context.Context, id, target, catatan string) (*TransactionResponse, error) {
	trx, err := s.findTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	targetStatus := workflow.Status(target)
	if err := workflow.Expenses.Step(trx.Status, targetStatus); err != nil {
		var invalid *workflow.InvalidTransitionError
		if errors.As(err, &invalid) {
			return nil, kasbesarerrors.InvalidTransition(invalid)
		}
		return nil, err
	}

	rows, err := s.repo.UpdateStatus(ctx, trx.ID, trx.Status, targetStatus, catatan)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, kasbesarerrors.ErrStatusConflict
	}

	s.logger.Info("kas besar bertransisi",
		zap.String("transaction_id", id),
		zap.String("from", string(trx.Status)),
		zap.String("to", string(targetStatus)),
	)

	trx.Status = targetStatus
	if catatan != "" {
		trx.CatatanPersetujuan = catatan
	}
	return mapToResponse(trx), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	trx, err := s.findTransaction(ctx, id)
	if err != nil {
		return err
	}

	if trx.Status == workflow.StatusDraft {
		rows, err := s.repo.DeleteDraft(ctx, trx.ID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return kasbesarerrors.ErrStatusConflict
		}
	} else if err := s.repo.SoftDelete(ctx, trx.ID); err != nil {
		return err
	}

	s.logger.Info("kas besar dihapus",
		zap.String("transaction_id", id),
		zap.String("status", string(trx.Status)),
	)
	return nil
}

func (s *service) findTransaction(ctx context.Context, id string) (*Transaction, error) {
	trxID, err := uuid.Parse(id)
	if err != nil {
		return nil, kasbesarerrors.ErrInvalidTransactionID
	}

	trx, err := s.repo.FindByID(ctx, trxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kasbesarerrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return trx, nil
}

func computeTotal(banyak decimal.Decimal, hargaSatuan int64) int64 {
	return banyak.Mul(decimal.NewFromInt(hargaSatuan)).Round(0).IntPart()
}

func mapToResponse(trx *Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                 trx.ID.String(),
		Hari:               trx.Hari,
		Tanggal:            trx.Tanggal.Format(dateLayout),
		Bulan:              trx.Bulan,
		TipeAktivitas:      trx.TipeAktivitas,
		Barang:             trx.Barang,
		Banyak:             trx.Banyak,
		Satuan:             trx.Satuan,
		HargaSatuan:        trx.HargaSatuan,
		Total:              trx.Total,
		VendorNama:         trx.VendorNama,
		VendorTelp:         trx.VendorTelp,
		VendorEmail:        trx.VendorEmail,
		Jenis:              trx.Jenis,
		SubJenis:           trx.SubJenis,
		BuktiURL:           trx.BuktiURL,
		KontrakURL:         trx.KontrakURL,
		Status:             string(trx.Status),
		CatatanPersetujuan: trx.CatatanPersetujuan,
		CreatedAt:          trx.CreatedAt,
	}
}
