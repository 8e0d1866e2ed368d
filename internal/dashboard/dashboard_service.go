package dashboard

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"coaltools/internal/workflow"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock

// ExpenseLedger adalah potongan repository kas yang dibutuhkan dashboard.
// Didefinisikan lokal supaya dashboard tidak bergantung ke package kas.
type ExpenseLedger interface {
	SumTotalByStatus(ctx context.Context, status workflow.Status) (int64, error)
}

type Service interface {
	Summary(ctx context.Context) (*SummaryResponse, error)
}

type service struct {
	repo     Repository
	kasKecil ExpenseLedger
	kasBesar ExpenseLedger
	cache    *Cache
	group    singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, kasKecil, kasBesar ExpenseLedger, cache *Cache) Service {
	return &service{
		repo:     repo,
		kasKecil: kasKecil,
		kasBesar: kasBesar,
		cache:    cache,
		logger:   zap.L().Named("dashboard.service"),
	}
}

// Summary mengembalikan ringkasan dari cache bila ada. Saat cache kosong,
// singleflight memastikan hanya satu goroutine yang membangun ulang ringkasan
// meskipun banyak request datang bersamaan.
func (s *service) Summary(ctx context.Context) (*SummaryResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, errCacheMiss) {
			s.logger.Warn("baca cache ringkasan gagal, lanjut ke database", zap.Error(err))
		}
	}

	result, err, _ := s.group.Do(summaryKey, func() (any, error) {
		return s.buildSummary(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*SummaryResponse), nil
}

func (s *service) buildSummary(ctx context.Context) (*SummaryResponse, error) {
	summary := &SummaryResponse{GeneratedAt: time.Now().UTC()}

	kasKecil, err := s.expenseSummary(ctx, s.kasKecil)
	if err != nil {
		return nil, err
	}
	summary.KasKecil = kasKecil

	kasBesar, err := s.expenseSummary(ctx, s.kasBesar)
	if err != nil {
		return nil, err
	}
	summary.KasBesar = kasBesar

	if summary.Payroll.DraftRuns, err = s.repo.CountRunsByStatus(ctx, workflow.StatusDraft); err != nil {
		return nil, err
	}
	if summary.Payroll.ApprovedRuns, err = s.repo.CountRunsByStatus(ctx, workflow.StatusApproved); err != nil {
		return nil, err
	}
	if summary.Payroll.PaidRuns, err = s.repo.CountRunsByStatus(ctx, workflow.StatusPaid); err != nil {
		return nil, err
	}
	if summary.Payroll.PaidNetTotal, err = s.repo.SumPaidNet(ctx); err != nil {
		return nil, err
	}

	count, nettoTon, value, err := s.repo.ProductionByStatus(ctx, workflow.StatusApproved)
	if err != nil {
		return nil, err
	}
	summary.Produksi = ProductionSummary{
		ApprovedReports:  count,
		ApprovedNettoTon: nettoTon,
		ApprovedValue:    value,
	}

	if summary.KaryawanAktif, err = s.repo.CountActiveEmployees(ctx); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.logger.Warn("simpan cache ringkasan gagal", zap.Error(err))
		}
	}
	return summary, nil
}

func (s *service) expenseSummary(ctx context.Context, ledger ExpenseLedger) (ExpenseSummary, error) {
	var out ExpenseSummary
	var err error
	if out.DraftTotal, err = ledger.SumTotalByStatus(ctx, workflow.StatusDraft); err != nil {
		return out, err
	}
	if out.SubmittedTotal, err = ledger.SumTotalByStatus(ctx, workflow.StatusSubmitted); err != nil {
		return out, err
	}
	if out.ApprovedTotal, err = ledger.SumTotalByStatus(ctx, workflow.StatusApproved); err != nil {
		return out, err
	}
	return out, nil
}
