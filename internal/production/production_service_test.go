package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coaltools/internal/buyer"
	"coaltools/internal/production"
	productionerrors "coaltools/internal/production/errors"
	"coaltools/internal/workflow"
)

type fakeProductionRepository struct {
	createFn       func(ctx context.Context, report *production.ProductionReport) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error)
	findAllFn      func(ctx context.Context, filter production.ListFilter) ([]production.ProductionReport, error)
	updateFn       func(ctx context.Context, report *production.ProductionReport) error
	updateStatusFn func(ctx context.Context, id uuid.UUID, from, to workflow.Status) (int64, error)
	deleteDraftFn  func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (f *fakeProductionRepository) Create(ctx context.Context, report *production.ProductionReport) error {
	if f.createFn != nil {
		return f.createFn(ctx, report)
	}
	return nil
}

func (f *fakeProductionRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeProductionRepository) FindAll(ctx context.Context, filter production.ListFilter) ([]production.ProductionReport, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeProductionRepository) Update(ctx context.Context, report *production.ProductionReport) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, report)
	}
	return nil
}

func (f *fakeProductionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status) (int64, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, from, to)
	}
	return 1, nil
}

func (f *fakeProductionRepository) DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.deleteDraftFn != nil {
		return f.deleteDraftFn(ctx, id)
	}
	return 1, nil
}

type fakeBuyerDirectory struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*buyer.Buyer, error)
}

func (f *fakeBuyerDirectory) FindByID(ctx context.Context, id uuid.UUID) (*buyer.Buyer, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &buyer.Buyer{ID: id, Nama: "PT Energi", HargaPerTonDefault: 800_000, Aktif: true}, nil
}

func TestProductionService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	buyerID := uuid.New().String()

	repo := &fakeProductionRepository{}
	svc := production.NewService(repo, &fakeBuyerDirectory{})

	repo.createFn = func(ctx context.Context, report *production.ProductionReport) error {
		report.ID = uuid.New()
		assert.Equal(t, workflow.StatusDraft, report.Status)
		// netto 32.450 - 12.450 = 20 ton x 800.000
		assert.True(t, report.NettoTon.Equal(decimal.NewFromFloat(20)))
		assert.Equal(t, int64(16_000_000), report.Total)
		return nil
	}

	resp, err := svc.Create(ctx, actorID, production.CreateReportRequest{
		Tanggal:  "2026-07-14",
		BuyerID:  buyerID,
		GrossTon: decimal.NewFromFloat(32.450),
		TareTon:  decimal.NewFromFloat(12.450),
	})

	require.NoError(t, err)
	assert.Equal(t, string(workflow.StatusDraft), resp.Status)
	assert.Equal(t, int64(800_000), resp.HargaPerTon)
	assert.Equal(t, "PT Energi", resp.BuyerNama)
}

func TestProductionService_Create_TareExceedsGross(t *testing.T) {
	ctx := context.Background()

	svc := production.NewService(&fakeProductionRepository{}, &fakeBuyerDirectory{})

	_, err := svc.Create(ctx, uuid.New().String(), production.CreateReportRequest{
		Tanggal:  "2026-07-14",
		BuyerID:  uuid.New().String(),
		GrossTon: decimal.NewFromFloat(10),
		TareTon:  decimal.NewFromFloat(12),
	})

	assert.ErrorIs(t, err, productionerrors.ErrTareExceedsGross)
}

func TestProductionService_Create_PriceOverride(t *testing.T) {
	ctx := context.Background()
	override := int64(750_000)

	repo := &fakeProductionRepository{
		createFn: func(ctx context.Context, report *production.ProductionReport) error {
			report.ID = uuid.New()
			assert.Equal(t, int64(750_000), report.HargaPerTon)
			return nil
		},
	}
	svc := production.NewService(repo, &fakeBuyerDirectory{})

	resp, err := svc.Create(ctx, uuid.New().String(), production.CreateReportRequest{
		Tanggal:     "2026-07-14",
		BuyerID:     uuid.New().String(),
		GrossTon:    decimal.NewFromFloat(15),
		TareTon:     decimal.NewFromFloat(5),
		HargaPerTon: &override,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7_500_000), resp.Total)
}

func TestProductionService_Transition(t *testing.T) {
	ctx := context.Background()
	reportID := uuid.New()

	t.Run("draft to submitted", func(t *testing.T) {
		repo := &fakeProductionRepository{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error) {
				return &production.ProductionReport{ID: id, Status: workflow.StatusDraft}, nil
			},
		}
		svc := production.NewService(repo, &fakeBuyerDirectory{})

		resp, err := svc.Transition(ctx, reportID.String(), "SUBMITTED")

		require.NoError(t, err)
		assert.Equal(t, string(workflow.StatusSubmitted), resp.Status)
	})

	t.Run("draft straight to approved rejected", func(t *testing.T) {
		repo := &fakeProductionRepository{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error) {
				return &production.ProductionReport{ID: id, Status: workflow.StatusDraft}, nil
			},
		}
		svc := production.NewService(repo, &fakeBuyerDirectory{})

		_, err := svc.Transition(ctx, reportID.String(), "APPROVED")

		var invalid *workflow.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, workflow.StatusDraft, invalid.From)
		assert.Equal(t, workflow.StatusApproved, invalid.To)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		repo := &fakeProductionRepository{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error) {
				return &production.ProductionReport{ID: id, Status: workflow.StatusRejected}, nil
			},
		}
		svc := production.NewService(repo, &fakeBuyerDirectory{})

		_, err := svc.Transition(ctx, reportID.String(), "DRAFT")

		var invalid *workflow.InvalidTransitionError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("concurrent transition detected", func(t *testing.T) {
		repo := &fakeProductionRepository{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error) {
				return &production.ProductionReport{ID: id, Status: workflow.StatusDraft}, nil
			},
			updateStatusFn: func(ctx context.Context, id uuid.UUID, from, to workflow.Status) (int64, error) {
				return 0, nil
			},
		}
		svc := production.NewService(repo, &fakeBuyerDirectory{})

		_, err := svc.Transition(ctx, reportID.String(), "SUBMITTED")

		assert.ErrorIs(t, err, productionerrors.ErrStatusConflict)
	})
}

func TestProductionService_Update_OnlyDraft(t *testing.T) {
	ctx := context.Background()
	reportID := uuid.New()

	repo := &fakeProductionRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error) {
			return &production.ProductionReport{ID: id, Status: workflow.StatusApproved}, nil
		},
	}
	svc := production.NewService(repo, &fakeBuyerDirectory{})

	newGross := decimal.NewFromFloat(40)
	_, err := svc.Update(ctx, reportID.String(), production.UpdateReportRequest{GrossTon: &newGross})

	assert.ErrorIs(t, err, productionerrors.ErrReportNotDraft)
}

func TestProductionService_Update_RecomputesNetto(t *testing.T) {
	ctx := context.Background()
	reportID := uuid.New()

	repo := &fakeProductionRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*production.ProductionReport, error) {
			return &production.ProductionReport{
				ID:          id,
				Status:      workflow.StatusDraft,
				Tanggal:     time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
				GrossTon:    decimal.NewFromFloat(30),
				TareTon:     decimal.NewFromFloat(10),
				NettoTon:    decimal.NewFromFloat(20),
				HargaPerTon: 800_000,
				Total:       16_000_000,
			}, nil
		},
	}
	svc := production.NewService(repo, &fakeBuyerDirectory{})

	newGross := decimal.NewFromFloat(35)
	resp, err := svc.Update(ctx, reportID.String(), production.UpdateReportRequest{GrossTon: &newGross})

	require.NoError(t, err)
	assert.True(t, resp.NettoTon.Equal(decimal.NewFromFloat(25)))
	assert.Equal(t, int64(20_000_000), resp.Total)
}
