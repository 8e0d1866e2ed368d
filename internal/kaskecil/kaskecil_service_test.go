package kaskecil_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coaltools/internal/kaskecil"
	kaskecilerrors "coaltools/internal/kaskecil/errors"
	"coaltools/internal/workflow"
)

type fakeKasKecilRepository struct {
	createFn       func(ctx context.Context, trx *kaskecil.Transaction) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*kaskecil.Transaction, error)
	findAllFn      func(ctx context.Context, filter kaskecil.ListFilter) ([]kaskecil.Transaction, error)
	updateFn       func(ctx context.Context, trx *kaskecil.Transaction) error
	updateStatusFn func(ctx context.Context, id uuid.UUID, from, to workflow.Status, catatan string) (int64, error)
	deleteDraftFn  func(ctx context.Context, id uuid.UUID) (int64, error)
	softDeleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeKasKecilRepository) Create(ctx context.Context, trx *kaskecil.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, trx)
	}
	return nil
}

func (f *fakeKasKecilRepository) FindByID(ctx context.Context, id uuid.UUID) (*kaskecil.Transaction, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeKasKecilRepository) FindAll(ctx context.Context, filter kaskecil.ListFilter) ([]kaskecil.Transaction, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeKasKecilRepository) Update(ctx context.Context, trx *kaskecil.Transaction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, trx)
	}
	return nil
}

func (f *fakeKasKecilRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status, catatan string) (int64, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, from, to, catatan)
	}
	return 1, nil
}

func (f *fakeKasKecilRepository) DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.deleteDraftFn != nil {
		return f.deleteDraftFn(ctx, id)
	}
	return 1, nil
}

func (f *fakeKasKecilRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeKasKecilRepository) SumTotalByStatus(ctx context.Context, status workflow.Status) (int64, error) {
	return 0, nil
}

func TestKasKecilService_Create_DerivesFields(t *testing.T) {
	ctx := context.Background()

	repo := &fakeKasKecilRepository{
		createFn: func(ctx context.Context, trx *kaskecil.Transaction) error {
			trx.ID = uuid.New()
			// 14 Juli 2026 jatuh di hari Selasa
			assert.Equal(t, "Selasa", trx.Hari)
			assert.Equal(t, "2026-07", trx.Bulan)
			assert.Equal(t, int64(1_500_000), trx.Total)
			return nil
		},
	}
	svc := kaskecil.NewService(repo)

	resp, err := svc.Create(ctx, uuid.New().String(), kaskecil.CreateTransactionRequest{
		Tanggal:     "2026-07-14",
		Barang:      "Solar Industri",
		Banyak:      decimal.NewFromInt(100),
		Satuan:      "liter",
		HargaSatuan: 15_000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000), resp.Total)
	assert.Equal(t, string(workflow.StatusDraft), resp.Status)
}

func TestKasKecilService_Create_TotalMismatch(t *testing.T) {
	ctx := context.Background()
	svc := kaskecil.NewService(&fakeKasKecilRepository{})

	wrongTotal := int64(1_000_000)
	_, err := svc.Create(ctx, uuid.New().String(), kaskecil.CreateTransactionRequest{
		Tanggal:     "2026-07-14",
		Barang:      "Solar Industri",
		Banyak:      decimal.NewFromInt(100),
		HargaSatuan: 15_000,
		Total:       &wrongTotal,
	})

	assert.ErrorIs(t, err, kaskecilerrors.ErrTotalMismatch)
}

func TestKasKecilService_Update_OnlyDraft(t *testing.T) {
	ctx := context.Background()
	trxID := uuid.New()

	repo := &fakeKasKecilRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*kaskecil.Transaction, error) {
			return &kaskecil.Transaction{ID: id, Status: workflow.StatusSubmitted}, nil
		},
	}
	svc := kaskecil.NewService(repo)

	barang := "Oli Mesin"
	_, err := svc.Update(ctx, trxID.String(), kaskecil.UpdateTransactionRequest{Barang: &barang})

	assert.ErrorIs(t, err, kaskecilerrors.ErrTransactionNotDraft)
}

func TestKasKecilService_Transition_SubmittedBackToDraft(t *testing.T) {
	ctx := context.Background()
	trxID := uuid.New()

	repo := &fakeKasKecilRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*kaskecil.Transaction, error) {
			return &kaskecil.Transaction{ID: id, Status: workflow.StatusSubmitted}, nil
		},
	}
	svc := kaskecil.NewService(repo)

	resp, err := svc.Transition(ctx, trxID.String(), "DRAFT", "")

	require.NoError(t, err)
	assert.Equal(t, string(workflow.StatusDraft), resp.Status)
}

func TestKasKecilService_Transition_CarriesCatatan(t *testing.T) {
	ctx := context.Background()
	trxID := uuid.New()

	var gotCatatan string
	repo := &fakeKasKecilRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*kaskecil.Transaction, error) {
			return &kaskecil.Transaction{ID: id, Status: workflow.StatusReviewed}, nil
		},
		updateStatusFn: func(ctx context.Context, id uuid.UUID, from, to workflow.Status, catatan string) (int64, error) {
			gotCatatan = catatan
			return 1, nil
		},
	}
	svc := kaskecil.NewService(repo)

	resp, err := svc.Transition(ctx, trxID.String(), "APPROVED", "Nota lengkap, disetujui")

	require.NoError(t, err)
	assert.Equal(t, "Nota lengkap, disetujui", gotCatatan)
	assert.Equal(t, "Nota lengkap, disetujui", resp.CatatanPersetujuan)
}

func TestKasKecilService_Delete_DraftIsPermanent(t *testing.T) {
	ctx := context.Background()
	trxID := uuid.New()

	var hardDeleted, softDeleted bool
	repo := &fakeKasKecilRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*kaskecil.Transaction, error) {
			return &kaskecil.Transaction{ID: id, Status: workflow.StatusDraft}, nil
		},
		deleteDraftFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			hardDeleted = true
			return 1, nil
		},
		softDeleteFn: func(ctx context.Context, id uuid.UUID) error {
			softDeleted = true
			return nil
		},
	}
	svc := kaskecil.NewService(repo)

	require.NoError(t, svc.Delete(ctx, trxID.String()))
	assert.True(t, hardDeleted)
	assert.False(t, softDeleted)
}

func TestKasKecilService_Delete_ApprovedIsSoft(t *testing.T) {
	ctx := context.Background()
	trxID := uuid.New()

	var softDeleted bool
	repo := &fakeKasKecilRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*kaskecil.Transaction, error) {
			return &kaskecil.Transaction{ID: id, Status: workflow.StatusApproved}, nil
		},
		deleteDraftFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			t.Fatal("transaksi APPROVED tidak boleh dihapus permanen")
			return 0, nil
		},
		softDeleteFn: func(ctx context.Context, id uuid.UUID) error {
			softDeleted = true
			return nil
		},
	}
	svc := kaskecil.NewService(repo)

	require.NoError(t, svc.Delete(ctx, trxID.String()))
	assert.True(t, softDeleted)
}
