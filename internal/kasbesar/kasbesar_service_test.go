package kasbesar_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coaltools/internal/kasbesar"
	kasbesarerrors "coaltools/internal/kasbesar/errors"
	"coaltools/internal/workflow"
)

type fakeKasBesarRepository struct {
	createFn       func(ctx context.Context, trx *kasbesar.Transaction) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*kasbesar.Transaction, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, from, to workflow.Status, catatan string) (int64, error)
	deleteDraftFn  func(ctx context.Context, id uuid.UUID) (int64, error)
	softDeleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeKasBesarRepository) Create(ctx context.Context, trx *kasbesar.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, trx)
	}
	return nil
}

func (f *fakeKasBesarRepository) FindByID(ctx context.Context, id uuid.UUID) (*kasbesar.Transaction, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeKasBesarRepository) FindAll(ctx context.Context, filter kasbesar.ListFilter) ([]kasbesar.Transaction, error) {
	return nil, nil
}

func (f *fakeKasBesarRepository) Update(ctx context.Context, trx *kasbesar.Transaction) error {
	return nil
}

func (f *fakeKasBesarRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to workflow.Status, catatan string) (int64, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, from, to, catatan)
	}
	return 1, nil
}

func (f *fakeKasBesarRepository) DeleteDraft(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.deleteDraftFn != nil {
		return f.deleteDraftFn(ctx, id)
	}
	return 1, nil
}

func (f *fakeKasBesarRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeKasBesarRepository) SumTotalByStatus(ctx context.Context, status workflow.Status) (int64, error) {
	return 0, nil
}

func TestKasBesarService_Create_CarriesVendor(t *testing.T) {
	ctx := context.Background()

	repo := &fakeKasBesarRepository{
		createFn: func(ctx context.Context, trx *kasbesar.Transaction) error {
			trx.ID = uuid.New()
			assert.Equal(t, "PT Alat Berat Nusantara", trx.VendorNama)
			assert.Equal(t, int64(450_000_000), trx.Total)
			return nil
		},
	}
	svc := kasbesar.NewService(repo)

	resp, err := svc.Create(ctx, uuid.New().String(), kasbesar.CreateTransactionRequest{
		Tanggal:     "2026-07-20",
		Barang:      "Excavator PC200",
		Banyak:      decimal.NewFromInt(1),
		Satuan:      "unit",
		HargaSatuan: 450_000_000,
		VendorNama:  "PT Alat Berat Nusantara",
		VendorEmail: "sales@alatberat.co.id",
	})

	require.NoError(t, err)
	assert.Equal(t, "PT Alat Berat Nusantara", resp.VendorNama)
	assert.Equal(t, string(workflow.StatusDraft), resp.Status)
}

func TestKasBesarService_Create_TotalMismatch(t *testing.T) {
	ctx := context.Background()
	svc := kasbesar.NewService(&fakeKasBesarRepository{})

	wrongTotal := int64(400_000_000)
	_, err := svc.Create(ctx, uuid.New().String(), kasbesar.CreateTransactionRequest{
		Tanggal:     "2026-07-20",
		Barang:      "Excavator PC200",
		Banyak:      decimal.NewFromInt(1),
		HargaSatuan: 450_000_000,
		Total:       &wrongTotal,
	})

	assert.ErrorIs(t, err, kasbesarerrors.ErrTotalMismatch)
}

func TestKasBesarService_Delete_ApprovedIsSoft(t *testing.T) {
	ctx := context.Background()
	trxID := uuid.New()

	var softDeleted bool
	repo := &fakeKasBesarRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*kasbesar.Transaction, error) {
			return &kasbesar.Transaction{ID: id, Status: workflow.StatusApproved}, nil
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
	svc := kasbesar.NewService(repo)

	require.NoError(t, svc.Delete(ctx, trxID.String()))
	assert.True(t, softDeleted)
}

func TestKasBesarService_Delete_DraftConflict(t *testing.T) {
	ctx := context.Background()
	trxID := uuid.New()

	repo := &fakeKasBesarRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*kasbesar.Transaction, error) {
			return &kasbesar.Transaction{ID: id, Status: workflow.StatusDraft}, nil
		},
		deleteDraftFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			// baris sudah berpindah status di transaksi lain
			return 0, nil
		},
	}
	svc := kasbesar.NewService(repo)

	err := svc.Delete(ctx, trxID.String())

	assert.ErrorIs(t, err, kasbesarerrors.ErrStatusConflict)
}
