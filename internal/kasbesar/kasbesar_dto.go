package kasbesar

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Tanggal       string          `json:"tanggal" binding:"required,datetime=2006-01-02"`
	TipeAktivitas string          `json:"tipeAktivitas" binding:"omitempty,max=100"`
	Barang        string          `json:"barang" binding:"required,max=150"`
	Banyak        decimal.Decimal `json:"banyak" binding:"required"`
	Satuan        string          `json:"satuan" binding:"omitempty,max=32"`
	HargaSatuan   int64           `json:"hargaSatuan" binding:"required,gt=0"`
	Total         *int64          `json:"total"`
	VendorNama    string          `json:"vendorNama" binding:"omitempty,max=150"`
	VendorTelp    string          `json:"vendorTelp" binding:"omitempty,max=32"`
	VendorEmail   string          `json:"vendorEmail" binding:"omitempty,email"`
	Jenis         string          `json:"jenis" binding:"omitempty,max=64"`
	SubJenis      string          `json:"subJenis" binding:"omitempty,max=64"`
	BuktiURL      string          `json:"buktiUrl" binding:"omitempty,url"`
	KontrakURL    string          `json:"kontrakUrl" binding:"omitempty,url"`
}

type UpdateTransactionRequest struct {
	Tanggal       *string          `json:"tanggal" binding:"omitempty,datetime=2006-01-02"`
	TipeAktivitas *string          `json:"tipeAktivitas" binding:"omitempty,max=100"`
	Barang        *string          `json:"barang" binding:"omitempty,max=150"`
	Banyak        *decimal.Decimal `json:"banyak"`
	Satuan        *string          `json:"satuan" binding:"omitempty,max=32"`
	HargaSatuan   *int64           `json:"hargaSatuan" binding:"omitempty,gt=0"`
	VendorNama    *string          `json:"vendorNama" binding:"omitempty,max=150"`
	VendorTelp    *string          `json:"vendorTelp" binding:"omitempty,max=32"`
	VendorEmail   *string          `json:"vendorEmail" binding:"omitempty,email"`
	Jenis         *string          `json:"jenis" binding:"omitempty,max=64"`
	SubJenis      *string          `json:"subJenis" binding:"omitempty,max=64"`
	BuktiURL      *string          `json:"buktiUrl" binding:"omitempty,url"`
	KontrakURL    *string          `json:"kontrakUrl" binding:"omitempty,url"`
}

type TransitionTransactionRequest struct {
	Status  string `json:"status" binding:"required,oneof=DRAFT SUBMITTED REVIEWED APPROVED REJECTED ARCHIVED"`
	Catatan string `json:"catatan" binding:"omitempty,max=500"`
}

type TransactionResponse struct {
	ID                 string          `json:"id"`
	Hari               string          `json:"hari"`
	Tanggal            string          `json:"tanggal"`
	Bulan              string          `json:"bulan"`
	TipeAktivitas      string          `json:"tipeAktivitas,omitempty"`
	Barang             string          `json:"barang"`
	Banyak             decimal.Decimal `json:"banyak"`
	Satuan             string          `json:"satuan,omitempty"`
	HargaSatuan        int64           `json:"hargaSatuan"`
	Total              int64           `json:"total"`
	VendorNama         string          `json:"vendorNama,omitempty"`
	VendorTelp         string          `json:"vendorTelp,omitempty"`
	VendorEmail        string          `json:"vendorEmail,omitempty"`
	Jenis              string          `json:"jenis,omitempty"`
	SubJenis           string          `json:"subJenis,omitempty"`
	BuktiURL           string          `json:"buktiUrl,omitempty"`
	KontrakURL         string          `json:"kontrakUrl,omitempty"`
	Status             string          `json:"status"`
	CatatanPersetujuan string          `json:"catatanPersetujuan,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}
