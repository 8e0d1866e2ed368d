package production

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateReportRequest struct {
	Tanggal   string          `json:"tanggal" binding:"required,datetime=2006-01-02"`
	NopolTruk string          `json:"nopolTruk" binding:"omitempty,max=20"`
	Tujuan    string          `json:"tujuan" binding:"omitempty,max=150"`
	BuyerID   string          `json:"buyerId" binding:"required,uuid"`
	GrossTon  decimal.Decimal `json:"grossTon" binding:"required"`
	TareTon   decimal.Decimal `json:"tareTon"`
	// HargaPerTon opsional; kosong berarti memakai harga default buyer.
	HargaPerTon *int64 `json:"hargaPerTon" binding:"omitempty,gt=0"`
	Keterangan  string `json:"keterangan"`
}

type UpdateReportRequest struct {
	Tanggal     *string          `json:"tanggal" binding:"omitempty,datetime=2006-01-02"`
	NopolTruk   *string          `json:"nopolTruk" binding:"omitempty,max=20"`
	Tujuan      *string          `json:"tujuan" binding:"omitempty,max=150"`
	GrossTon    *decimal.Decimal `json:"grossTon"`
	TareTon     *decimal.Decimal `json:"tareTon"`
	HargaPerTon *int64           `json:"hargaPerTon" binding:"omitempty,gt=0"`
	Keterangan  *string          `json:"keterangan"`
}

type TransitionReportRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT SUBMITTED REVIEWED APPROVED REJECTED ARCHIVED"`
}

type ProductionReportResponse struct {
	ID          string          `json:"id"`
	Tanggal     string          `json:"tanggal"`
	NopolTruk   string          `json:"nopolTruk,omitempty"`
	Tujuan      string          `json:"tujuan,omitempty"`
	BuyerID     string          `json:"buyerId"`
	BuyerNama   string          `json:"buyerNama"`
	GrossTon    decimal.Decimal `json:"grossTon"`
	TareTon     decimal.Decimal `json:"tareTon"`
	NettoTon    decimal.Decimal `json:"nettoTon"`
	HargaPerTon int64           `json:"hargaPerTon"`
	Total       int64           `json:"total"`
	Status      string          `json:"status"`
	Keterangan  string          `json:"keterangan,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
