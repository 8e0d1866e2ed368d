package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"coaltools/internal/buyer"
	"coaltools/internal/workflow"
)

// ProductionReport adalah laporan timbangan satu pengiriman batu bara.
// Netto = gross - tare, dihitung dan disimpan saat laporan dibuat.
type ProductionReport struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Tanggal     time.Time       `gorm:"type:date;not null" json:"tanggal"`
	NopolTruk   string          `gorm:"type:varchar(20)" json:"nopolTruk"`
	Tujuan      string          `gorm:"type:varchar(150)" json:"tujuan,omitempty"`
	BuyerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"buyerId"`
	Buyer       *buyer.Buyer    `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	// BuyerNama disalin saat laporan dibuat; perubahan data buyer tidak
	// mengubah laporan lama.
	BuyerNama   string          `gorm:"type:varchar(150);not null" json:"buyerNama"`
	GrossTon    decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"grossTon"`
	TareTon     decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"tareTon"`
	NettoTon    decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"nettoTon"`
	HargaPerTon int64           `gorm:"not null" json:"hargaPerTon"`
	// Total = netto x harga per ton, dibulatkan ke rupiah utuh.
	Total      int64           `gorm:"not null" json:"total"`
	Status     workflow.Status `gorm:"type:varchar(16);not null;default:'DRAFT'" json:"status"`
	Keterangan string          `gorm:"type:text" json:"keterangan,omitempty"`
	CreatedBy  uuid.UUID       `gorm:"type:uuid;not null" json:"createdBy"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (ProductionReport) TableName() string {
	return "production_reports"
}

func (r *ProductionReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
