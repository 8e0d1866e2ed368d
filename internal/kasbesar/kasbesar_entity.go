package kasbesar

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"coaltools/internal/workflow"
)

// Transaction adalah pengeluaran kas besar: pembelian alat berat, kontrak
// vendor, dan belanja modal lain. Beda dengan kas kecil, transaksi ini
// membawa identitas vendor dan referensi kontrak.
type Transaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Hari          string          `gorm:"type:varchar(16)" json:"hari"`
	Tanggal       time.Time       `gorm:"type:date;not null" json:"tanggal"`
	Bulan         string          `gorm:"type:varchar(16);index" json:"bulan"`
	TipeAktivitas string          `gorm:"type:varchar(100)" json:"tipeAktivitas"`
	Barang        string          `gorm:"type:varchar(150);not null" json:"barang"`
	Banyak        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"banyak"`
	Satuan        string          `gorm:"type:varchar(32)" json:"satuan"`
	HargaSatuan   int64           `gorm:"not null" json:"hargaSatuan"`
	Total         int64           `gorm:"not null" json:"total"`
	VendorNama    string          `gorm:"type:varchar(150)" json:"vendorNama"`
	VendorTelp    string          `gorm:"type:varchar(32)" json:"vendorTelp"`
	VendorEmail   string          `gorm:"type:varchar(120)" json:"vendorEmail"`
	Jenis         string          `gorm:"type:varchar(64);index" json:"jenis"`
	SubJenis      string          `gorm:"type:varchar(64)" json:"subJenis"`
	BuktiURL      string          `gorm:"type:text" json:"buktiUrl,omitempty"`
	KontrakURL    string          `gorm:"type:text" json:"kontrakUrl,omitempty"`
	Status        workflow.Status `gorm:"type:varchar(16);not null;default:'DRAFT'" json:"status"`
	// CatatanPersetujuan diisi reviewer/approver saat transisi status.
	CatatanPersetujuan string         `gorm:"type:text" json:"catatanPersetujuan,omitempty"`
	CreatedBy          uuid.UUID      `gorm:"type:uuid;not null" json:"createdBy"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Transaction) TableName() string {
	return "kas_besar_transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
