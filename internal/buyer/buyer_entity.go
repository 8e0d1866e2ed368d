package buyer

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Buyer adalah pembeli batu bara. HargaPerTonDefault dipakai sebagai
// harga awal laporan produksi dan bisa dioverride per laporan.
type Buyer struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Nama               string         `gorm:"type:varchar(120);not null" json:"nama"`
	Alamat             string         `gorm:"type:text" json:"alamat"`
	Telepon            string         `gorm:"type:varchar(32)" json:"telepon"`
	Email              string         `gorm:"type:varchar(120)" json:"email"`
	HargaPerTonDefault int64          `gorm:"not null;default:0" json:"hargaPerTonDefault"`
	Aktif              bool           `gorm:"not null;default:true" json:"aktif"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Buyer) TableName() string {
	return "buyers"
}

func (b *Buyer) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
