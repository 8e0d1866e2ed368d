package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee adalah pekerja kontrak site tambang. Nilai uang disimpan dalam
// rupiah utuh (int64) untuk menghindari error floating point.
type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nama         string    `gorm:"type:varchar(255);not null"`
	NIK          string    `gorm:"type:varchar(32);uniqueIndex"`
	Jabatan      string    `gorm:"type:varchar(100);not null"`
	Site         string    `gorm:"type:varchar(100);not null"`
	TempatLahir  string    `gorm:"type:varchar(100)"`
	TanggalLahir *time.Time
	Alamat       string `gorm:"type:text"`

	KontrakUpahHarian int64 `gorm:"type:bigint;not null"`
	DefaultUangMakan  int64 `gorm:"type:bigint;not null;default:0"`
	DefaultUangBbm    int64 `gorm:"type:bigint;not null;default:0"`

	BankName    string `gorm:"type:varchar(100)"`
	BankAccount string `gorm:"type:varchar(50)"`
	NPWP        string `gorm:"type:varchar(32)"`

	StartDate *time.Time `gorm:"type:date"`
	Aktif     bool       `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
