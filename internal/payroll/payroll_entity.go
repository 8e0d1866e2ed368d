package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"coaltools/internal/paycomponent"
	"coaltools/internal/workflow"
)

// PayrollRun adalah satu batch penggajian untuk satu periode. Run memiliki
// PayrollLines secara eksklusif: line tidak punya lifecycle sendiri dan ikut
// terhapus bersama run. Total run (gross, net) diturunkan dari lines, tidak
// disimpan, supaya tidak bisa drift.
type PayrollRun struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PeriodeAwal  time.Time       `gorm:"type:date;not null" json:"periodeAwal"`
	PeriodeAkhir time.Time       `gorm:"type:date;not null" json:"periodeAkhir"`
	Status       workflow.Status `gorm:"type:varchar(16);not null;default:'DRAFT'" json:"status"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null" json:"createdBy"`
	ApprovedBy   *uuid.UUID      `gorm:"type:uuid" json:"approvedBy,omitempty"`
	PaidAt       *time.Time      `json:"paidAt,omitempty"`
	Catatan      string          `gorm:"type:text" json:"catatan,omitempty"`
	Lines        []PayrollLine   `gorm:"foreignKey:PayrollRunID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

func (r *PayrollRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TotalGross menjumlahkan gross seluruh line.
func (r *PayrollRun) TotalGross() int64 {
	var total int64
	for i := range r.Lines {
		total += r.Lines[i].Gross
	}
	return total
}

// TotalNet menjumlahkan net seluruh line.
func (r *PayrollRun) TotalNet() int64 {
	var total int64
	for i := range r.Lines {
		total += r.Lines[i].Net
	}
	return total
}

// PayrollLine adalah hasil kalkulasi satu karyawan dalam satu run. Input
// snapshot (upah harian, hari kerja, lembur, kasbon) ikut disimpan supaya
// hasil bisa diaudit tanpa data karyawan saat ini.
type PayrollLine struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PayrollRunID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null" json:"employeeId"`
	// Nama karyawan disalin saat kalkulasi; perubahan data karyawan
	// setelahnya tidak mengubah slip lama.
	EmployeeName  string          `gorm:"type:varchar(120);not null" json:"employeeName"`
	Urutan        int             `gorm:"not null;default:0" json:"urutan"`
	DailyWage      int64           `gorm:"not null;default:0" json:"dailyWage"`
	Workdays       int             `gorm:"not null;default:0" json:"workdays"`
	OvertimeHours  decimal.Decimal `gorm:"type:numeric(8,2);default:0" json:"overtimeHours"`
	OvertimeRate   int64           `gorm:"not null;default:0" json:"overtimeRate"`
	Kasbon         int64           `gorm:"not null;default:0" json:"kasbon"`
	TaxRate        decimal.Decimal `gorm:"type:numeric(8,4);default:0" json:"taxRate"`
	Gross          int64           `gorm:"not null;default:0" json:"gross"`
	TaxAmount      int64           `gorm:"not null;default:0" json:"taxAmount"`
	DeductionTotal int64           `gorm:"not null;default:0" json:"deductionTotal"`
	Net            int64           `gorm:"not null;default:0" json:"net"`
	// NetAdjusted true saat potongan+pajak melebihi gross dan net dipatok nol.
	NetAdjusted bool            `gorm:"not null;default:false" json:"netAdjusted"`
	Components  []LineComponent `gorm:"foreignKey:PayrollLineID;constraint:OnDelete:CASCADE" json:"components,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (PayrollLine) TableName() string {
	return "payroll_lines"
}

func (l *PayrollLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// LineComponent adalah satu baris komponen pada slip. Nama dan sifat komponen
// disalin by value dari katalog saat kalkulasi (bukan foreign key), sehingga
// mengedit atau menghapus entri katalog tidak merusak run yang sudah final.
type LineComponent struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PayrollLineID uuid.UUID         `gorm:"type:uuid;not null;index" json:"-"`
	Nama          string            `gorm:"type:varchar(120);not null" json:"nama"`
	Kind          paycomponent.Kind `gorm:"type:varchar(16);not null" json:"kind"`
	Taxable       bool              `gorm:"not null;default:false" json:"taxable"`
	// Amount bertanda: positif untuk earning, negatif untuk deduction.
	Amount    int64     `gorm:"not null" json:"amount"`
	Urutan    int       `gorm:"not null;default:0" json:"urutan"`
	CreatedAt time.Time `json:"-"`
}

func (LineComponent) TableName() string {
	return "payroll_line_components"
}

func (c *LineComponent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
