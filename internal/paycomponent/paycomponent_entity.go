package paycomponent

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	paycomponenterrors "coaltools/internal/paycomponent/errors"
)

type Kind string

const (
	KindEarning   Kind = "EARNING"
	KindDeduction Kind = "DEDUCTION"
)

type Method string

const (
	MethodFlat       Method = "FLAT"
	MethodPerDay     Method = "PER_DAY"
	MethodPercentage Method = "PERCENTAGE"
)

type Basis string

const (
	BasisDailyWage Basis = "DAILY_WAGE"
	BasisGrossPay  Basis = "GROSS_PAY"
	BasisWorkdays  Basis = "WORKDAYS"
)

// PayComponent adalah entri katalog komponen gaji. Rate dipakai metode
// PER_DAY dan PERCENTAGE, Nominal dipakai metode FLAT. CapMin/CapMax
// membatasi hasil kalkulasi per baris.
type PayComponent struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nama      string          `gorm:"type:varchar(120);not null" json:"nama"`
	Kind      Kind            `gorm:"type:varchar(16);not null" json:"kind"`
	Taxable   bool            `gorm:"not null;default:false" json:"taxable"`
	Method    Method          `gorm:"type:varchar(16);not null" json:"method"`
	Basis     Basis           `gorm:"type:varchar(16)" json:"basis"`
	Rate      decimal.Decimal `gorm:"type:numeric(14,4);default:0" json:"rate"`
	Nominal   int64           `gorm:"not null;default:0" json:"nominal"`
	CapMin    *int64          `gorm:"column:cap_min" json:"capMin,omitempty"`
	CapMax    *int64          `gorm:"column:cap_max" json:"capMax,omitempty"`
	SortOrder int             `gorm:"not null;default:0" json:"order"`
	Aktif     bool            `gorm:"not null;default:true" json:"aktif"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (PayComponent) TableName() string {
	return "pay_components"
}

func (c *PayComponent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate menolak konfigurasi yang tidak lengkap sebelum masuk katalog.
// Komponen yang lolos di sini boleh diasumsikan valid oleh kalkulator.
func (c *PayComponent) Validate() error {
	switch c.Kind {
	case KindEarning, KindDeduction:
	default:
		return paycomponenterrors.ErrInvalidKind
	}

	switch c.Method {
	case MethodFlat:
		if c.Nominal <= 0 {
			return paycomponenterrors.ErrNominalRequired
		}
	case MethodPerDay, MethodPercentage:
		if !c.Rate.IsPositive() {
			return paycomponenterrors.ErrRateRequired
		}
	default:
		return paycomponenterrors.ErrInvalidMethod
	}

	if c.Method == MethodPercentage {
		switch c.Basis {
		case BasisDailyWage, BasisGrossPay, BasisWorkdays:
		default:
			return paycomponenterrors.ErrInvalidBasis
		}
	}

	if c.Taxable && c.Kind == KindDeduction {
		return paycomponenterrors.ErrTaxableDeduction
	}

	if c.CapMin != nil && *c.CapMin < 0 {
		return paycomponenterrors.ErrNegativeCap
	}
	if c.CapMax != nil && *c.CapMax < 0 {
		return paycomponenterrors.ErrNegativeCap
	}
	if c.CapMin != nil && c.CapMax != nil && *c.CapMin > *c.CapMax {
		return paycomponenterrors.ErrInvalidCapRange
	}

	return nil
}
