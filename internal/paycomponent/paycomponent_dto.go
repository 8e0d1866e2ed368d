package paycomponent

import "github.com/shopspring/decimal"

type CreatePayComponentRequest struct {
	Nama      string          `json:"nama" binding:"required,min=2,max=120"`
	Kind      string          `json:"kind" binding:"required,oneof=EARNING DEDUCTION"`
	Taxable   bool            `json:"taxable"`
	Method    string          `json:"method" binding:"required,oneof=FLAT PER_DAY PERCENTAGE"`
	Basis     string          `json:"basis" binding:"omitempty,oneof=DAILY_WAGE GROSS_PAY WORKDAYS"`
	Rate      decimal.Decimal `json:"rate"`
	Nominal   int64           `json:"nominal" binding:"omitempty,min=0"`
	CapMin    *int64          `json:"capMin"`
	CapMax    *int64          `json:"capMax"`
	SortOrder int             `json:"order" binding:"omitempty,min=0"`
}

type UpdatePayComponentRequest struct {
	Nama      *string          `json:"nama" binding:"omitempty,min=2,max=120"`
	Kind      *string          `json:"kind" binding:"omitempty,oneof=EARNING DEDUCTION"`
	Taxable   *bool            `json:"taxable"`
	Method    *string          `json:"method" binding:"omitempty,oneof=FLAT PER_DAY PERCENTAGE"`
	Basis     *string          `json:"basis" binding:"omitempty,oneof=DAILY_WAGE GROSS_PAY WORKDAYS"`
	Rate      *decimal.Decimal `json:"rate"`
	Nominal   *int64           `json:"nominal" binding:"omitempty,min=0"`
	CapMin    *int64           `json:"capMin"`
	CapMax    *int64           `json:"capMax"`
	SortOrder *int             `json:"order" binding:"omitempty,min=0"`
	Aktif     *bool            `json:"aktif"`
}

type PayComponentResponse struct {
	ID        string          `json:"id"`
	Nama      string          `json:"nama"`
	Kind      string          `json:"kind"`
	Taxable   bool            `json:"taxable"`
	Method    string          `json:"method"`
	Basis     string          `json:"basis,omitempty"`
	Rate      decimal.Decimal `json:"rate"`
	Nominal   int64           `json:"nominal"`
	CapMin    *int64          `json:"capMin,omitempty"`
	CapMax    *int64          `json:"capMax,omitempty"`
	SortOrder int             `json:"order"`
	Aktif     bool            `json:"aktif"`
}
