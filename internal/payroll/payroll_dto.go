package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRunLineRequest struct {
	EmployeeID    string           `json:"employeeId" binding:"required,uuid"`
	Workdays      int              `json:"workdays" binding:"omitempty,min=0,max=31"`
	DailyWage     *int64           `json:"dailyWage" binding:"omitempty,min=0"`
	OvertimeHours decimal.Decimal  `json:"overtimeHours"`
	OvertimeRate  int64            `json:"overtimeRate" binding:"omitempty,min=0"`
	Kasbon        int64            `json:"kasbon" binding:"omitempty,min=0"`
	TaxRate       *decimal.Decimal `json:"taxRate"`
	// FlatOverrides mengganti nominal komponen FLAT untuk karyawan ini saja,
	// keyed by component id.
	FlatOverrides map[string]int64 `json:"flatOverrides"`
	// ComponentIDs membatasi katalog untuk karyawan ini. Kosong berarti
	// seluruh katalog aktif.
	ComponentIDs []string `json:"componentIds" binding:"omitempty,dive,uuid"`
	// CustomComponents adalah komponen sekali pakai khusus line ini.
	CustomComponents []CustomComponentRequest `json:"customComponents" binding:"omitempty,dive"`
}

type CustomComponentRequest struct {
	Nama    string `json:"nama" binding:"required,max=100"`
	Kind    string `json:"kind" binding:"required,oneof=EARNING DEDUCTION"`
	Taxable bool   `json:"taxable"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
}

type CreateRunRequest struct {
	PeriodeAwal  string                 `json:"periodeAwal" binding:"required,datetime=2006-01-02"`
	PeriodeAkhir string                 `json:"periodeAkhir" binding:"required,datetime=2006-01-02"`
	Catatan      string                 `json:"catatan"`
	TaxRate      decimal.Decimal        `json:"taxRate"`
	Lines        []CreateRunLineRequest `json:"lines" binding:"required,min=1,dive"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT REVIEWED APPROVED PAID ARCHIVED"`
}

type LineComponentResponse struct {
	Nama    string `json:"nama"`
	Kind    string `json:"kind"`
	Taxable bool   `json:"taxable"`
	Amount  int64  `json:"amount"`
}

type PayrollLineResponse struct {
	ID             string                  `json:"id"`
	EmployeeID     string                  `json:"employeeId"`
	EmployeeName   string                  `json:"employeeName"`
	DailyWage      int64                   `json:"dailyWage"`
	Workdays       int                     `json:"workdays"`
	OvertimeHours  decimal.Decimal         `json:"overtimeHours"`
	Kasbon         int64                   `json:"kasbon"`
	TaxRate        decimal.Decimal         `json:"taxRate"`
	Gross          int64                   `json:"gross"`
	TaxAmount      int64                   `json:"taxAmount"`
	DeductionTotal int64                   `json:"deductionTotal"`
	Net            int64                   `json:"net"`
	NetAdjusted    bool                    `json:"netAdjusted"`
	Components     []LineComponentResponse `json:"components"`
}

type PayrollRunResponse struct {
	ID           string                `json:"id"`
	PeriodeAwal  string                `json:"periodeAwal"`
	PeriodeAkhir string                `json:"periodeAkhir"`
	Status       string                `json:"status"`
	CreatedBy    string                `json:"createdBy"`
	ApprovedBy   string                `json:"approvedBy,omitempty"`
	PaidAt       *time.Time            `json:"paidAt,omitempty"`
	Catatan      string                `json:"catatan,omitempty"`
	TotalGross   int64                 `json:"totalGross"`
	TotalNet     int64                 `json:"totalNet"`
	Lines        []PayrollLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// BreakdownRowResponse adalah satu baris datar per komponen, dipakai ekspor
// eksternal yang tidak mau struktur bersarang.
type BreakdownRowResponse struct {
	RunID         string `json:"runId"`
	PeriodeAwal   string `json:"periodeAwal"`
	PeriodeAkhir  string `json:"periodeAkhir"`
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	ComponentNama string `json:"componentNama"`
	Kind          string `json:"kind"`
	Taxable       bool   `json:"taxable"`
	Amount        int64  `json:"amount"`
	LineGross     int64  `json:"lineGross"`
	LineNet       int64  `json:"lineNet"`
}

type PayrollRunSummaryResponse struct {
	ID           string `json:"id"`
	PeriodeAwal  string `json:"periodeAwal"`
	PeriodeAkhir string `json:"periodeAkhir"`
	Status       string `json:"status"`
	LineCount    int    `json:"lineCount"`
	TotalGross   int64  `json:"totalGross"`
	TotalNet     int64  `json:"totalNet"`
}
