package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseSummary merangkum satu buku kas per status persetujuan.
type ExpenseSummary struct {
	DraftTotal     int64 `json:"draftTotal"`
	SubmittedTotal int64 `json:"submittedTotal"`
	ApprovedTotal  int64 `json:"approvedTotal"`
}

type PayrollSummary struct {
	DraftRuns    int64 `json:"draftRuns"`
	ApprovedRuns int64 `json:"approvedRuns"`
	PaidRuns     int64 `json:"paidRuns"`
	PaidNetTotal int64 `json:"paidNetTotal"`
}

type ProductionSummary struct {
	ApprovedReports  int64           `json:"approvedReports"`
	ApprovedNettoTon decimal.Decimal `json:"approvedNettoTon"`
	ApprovedValue    int64           `json:"approvedValue"`
}

type SummaryResponse struct {
	KasKecil      ExpenseSummary    `json:"kasKecil"`
	KasBesar      ExpenseSummary    `json:"kasBesar"`
	Payroll       PayrollSummary    `json:"payroll"`
	Produksi      ProductionSummary `json:"produksi"`
	KaryawanAktif int64             `json:"karyawanAktif"`
	GeneratedAt   time.Time         `json:"generatedAt"`
}
