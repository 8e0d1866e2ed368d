package workflow

import "fmt"

// Status adalah lifecycle state untuk dokumen back-office (payroll run,
// laporan produksi, transaksi kas).
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusReviewed  Status = "REVIEWED"
	StatusApproved  Status = "APPROVED"
	StatusPaid      Status = "PAID"
	StatusArchived  Status = "ARCHIVED"
	StatusRejected  Status = "REJECTED"
)

// All mengembalikan seluruh status yang dikenal, untuk validasi filter dan test.
func All() []Status {
	return []Status{
		StatusDraft,
		StatusSubmitted,
		StatusReviewed,
		StatusApproved,
		StatusPaid,
		StatusArchived,
		StatusRejected,
	}
}

// InvalidTransitionError dilaporkan saat target status tidak diizinkan dari
// status sekarang. From/To disertakan agar UI bisa menjelaskan kenapa aksi diblokir.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Table memetakan status asal ke daftar status tujuan yang diizinkan.
// Semua pengecekan transisi HARUS lewat tabel ini, tidak ada perbandingan
// status ad-hoc di tempat lain.
type Table map[Status][]Status

// Can melaporkan apakah transisi from->to diizinkan.
func (t Table) Can(from, to Status) bool {
	for _, allowed := range t[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Step memvalidasi transisi from->to, mengembalikan *InvalidTransitionError
// jika tidak diizinkan.
func (t Table) Step(from, to Status) error {
	if !t.Can(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal melaporkan apakah status tidak punya transisi keluar.
func (t Table) IsTerminal(s Status) bool {
	return len(t[s]) == 0
}

// PayrollRuns adalah tabel transisi untuk payroll run.
var PayrollRuns = Table{
	StatusDraft:    {StatusReviewed, StatusArchived},
	StatusReviewed: {StatusApproved, StatusDraft, StatusArchived},
	StatusApproved: {StatusPaid, StatusArchived},
	StatusPaid:     {StatusArchived},
	StatusArchived: {},
}

// Expenses adalah tabel transisi untuk transaksi kas dan laporan produksi.
// REJECTED dan ARCHIVED terminal.
var Expenses = Table{
	StatusDraft:     {StatusSubmitted, StatusArchived},
	StatusSubmitted: {StatusReviewed, StatusDraft, StatusRejected},
	StatusReviewed:  {StatusApproved, StatusRejected, StatusArchived},
	StatusApproved:  {StatusArchived},
	StatusRejected:  {},
	StatusArchived:  {},
}
