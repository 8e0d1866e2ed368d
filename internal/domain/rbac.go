package domain

// EnforceRequest adalah kontrak pengecekan izin antara middleware dan RBAC service.
type EnforceRequest struct {
	UserID   string
	Resource string
	Action   string
}
