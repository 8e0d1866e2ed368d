package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger mencatat kejadian operasional penting di luar request flow
// (startup, shutdown). Implementasi default menulis ke stdout via zap.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
