package events

import "time"

const PayrollLifecycleTopic = "coal.payroll.lifecycle.v1"

type PayrollStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	PayrollRunID string    `json:"payroll_run_id"`
	FromStatus   string    `json:"from_status"`
	ToStatus     string    `json:"to_status"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
