package events

import "time"

const EmployeeCreatedTopic = "coal.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Site       string    `json:"site"`
	OccurredAt time.Time `json:"occurred_at"`
}
