package models

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalEvent is published to NATS on every withdrawal state change
type WithdrawalEvent struct {
	WithdrawalID  uuid.UUID        `json:"withdrawal_id"`
	EmployeeID    uuid.UUID        `json:"employee_id"`
	Amount        int64            `json:"amount"`
	NetAmount     int64            `json:"net_amount"`
	PaymentMethod PaymentMethod    `json:"payment_method"`
	Status        WithdrawalStatus `json:"status"`
	Reason        string           `json:"reason,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}
