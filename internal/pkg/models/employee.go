package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents an employee enrolled in salary withdrawal
type Employee struct {
	ID          uuid.UUID `json:"id" db:"id"`
	MSISDN      string    `json:"msisdn" db:"msisdn"`
	FullName    string    `json:"full_name" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	BankAccount string    `json:"bank_account" db:"bank_account"`
	BankCode    string    `json:"bank_code" db:"bank_code"`
	BankName    string    `json:"bank_name" db:"bank_name"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Balance columns live on the employee row; the withdrawal flow
	// mutates them through guarded updates only.
	PeriodAllocatedAmount int64 `json:"period_allocated_amount" db:"period_allocated_amount"`
	WithdrawnAmount       int64 `json:"withdrawn_amount" db:"withdrawn_amount"`
}

// Available returns the balance still open for withdrawal this period
func (e *Employee) Available() int64 {
	return e.PeriodAllocatedAmount - e.WithdrawnAmount
}

// Balance is the employee balance view returned to clients
type Balance struct {
	EmployeeID      uuid.UUID `json:"employee_id"`
	AllocatedAmount int64     `json:"allocated_amount"`
	WithdrawnAmount int64     `json:"withdrawn_amount"`
	Available       int64     `json:"available"`
	Currency        string    `json:"currency"`
}
