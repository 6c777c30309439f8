package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies how a withdrawal is disbursed
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
)

// WithdrawalStatus is the lifecycle state of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusPendingOTP WithdrawalStatus = "pending_otp"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusFailed     WithdrawalStatus = "failed"
	WithdrawalStatusCancelled  WithdrawalStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed
func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalStatusCompleted || s == WithdrawalStatusFailed || s == WithdrawalStatusCancelled
}

// Withdrawal represents a salary withdrawal request.
// Amount is the gross requested amount; NetAmount is what the gateway
// actually disburses after charges. All amounts are integer UGX.
type Withdrawal struct {
	ID                uuid.UUID        `json:"id" db:"id"`
	EmployeeID        uuid.UUID        `json:"employee_id" db:"employee_id"`
	Amount            int64            `json:"amount" db:"amount"`
	Charges           int64            `json:"charges" db:"charges"`
	NetAmount         int64            `json:"net_amount" db:"net_amount"`
	PaymentMethod     PaymentMethod    `json:"payment_method" db:"payment_method"`
	MobileNumber      string           `json:"mobile_number,omitempty" db:"mobile_number"`
	MobileProvider    string           `json:"mobile_provider,omitempty" db:"mobile_provider"`
	BankAccount       string           `json:"bank_account,omitempty" db:"bank_account"`
	BankCode          string           `json:"bank_code,omitempty" db:"bank_code"`
	BankName          string           `json:"bank_name,omitempty" db:"bank_name"`
	Status            WithdrawalStatus `json:"status" db:"status"`
	TransferReference string           `json:"transfer_reference,omitempty" db:"transfer_reference"`
	FailureReason     string           `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	ProcessedAt       *time.Time       `json:"processed_at,omitempty" db:"processed_at"`
}

// WithdrawalInput is the typed request payload for creating a withdrawal
type WithdrawalInput struct {
	Amount         int64          `json:"amount"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	MobileNumber   string         `json:"mobile_number,omitempty"`
	MobileProvider string         `json:"mobile_provider,omitempty"`
	BankAccount    string         `json:"bank_account,omitempty"`
	BankCode       string         `json:"bank_code,omitempty"`
	BankName       string         `json:"bank_name,omitempty"`
	DeliveryMethod DeliveryMethod `json:"delivery_method,omitempty"`
}

// VerifyWithdrawalRequest carries the OTP submitted to release a withdrawal
type VerifyWithdrawalRequest struct {
	OTP string `json:"otp"`
}

// TransferRequest is the disbursement instruction handed to the payment gateway
type TransferRequest struct {
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	AccountNumber string        `json:"account_number"`
	BankCode      string        `json:"bank_code"`
	Reference     string        `json:"reference"`
	Narration     string        `json:"narration"`
}

// TransferResult is the gateway's answer to a transfer request
type TransferResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
