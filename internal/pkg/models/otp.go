package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPType distinguishes what an OTP authorizes
type OTPType string

const (
	OTPTypeLogin      OTPType = "login"
	OTPTypeWithdrawal OTPType = "withdrawal"
)

// DeliveryMethod is the channel an OTP is dispatched over
type DeliveryMethod string

const (
	DeliverySMS      DeliveryMethod = "sms"
	DeliveryWhatsApp DeliveryMethod = "whatsapp"
	DeliveryEmail    DeliveryMethod = "email"
)

// OTP represents a one-time verification code. Rows are never deleted;
// used and expired codes stay behind as an audit trail.
type OTP struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	UserID         uuid.UUID      `json:"user_id" db:"user_id"`
	Code           string         `json:"code" db:"code"`
	Type           OTPType        `json:"otp_type" db:"otp_type"`
	DeliveryMethod DeliveryMethod `json:"delivery_method" db:"delivery_method"`
	Recipient      string         `json:"recipient" db:"recipient"`
	ExpiresAt      time.Time      `json:"expires_at" db:"expires_at"`
	IsUsed         bool           `json:"is_used" db:"is_used"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}

// LoginRequest is a request to start an OTP login
type LoginRequest struct {
	MSISDN         string         `json:"msisdn"`
	DeliveryMethod DeliveryMethod `json:"delivery_method,omitempty"`
}

// VerifyLoginRequest is a request to verify a login OTP
type VerifyLoginRequest struct {
	MSISDN string `json:"msisdn"`
	OTP    string `json:"otp"`
}

// AuthResponse is returned after successful OTP login
type AuthResponse struct {
	Token      string `json:"token"`
	EmployeeID string `json:"employee_id"`
	ExpiresAt  int64  `json:"expires_at"`
}
