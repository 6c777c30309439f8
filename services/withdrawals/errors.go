package withdrawals

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the withdrawal use case. Handlers translate
// these into HTTP status codes; anything else is a server error.
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidOTP          = errors.New("invalid or expired verification code")
	ErrOTPLocked           = errors.New("too many verification attempts, try again later")
	ErrInvalidState        = errors.New("withdrawal is not in a state that allows this operation")
)

// InsufficientBalanceError reports a rejected withdrawal together with the
// balance still available, so the caller can see how much can be drawn.
type InsufficientBalanceError struct {
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %d UGX available", e.Available)
}

// Is makes errors.Is(err, ErrInsufficientBalance) match
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// ValidationError reports a request rejected before any state mutation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
