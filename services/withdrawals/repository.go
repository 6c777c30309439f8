package withdrawals

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kasule/wagepay/services/withdrawals WithdrawalRepo

// WithdrawalRepo is the persistence interface for the withdrawal flow.
//
// CreateWithdrawal and the terminal transition methods are transactional:
// a balance mutation never commits without its matching status change.
type WithdrawalRepo interface {
	// employees
	GetEmployeeByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetEmployeeByMSISDN(ctx context.Context, msisdn string) (*models.Employee, error)

	// withdrawals
	// CreateWithdrawal reserves the gross amount against the employee
	// balance and inserts the withdrawal row in one transaction. Returns
	// an InsufficientBalanceError when the reservation would overdraw.
	CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error
	// MarkProcessing transitions pending_otp -> processing.
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// MarkCompleted transitions processing -> completed and records the
	// gateway transfer reference.
	MarkCompleted(ctx context.Context, id uuid.UUID, transferRef string) error
	// MarkFailed transitions processing -> failed, records the failure
	// reason and releases the reserved amount back to the balance.
	MarkFailed(ctx context.Context, w *models.Withdrawal, reason string) error
	// CancelWithdrawal transitions pending_otp -> cancelled and releases
	// the reserved amount back to the balance.
	CancelWithdrawal(ctx context.Context, w *models.Withdrawal, reason string) error
	GetWithdrawalForEmployee(ctx context.Context, id, employeeID uuid.UUID) (*models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, employeeID uuid.UUID) ([]models.Withdrawal, error)

	// OTP records
	CreateOTP(ctx context.Context, otp *models.OTP) error
	// GetValidOTP returns the most recently created unused, unexpired OTP
	// matching user, code and type, or nil when there is none.
	GetValidOTP(ctx context.Context, userID uuid.UUID, code string, otpType models.OTPType) (*models.OTP, error)
	MarkOTPUsed(ctx context.Context, id uuid.UUID) error

	// OTP attempt throttling
	IncrementOTPAttempts(ctx context.Context, userID uuid.UUID, otpType models.OTPType, lockout time.Duration) (int64, error)
	ResetOTPAttempts(ctx context.Context, userID uuid.UUID, otpType models.OTPType) error
}
