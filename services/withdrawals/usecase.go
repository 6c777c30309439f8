package withdrawals

import (
	"context"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kasule/wagepay/services/withdrawals WithdrawalUC

// WithdrawalUC is the withdrawal use case interface
type WithdrawalUC interface {
	// login OTP
	GenerateLoginOTP(ctx context.Context, msisdn string, method models.DeliveryMethod) error
	VerifyLoginOTP(ctx context.Context, msisdn, code string) (*models.AuthResponse, error)

	// withdrawal lifecycle
	RequestWithdrawal(ctx context.Context, employeeID uuid.UUID, input *models.WithdrawalInput) (*models.Withdrawal, error)
	VerifyWithdrawal(ctx context.Context, employeeID, withdrawalID uuid.UUID, code string) (*models.Withdrawal, error)
	ResendWithdrawalOTP(ctx context.Context, employeeID, withdrawalID uuid.UUID, method models.DeliveryMethod) error
	CancelWithdrawal(ctx context.Context, employeeID, withdrawalID uuid.UUID) (*models.Withdrawal, error)

	// queries
	GetWithdrawal(ctx context.Context, employeeID, withdrawalID uuid.UUID) (*models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, employeeID uuid.UUID) ([]models.Withdrawal, error)
	GetBalance(ctx context.Context, employeeID uuid.UUID) (*models.Balance, error)
}
