package withdrawals

import (
	"context"

	"github.com/kasule/wagepay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kasule/wagepay/services/withdrawals WithdrawalGW

// WithdrawalGW defines the withdrawal gateways interface
type WithdrawalGW interface {
	// Payment gateway
	VerifyAccount(ctx context.Context, accountNumber, bankCode string) (string, error)
	InitiateTransfer(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error)

	// Notification gateway
	SendOTP(ctx context.Context, method models.DeliveryMethod, recipient, code string) error

	// NATS gateway
	PublishWithdrawalEvent(ctx context.Context, subject string, event *models.WithdrawalEvent) error
}
