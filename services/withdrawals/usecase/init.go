package usecase

import (
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals"
)

// WithdrawalUC implements the withdrawal use case
type WithdrawalUC struct {
	repo withdrawals.WithdrawalRepo
	gw   withdrawals.WithdrawalGW
	cfg  *models.Config
}

// NewWithdrawalUC creates a new withdrawal use case instance
func NewWithdrawalUC(
	repo withdrawals.WithdrawalRepo,
	gw withdrawals.WithdrawalGW,
	cfg *models.Config,
) *WithdrawalUC {
	return &WithdrawalUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}
