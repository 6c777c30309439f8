package usecase

import (
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals"
)

// Withdrawal policy, in UGX. One authoritative table for both methods.
const (
	MinMobileMoneyAmount  int64 = 1_000
	MinBankTransferAmount int64 = 20_000

	// Mobile money fee tiers
	mobileMoneyTierLimit   int64 = 105_000
	mobileMoneyFeeStandard int64 = 1_500
	mobileMoneyFeeHigh     int64 = 5_000

	// Bank transfers carry a flat fee regardless of amount
	bankTransferFee int64 = 10_000
)

// CalculateFee returns the withdrawal charge for an amount and payment
// method. Amounts below the method minimum are rejected before fee
// calculation, so the zero return on the reject path is never disbursed.
func CalculateFee(amount int64, method models.PaymentMethod) int64 {
	switch method {
	case models.PaymentMethodMobileMoney:
		if amount < MinMobileMoneyAmount {
			return 0
		}
		if amount > mobileMoneyTierLimit {
			return mobileMoneyFeeHigh
		}
		return mobileMoneyFeeStandard
	case models.PaymentMethodBankTransfer:
		if amount < MinBankTransferAmount {
			return 0
		}
		return bankTransferFee
	default:
		return 0
	}
}

// minimumAmount returns the minimum withdrawal for a payment method
func minimumAmount(method models.PaymentMethod) int64 {
	if method == models.PaymentMethodBankTransfer {
		return MinBankTransferAmount
	}
	return MinMobileMoneyAmount
}

// validateAmount checks the amount against the method policy and computes
// the fee and net amount.
func validateAmount(amount int64, method models.PaymentMethod) (fee, net int64, err error) {
	if amount <= 0 {
		return 0, 0, withdrawals.NewValidationError("amount must be greater than zero")
	}

	min := minimumAmount(method)
	if amount < min {
		return 0, 0, withdrawals.NewValidationError("minimum %s withdrawal is %d UGX", method, min)
	}

	fee = CalculateFee(amount, method)
	net = amount - fee
	if net <= 0 {
		return 0, 0, withdrawals.NewValidationError("amount does not cover the %d UGX charge", fee)
	}

	return fee, net, nil
}
