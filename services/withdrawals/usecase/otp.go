package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/logger"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals"
)

const otpCodeLength = 6

var otpCodeMax = big.NewInt(1_000_000)

// generateOTPCode returns a uniformly random 6-digit numeric code from a
// cryptographically secure source.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%0*d", otpCodeLength, n.Int64()), nil
}

// issueOTP generates, persists and dispatches a new OTP. A dispatch failure
// is returned to the caller; the persisted record simply expires unused.
// Re-issuing does not invalidate earlier still-valid codes.
func (u *WithdrawalUC) issueOTP(ctx context.Context, userID uuid.UUID, otpType models.OTPType, method models.DeliveryMethod, recipient string) error {
	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	otp := &models.OTP{
		UserID:         userID,
		Code:           code,
		Type:           otpType,
		DeliveryMethod: method,
		Recipient:      recipient,
		ExpiresAt:      time.Now().Add(time.Duration(u.cfg.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := u.repo.CreateOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	if err := u.gw.SendOTP(ctx, method, recipient, code); err != nil {
		return fmt.Errorf("failed to dispatch OTP: %w", err)
	}

	logger.Info("OTP issued",
		logger.String("user_id", userID.String()),
		logger.String("otp_type", string(otpType)),
		logger.String("delivery_method", string(method)))

	return nil
}

// checkOTP enforces attempt throttling, looks up the most recent valid OTP
// and marks it used on a match. The attempt counter is cleared on success.
func (u *WithdrawalUC) checkOTP(ctx context.Context, userID uuid.UUID, code string, otpType models.OTPType) (*models.OTP, error) {
	lockout := time.Duration(u.cfg.OTP.LockoutMinutes) * time.Minute

	attempts, err := u.repo.IncrementOTPAttempts(ctx, userID, otpType, lockout)
	if err != nil {
		return nil, fmt.Errorf("failed to track OTP attempts: %w", err)
	}
	if attempts > int64(u.cfg.OTP.MaxAttempts) {
		return nil, withdrawals.ErrOTPLocked
	}

	otp, err := u.repo.GetValidOTP(ctx, userID, code, otpType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up OTP: %w", err)
	}
	if otp == nil {
		// Invalid and expired are indistinguishable to the caller
		return nil, withdrawals.ErrInvalidOTP
	}

	if err := u.repo.MarkOTPUsed(ctx, otp.ID); err != nil {
		return nil, fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	if err := u.repo.ResetOTPAttempts(ctx, userID, otpType); err != nil {
		logger.Warn("Failed to reset OTP attempt counter",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
	}

	return otp, nil
}

// resolveRecipient picks the destination address for an OTP delivery method
func resolveRecipient(employee *models.Employee, method models.DeliveryMethod) (string, error) {
	switch method {
	case models.DeliverySMS, models.DeliveryWhatsApp:
		return employee.MSISDN, nil
	case models.DeliveryEmail:
		if employee.Email == "" {
			return "", withdrawals.NewValidationError("employee has no email address on file")
		}
		return employee.Email, nil
	default:
		return "", withdrawals.NewValidationError("unsupported delivery method: %s", method)
	}
}
