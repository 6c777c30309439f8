package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/constants"
	"github.com/kasule/wagepay/internal/pkg/models"
)

// CreateOTP persists a new OTP record. Records are append-only; used and
// expired codes are kept as an audit trail.
func (r *WithdrawalRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	otp.CreatedAt = time.Now()

	query := `
		INSERT INTO otp_verifications (id, user_id, code, otp_type, delivery_method, recipient,
			expires_at, is_used, created_at
		) VALUES (:id, :user_id, :code, :otp_type, :delivery_method, :recipient,
			:expires_at, :is_used, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, otp); err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	return nil
}

// GetValidOTP returns the most recently created unused, unexpired OTP
// matching the user, code and type, or nil when none exists. Callers get no
// signal about whether the code was wrong, used or expired.
func (r *WithdrawalRepo) GetValidOTP(ctx context.Context, userID uuid.UUID, code string, otpType models.OTPType) (*models.OTP, error) {
	query := `
		SELECT id, user_id, code, otp_type, delivery_method, recipient, expires_at, is_used, created_at
		FROM otp_verifications
		WHERE user_id = $1 AND code = $2 AND otp_type = $3 AND is_used = false AND expires_at > $4
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp models.OTP
	err := r.db.GetContext(ctx, &otp, query, userID, code, otpType, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	return &otp, nil
}

// MarkOTPUsed marks an OTP as used so it can never match again
func (r *WithdrawalRepo) MarkOTPUsed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE otp_verifications
		SET is_used = true
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark OTP as used: %w", err)
	}

	return nil
}

// IncrementOTPAttempts bumps the failed-attempt counter for a user and OTP
// type. The counter expires after the lockout window so a locked user is
// unlocked automatically.
func (r *WithdrawalRepo) IncrementOTPAttempts(ctx context.Context, userID uuid.UUID, otpType models.OTPType, lockout time.Duration) (int64, error) {
	key := fmt.Sprintf(constants.KeyOTPAttempts, userID, otpType)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment OTP attempts: %w", err)
	}

	// Set the window on first failure only, so the lockout is measured
	// from the first attempt rather than sliding forward.
	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, lockout); err != nil {
			return count, fmt.Errorf("failed to set attempt window: %w", err)
		}
	}

	return count, nil
}

// ResetOTPAttempts clears the failed-attempt counter after a successful
// verification.
func (r *WithdrawalRepo) ResetOTPAttempts(ctx context.Context, userID uuid.UUID, otpType models.OTPType) error {
	key := fmt.Sprintf(constants.KeyOTPAttempts, userID, otpType)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to reset OTP attempts: %w", err)
	}

	return nil
}
