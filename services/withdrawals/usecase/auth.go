package usecase

import (
	"context"
	"fmt"

	jwtpkg "github.com/kasule/wagepay/internal/pkg/jwt"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/internal/utils"
	"github.com/kasule/wagepay/services/withdrawals"
)

// GenerateLoginOTP issues a login OTP for the employee with the given MSISDN
func (u *WithdrawalUC) GenerateLoginOTP(ctx context.Context, msisdn string, method models.DeliveryMethod) error {
	isValid, formattedMSISDN, err := utils.ValidateMSISDN(msisdn)
	if err != nil || !isValid {
		return withdrawals.NewValidationError("invalid mobile number format")
	}

	employee, err := u.repo.GetEmployeeByMSISDN(ctx, formattedMSISDN)
	if err != nil {
		return err
	}
	if !employee.IsActive {
		return withdrawals.ErrEmployeeNotFound
	}

	if method == "" {
		method = models.DeliverySMS
	}

	recipient, err := resolveRecipient(employee, method)
	if err != nil {
		return err
	}

	return u.issueOTP(ctx, employee.ID, models.OTPTypeLogin, method, recipient)
}

// VerifyLoginOTP verifies a login OTP and returns a signed JWT on success
func (u *WithdrawalUC) VerifyLoginOTP(ctx context.Context, msisdn, code string) (*models.AuthResponse, error) {
	isValid, formattedMSISDN, err := utils.ValidateMSISDN(msisdn)
	if err != nil || !isValid {
		return nil, withdrawals.NewValidationError("invalid mobile number format")
	}

	employee, err := u.repo.GetEmployeeByMSISDN(ctx, formattedMSISDN)
	if err != nil {
		return nil, err
	}

	if _, err := u.checkOTP(ctx, employee.ID, code, models.OTPTypeLogin); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(employee.ID, employee.MSISDN, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:      token,
		EmployeeID: employee.ID.String(),
		ExpiresAt:  expiresAt,
	}, nil
}
