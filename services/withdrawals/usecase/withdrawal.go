package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/constants"
	"github.com/kasule/wagepay/internal/pkg/logger"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/internal/utils"
	"github.com/kasule/wagepay/services/withdrawals"
)

// RequestWithdrawal validates a withdrawal request, reserves the gross amount
// against the employee balance and issues a withdrawal OTP. The reservation
// is durable before any external call is made, so a concurrent request can
// never spend the same balance twice.
func (u *WithdrawalUC) RequestWithdrawal(ctx context.Context, employeeID uuid.UUID, input *models.WithdrawalInput) (*models.Withdrawal, error) {
	employee, err := u.repo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, withdrawals.ErrEmployeeNotFound
	}

	fee, net, err := validateAmount(input.Amount, input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	w := &models.Withdrawal{
		EmployeeID:    employee.ID,
		Amount:        input.Amount,
		Charges:       fee,
		NetAmount:     net,
		PaymentMethod: input.PaymentMethod,
	}

	switch input.PaymentMethod {
	case models.PaymentMethodMobileMoney:
		isValid, formatted, err := utils.ValidateMSISDN(input.MobileNumber)
		if err != nil || !isValid {
			return nil, withdrawals.NewValidationError("invalid mobile money number")
		}
		w.MobileNumber = formatted
		w.MobileProvider = input.MobileProvider
		if w.MobileProvider == "" {
			w.MobileProvider = utils.DetectProvider(formatted)
		}
	case models.PaymentMethodBankTransfer:
		// Fall back to the bank details on the employee profile
		w.BankAccount = input.BankAccount
		w.BankCode = input.BankCode
		if w.BankAccount == "" {
			w.BankAccount = employee.BankAccount
			w.BankCode = employee.BankCode
		}
		if w.BankAccount == "" || w.BankCode == "" {
			return nil, withdrawals.NewValidationError("bank account and bank code are required")
		}

		// Resolve the beneficiary name before any funds move
		accountName, err := u.gw.VerifyAccount(ctx, w.BankAccount, w.BankCode)
		if err != nil {
			return nil, withdrawals.NewValidationError("could not verify bank account: %v", err)
		}
		w.BankName = accountName
	default:
		return nil, withdrawals.NewValidationError("unsupported payment method: %s", input.PaymentMethod)
	}

	method := input.DeliveryMethod
	if method == "" {
		method = models.DeliverySMS
	}
	recipient, err := resolveRecipient(employee, method)
	if err != nil {
		return nil, err
	}

	// Reserve funds and create the request atomically
	if err := u.repo.CreateWithdrawal(ctx, w); err != nil {
		return nil, err
	}

	// The reservation is durable; from here any failure must reconcile
	if err := u.issueOTP(ctx, employee.ID, models.OTPTypeWithdrawal, method, recipient); err != nil {
		logger.Error("OTP dispatch failed after reservation, cancelling withdrawal",
			logger.ErrorField(err),
			logger.String("withdrawal_id", w.ID.String()))

		if cancelErr := u.repo.CancelWithdrawal(ctx, w, "verification code could not be delivered"); cancelErr != nil {
			return nil, fmt.Errorf("failed to cancel withdrawal after dispatch error: %w", cancelErr)
		}
		u.publishEvent(ctx, constants.SubjectWithdrawalCancelled, w)

		return nil, fmt.Errorf("failed to send verification code: %w", err)
	}

	u.publishEvent(ctx, constants.SubjectWithdrawalCreated, w)

	logger.Info("Withdrawal requested",
		logger.String("withdrawal_id", w.ID.String()),
		logger.String("employee_id", employee.ID.String()),
		logger.Int64("amount", w.Amount),
		logger.Int64("charges", w.Charges),
		logger.String("payment_method", string(w.PaymentMethod)))

	return w, nil
}

// VerifyWithdrawal checks the submitted OTP and, on a match, initiates the
// disbursement. The returned withdrawal carries the terminal state: completed
// on gateway success, failed (with the reserved funds released) otherwise. A
// wrong code leaves the withdrawal pending so the employee can retry until
// the attempt limit locks them out.
func (u *WithdrawalUC) VerifyWithdrawal(ctx context.Context, employeeID, withdrawalID uuid.UUID, code string) (*models.Withdrawal, error) {
	w, err := u.repo.GetWithdrawalForEmployee(ctx, withdrawalID, employeeID)
	if err != nil {
		return nil, err
	}
	if w.Status != models.WithdrawalStatusPendingOTP {
		return nil, withdrawals.ErrInvalidState
	}

	if _, err := u.checkOTP(ctx, employeeID, code, models.OTPTypeWithdrawal); err != nil {
		return nil, err
	}

	if err := u.repo.MarkProcessing(ctx, w.ID); err != nil {
		return nil, err
	}
	w.Status = models.WithdrawalStatusProcessing

	result, err := u.gw.InitiateTransfer(ctx, u.transferRequest(w))
	if err != nil || !result.Success {
		reason := "transfer could not be completed"
		if err != nil {
			reason = err.Error()
		} else if result.Message != "" {
			reason = result.Message
		}

		logger.Error("Disbursement failed",
			logger.String("withdrawal_id", w.ID.String()),
			logger.String("reason", reason))

		// Failed disbursements release the reservation; funds are never
		// left deducted without a completed transfer.
		if failErr := u.repo.MarkFailed(ctx, w, reason); failErr != nil {
			return nil, failErr
		}
		u.publishEvent(ctx, constants.SubjectWithdrawalFailed, w)

		return w, nil
	}

	if err := u.repo.MarkCompleted(ctx, w.ID, result.Reference); err != nil {
		return nil, err
	}
	w.Status = models.WithdrawalStatusCompleted
	w.TransferReference = result.Reference
	now := time.Now()
	w.ProcessedAt = &now

	u.publishEvent(ctx, constants.SubjectWithdrawalCompleted, w)

	logger.Info("Withdrawal completed",
		logger.String("withdrawal_id", w.ID.String()),
		logger.Int64("net_amount", w.NetAmount),
		logger.String("transfer_reference", w.TransferReference))

	return w, nil
}

// ResendWithdrawalOTP issues a fresh OTP for a pending withdrawal. Earlier
// still-valid codes remain usable.
func (u *WithdrawalUC) ResendWithdrawalOTP(ctx context.Context, employeeID, withdrawalID uuid.UUID, method models.DeliveryMethod) error {
	w, err := u.repo.GetWithdrawalForEmployee(ctx, withdrawalID, employeeID)
	if err != nil {
		return err
	}
	if w.Status != models.WithdrawalStatusPendingOTP {
		return withdrawals.ErrInvalidState
	}

	employee, err := u.repo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}

	if method == "" {
		method = models.DeliverySMS
	}
	recipient, err := resolveRecipient(employee, method)
	if err != nil {
		return err
	}

	return u.issueOTP(ctx, employee.ID, models.OTPTypeWithdrawal, method, recipient)
}

// CancelWithdrawal abandons a pending withdrawal and releases the reserved
// funds back to the employee balance.
func (u *WithdrawalUC) CancelWithdrawal(ctx context.Context, employeeID, withdrawalID uuid.UUID) (*models.Withdrawal, error) {
	w, err := u.repo.GetWithdrawalForEmployee(ctx, withdrawalID, employeeID)
	if err != nil {
		return nil, err
	}

	if err := u.repo.CancelWithdrawal(ctx, w, "cancelled by employee"); err != nil {
		return nil, err
	}
	u.publishEvent(ctx, constants.SubjectWithdrawalCancelled, w)

	logger.Info("Withdrawal cancelled",
		logger.String("withdrawal_id", w.ID.String()),
		logger.Int64("amount", w.Amount))

	return w, nil
}

// GetWithdrawal returns a single withdrawal owned by the employee
func (u *WithdrawalUC) GetWithdrawal(ctx context.Context, employeeID, withdrawalID uuid.UUID) (*models.Withdrawal, error) {
	return u.repo.GetWithdrawalForEmployee(ctx, withdrawalID, employeeID)
}

// ListWithdrawals returns the employee's withdrawal history, newest first
func (u *WithdrawalUC) ListWithdrawals(ctx context.Context, employeeID uuid.UUID) ([]models.Withdrawal, error) {
	return u.repo.ListWithdrawals(ctx, employeeID)
}

// GetBalance returns the employee's current period balance
func (u *WithdrawalUC) GetBalance(ctx context.Context, employeeID uuid.UUID) (*models.Balance, error) {
	employee, err := u.repo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &models.Balance{
		EmployeeID:      employee.ID,
		AllocatedAmount: employee.PeriodAllocatedAmount,
		WithdrawnAmount: employee.WithdrawnAmount,
		Available:       employee.Available(),
		Currency:        u.cfg.Withdrawal.Currency,
	}, nil
}

// transferRequest builds the gateway instruction for a withdrawal
func (u *WithdrawalUC) transferRequest(w *models.Withdrawal) *models.TransferRequest {
	req := &models.TransferRequest{
		Amount:        w.NetAmount,
		Currency:      u.cfg.Withdrawal.Currency,
		PaymentMethod: w.PaymentMethod,
		Reference:     fmt.Sprintf("WP-%s", w.ID),
		Narration:     "Salary withdrawal",
	}

	if w.PaymentMethod == models.PaymentMethodMobileMoney {
		req.AccountNumber = w.MobileNumber
		req.BankCode = w.MobileProvider
	} else {
		req.AccountNumber = w.BankAccount
		req.BankCode = w.BankCode
	}

	return req
}

// publishEvent publishes a lifecycle event; failures are logged, never fatal
func (u *WithdrawalUC) publishEvent(ctx context.Context, subject string, w *models.Withdrawal) {
	event := &models.WithdrawalEvent{
		WithdrawalID:  w.ID,
		EmployeeID:    w.EmployeeID,
		Amount:        w.Amount,
		NetAmount:     w.NetAmount,
		PaymentMethod: w.PaymentMethod,
		Status:        w.Status,
		Reason:        w.FailureReason,
		Timestamp:     time.Now(),
	}

	if err := u.gw.PublishWithdrawalEvent(ctx, subject, event); err != nil {
		logger.Warn("Failed to publish withdrawal event",
			logger.ErrorField(err),
			logger.String("subject", subject),
			logger.String("withdrawal_id", w.ID.String()))
	}
}
