package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals"
)

const withdrawalColumns = `id, employee_id, amount, charges, net_amount, payment_method,
	mobile_number, mobile_provider, bank_account, bank_code, bank_name,
	status, transfer_reference, failure_reason, created_at, processed_at`

// CreateWithdrawal reserves the gross amount on the employee balance and
// inserts the withdrawal row in a single transaction. The reservation is a
// guarded update so two concurrent requests can never overdraw the balance:
// the row only changes when withdrawn_amount + amount still fits within
// period_allocated_amount.
func (r *WithdrawalRepo) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.CreatedAt = time.Now()
	w.Status = models.WithdrawalStatusPendingOTP

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reserveQuery := `
		UPDATE employees
		SET withdrawn_amount = withdrawn_amount + $1, updated_at = $2
		WHERE id = $3
		  AND is_active
		  AND withdrawn_amount + $1 <= period_allocated_amount
	`
	res, err := tx.ExecContext(ctx, reserveQuery, w.Amount, time.Now(), w.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to reserve funds: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read reservation result: %w", err)
	}
	if rows == 0 {
		// Nothing was reserved; report how much is still available
		var available int64
		err := tx.QueryRowContext(ctx,
			`SELECT period_allocated_amount - withdrawn_amount FROM employees WHERE id = $1`,
			w.EmployeeID,
		).Scan(&available)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return withdrawals.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get available balance: %w", err)
		}
		return &withdrawals.InsufficientBalanceError{Available: available}
	}

	insertQuery := `
		INSERT INTO withdrawals (id, employee_id, amount, charges, net_amount, payment_method,
			mobile_number, mobile_provider, bank_account, bank_code, bank_name,
			status, transfer_reference, failure_reason, created_at
		) VALUES (:id, :employee_id, :amount, :charges, :net_amount, :payment_method,
			:mobile_number, :mobile_provider, :bank_account, :bank_code, :bank_name,
			:status, :transfer_reference, :failure_reason, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, insertQuery, w); err != nil {
		return fmt.Errorf("failed to insert withdrawal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit withdrawal: %w", err)
	}

	return nil
}

// MarkProcessing transitions a withdrawal from pending_otp to processing
func (r *WithdrawalRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE withdrawals
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	res, err := r.db.ExecContext(ctx, query,
		models.WithdrawalStatusProcessing, id, models.WithdrawalStatusPendingOTP)
	if err != nil {
		return fmt.Errorf("failed to mark withdrawal processing: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read transition result: %w", err)
	}
	if rows == 0 {
		return withdrawals.ErrInvalidState
	}

	return nil
}

// MarkCompleted transitions a withdrawal from processing to completed and
// records the gateway transfer reference.
func (r *WithdrawalRepo) MarkCompleted(ctx context.Context, id uuid.UUID, transferRef string) error {
	query := `
		UPDATE withdrawals
		SET status = $1, transfer_reference = $2, processed_at = $3
		WHERE id = $4 AND status = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		models.WithdrawalStatusCompleted, transferRef, time.Now(), id, models.WithdrawalStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to mark withdrawal completed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read transition result: %w", err)
	}
	if rows == 0 {
		return withdrawals.ErrInvalidState
	}

	return nil
}

// MarkFailed transitions a withdrawal from processing to failed, records the
// failure reason and releases the reserved amount back to the balance, all in
// one transaction. The refund never commits without the status change.
func (r *WithdrawalRepo) MarkFailed(ctx context.Context, w *models.Withdrawal, reason string) error {
	return r.terminateWithRefund(ctx, w, models.WithdrawalStatusProcessing, models.WithdrawalStatusFailed, reason)
}

// CancelWithdrawal transitions a withdrawal from pending_otp to cancelled and
// releases the reserved amount back to the balance.
func (r *WithdrawalRepo) CancelWithdrawal(ctx context.Context, w *models.Withdrawal, reason string) error {
	return r.terminateWithRefund(ctx, w, models.WithdrawalStatusPendingOTP, models.WithdrawalStatusCancelled, reason)
}

func (r *WithdrawalRepo) terminateWithRefund(ctx context.Context, w *models.Withdrawal, from, to models.WithdrawalStatus, reason string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	statusQuery := `
		UPDATE withdrawals
		SET status = $1, failure_reason = $2, processed_at = $3
		WHERE id = $4 AND status = $5
	`
	res, err := tx.ExecContext(ctx, statusQuery, to, reason, time.Now(), w.ID, from)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read transition result: %w", err)
	}
	if rows == 0 {
		return withdrawals.ErrInvalidState
	}

	refundQuery := `
		UPDATE employees
		SET withdrawn_amount = withdrawn_amount - $1, updated_at = $2
		WHERE id = $3
	`
	if _, err := tx.ExecContext(ctx, refundQuery, w.Amount, time.Now(), w.EmployeeID); err != nil {
		return fmt.Errorf("failed to release reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status change: %w", err)
	}

	w.Status = to
	w.FailureReason = reason

	return nil
}

// GetWithdrawalForEmployee retrieves a withdrawal owned by the given employee
func (r *WithdrawalRepo) GetWithdrawalForEmployee(ctx context.Context, id, employeeID uuid.UUID) (*models.Withdrawal, error) {
	query := fmt.Sprintf(`SELECT %s FROM withdrawals WHERE id = $1 AND employee_id = $2`, withdrawalColumns)

	var w models.Withdrawal
	err := r.db.GetContext(ctx, &w, query, id, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, withdrawals.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}

	return &w, nil
}

// ListWithdrawals returns all withdrawals for an employee, newest first
func (r *WithdrawalRepo) ListWithdrawals(ctx context.Context, employeeID uuid.UUID) ([]models.Withdrawal, error) {
	query := fmt.Sprintf(`SELECT %s FROM withdrawals WHERE employee_id = $1 ORDER BY created_at DESC`, withdrawalColumns)

	var list []models.Withdrawal
	if err := r.db.SelectContext(ctx, &list, query, employeeID); err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}

	return list, nil
}
