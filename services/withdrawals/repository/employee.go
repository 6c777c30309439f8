package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals"
)

const employeeColumns = `id, msisdn, full_name, email, bank_account, bank_code, bank_name,
	period_allocated_amount, withdrawn_amount, is_active, created_at, updated_at`

// GetEmployeeByID retrieves an employee by ID
func (r *WithdrawalRepo) GetEmployeeByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	var employee models.Employee
	err := r.db.GetContext(ctx, &employee, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, withdrawals.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &employee, nil
}

// GetEmployeeByMSISDN retrieves an employee by mobile number
func (r *WithdrawalRepo) GetEmployeeByMSISDN(ctx context.Context, msisdn string) (*models.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE msisdn = $1`, employeeColumns)

	var employee models.Employee
	err := r.db.GetContext(ctx, &employee, query, msisdn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, withdrawals.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &employee, nil
}
