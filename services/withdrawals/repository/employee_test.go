package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasule/wagepay/services/withdrawals"
)

func employeeRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "msisdn", "full_name", "email", "bank_account", "bank_code", "bank_name",
		"period_allocated_amount", "withdrawn_amount", "is_active", "created_at", "updated_at",
	}).AddRow(id, "256761234567", "Allan Kasule", "allan@example.com", "", "", "",
		int64(100_000), int64(25_000), true, time.Now(), time.Now())
}

func TestGetEmployeeByID_Success(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupWithdrawalRepoTest(t)
	defer cleanup()

	employeeID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs(employeeID).
		WillReturnRows(employeeRows(employeeID))

	// Execute
	employee, err := repo.GetEmployeeByID(context.Background(), employeeID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, employeeID, employee.ID)
	assert.Equal(t, "256761234567", employee.MSISDN)
	assert.Equal(t, int64(75_000), employee.Available())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupWithdrawalRepoTest(t)
	defer cleanup()

	employeeID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs(employeeID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Execute
	employee, err := repo.GetEmployeeByID(context.Background(), employeeID)

	// Assert
	assert.Nil(t, employee)
	assert.ErrorIs(t, err, withdrawals.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByMSISDN_Success(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupWithdrawalRepoTest(t)
	defer cleanup()

	employeeID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE msisdn").
		WithArgs("256761234567").
		WillReturnRows(employeeRows(employeeID))

	// Execute
	employee, err := repo.GetEmployeeByMSISDN(context.Background(), "256761234567")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, employeeID, employee.ID)
	assert.True(t, employee.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
