package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kasule/wagepay/internal/pkg/constants"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals"
	"github.com/kasule/wagepay/services/withdrawals/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "wagepay-test",
		},
		OTP: models.OTPConfig{
			ExpiryMinutes:  5,
			MaxAttempts:    5,
			LockoutMinutes: 15,
		},
		Withdrawal: models.WithdrawalConfig{
			Currency: "UGX",
		},
	}
}

func activeEmployee(id uuid.UUID) *models.Employee {
	return &models.Employee{
		ID:                    id,
		MSISDN:                "256761234567",
		FullName:              "Allan Kasule",
		Email:                 "allan@example.com",
		IsActive:              true,
		PeriodAllocatedAmount: 100_000,
		WithdrawnAmount:       0,
	}
}

func TestRequestWithdrawal_MobileMoney_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	employee := activeEmployee(employeeID)

	mockRepo.EXPECT().
		GetEmployeeByID(gomock.Any(), employeeID).
		Return(employee, nil)

	mockRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, w *models.Withdrawal) error {
			w.ID = uuid.New()
			w.Status = models.WithdrawalStatusPendingOTP
			w.CreatedAt = time.Now()
			return nil
		})

	mockRepo.EXPECT().
		CreateOTP(gomock.Any(), gomock.Any()).
		Return(nil)

	mockGW.EXPECT().
		SendOTP(gomock.Any(), models.DeliverySMS, employee.MSISDN, gomock.Any()).
		Return(nil)

	mockGW.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCreated, gomock.Any()).
		Return(nil)

	// Act
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        50_000,
		PaymentMethod: models.PaymentMethodMobileMoney,
		MobileNumber:  "0761234567",
	})

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, w)
	assert.Equal(t, int64(50_000), w.Amount)
	assert.Equal(t, int64(1_500), w.Charges)
	assert.Equal(t, int64(48_500), w.NetAmount)
	assert.Equal(t, "256761234567", w.MobileNumber)
	assert.Equal(t, "MTN", w.MobileProvider)
	assert.Equal(t, models.WithdrawalStatusPendingOTP, w.Status)
}

func TestRequestWithdrawal_BankTransfer_VerifiesAccount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	employee := activeEmployee(employeeID)

	mockRepo.EXPECT().
		GetEmployeeByID(gomock.Any(), employeeID).
		Return(employee, nil)

	mockGW.EXPECT().
		VerifyAccount(gomock.Any(), "0102003004005", "STB").
		Return("ALLAN KASULE", nil)

	mockRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, w *models.Withdrawal) error {
			w.ID = uuid.New()
			w.Status = models.WithdrawalStatusPendingOTP
			return nil
		})

	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendOTP(gomock.Any(), models.DeliverySMS, employee.MSISDN, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCreated, gomock.Any()).Return(nil)

	// Act
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        100_000,
		PaymentMethod: models.PaymentMethodBankTransfer,
		BankAccount:   "0102003004005",
		BankCode:      "STB",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "ALLAN KASULE", w.BankName)
	assert.Equal(t, int64(10_000), w.Charges)
	assert.Equal(t, int64(90_000), w.NetAmount)
}

func TestRequestWithdrawal_BankTransfer_FallsBackToProfileDetails(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	employee := activeEmployee(employeeID)
	employee.BankAccount = "9988776655"
	employee.BankCode = "DFCU"

	mockRepo.EXPECT().GetEmployeeByID(gomock.Any(), employeeID).Return(employee, nil)
	mockGW.EXPECT().
		VerifyAccount(gomock.Any(), "9988776655", "DFCU").
		Return("ALLAN KASULE", nil)
	mockRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendOTP(gomock.Any(), models.DeliverySMS, employee.MSISDN, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCreated, gomock.Any()).Return(nil)

	// Act
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        50_000,
		PaymentMethod: models.PaymentMethodBankTransfer,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "9988776655", w.BankAccount)
	assert.Equal(t, "DFCU", w.BankCode)
}

func TestRequestWithdrawal_InsufficientBalance(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()

	mockRepo.EXPECT().
		GetEmployeeByID(gomock.Any(), employeeID).
		Return(activeEmployee(employeeID), nil)

	mockRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), gomock.Any()).
		Return(&withdrawals.InsufficientBalanceError{Available: 30_000})

	// Act
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        50_000,
		PaymentMethod: models.PaymentMethodMobileMoney,
		MobileNumber:  "0761234567",
	})

	// Assert
	assert.Nil(t, w)
	assert.ErrorIs(t, err, withdrawals.ErrInsufficientBalance)

	var balErr *withdrawals.InsufficientBalanceError
	assert.ErrorAs(t, err, &balErr)
	assert.Equal(t, int64(30_000), balErr.Available)
}

func TestRequestWithdrawal_InvalidMobileNumber(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	mockRepo.EXPECT().GetEmployeeByID(gomock.Any(), employeeID).Return(activeEmployee(employeeID), nil)

	// Act
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        50_000,
		PaymentMethod: models.PaymentMethodMobileMoney,
		MobileNumber:  "0123456789",
	})

	// Assert
	assert.Nil(t, w)
	var vErr *withdrawals.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRequestWithdrawal_InactiveEmployee(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	employee := activeEmployee(employeeID)
	employee.IsActive = false

	mockRepo.EXPECT().GetEmployeeByID(gomock.Any(), employeeID).Return(employee, nil)

	// Act
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        50_000,
		PaymentMethod: models.PaymentMethodMobileMoney,
		MobileNumber:  "0761234567",
	})

	// Assert
	assert.Nil(t, w)
	assert.ErrorIs(t, err, withdrawals.ErrEmployeeNotFound)
}

func TestRequestWithdrawal_DispatchFailureCancelsReservation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	employee := activeEmployee(employeeID)

	mockRepo.EXPECT().GetEmployeeByID(gomock.Any(), employeeID).Return(employee, nil)
	mockRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)

	mockGW.EXPECT().
		SendOTP(gomock.Any(), models.DeliverySMS, employee.MSISDN, gomock.Any()).
		Return(errors.New("provider unreachable"))

	// The reservation must be released when the code cannot be delivered
	mockRepo.EXPECT().
		CancelWithdrawal(gomock.Any(), gomock.Any(), "verification code could not be delivered").
		DoAndReturn(func(ctx context.Context, w *models.Withdrawal, reason string) error {
			w.Status = models.WithdrawalStatusCancelled
			w.FailureReason = reason
			return nil
		})

	mockGW.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCancelled, gomock.Any()).
		Return(nil)

	// Act
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        50_000,
		PaymentMethod: models.PaymentMethodMobileMoney,
		MobileNumber:  "0761234567",
	})

	// Assert
	assert.Nil(t, w)
	assert.Error(t, err)
}

func TestVerifyWithdrawal_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()
	code := "483920"

	pending := &models.Withdrawal{
		ID:            withdrawalID,
		EmployeeID:    employeeID,
		Amount:        50_000,
		Charges:       1_500,
		NetAmount:     48_500,
		PaymentMethod: models.PaymentMethodMobileMoney,
		MobileNumber:  "256761234567",
		MobileProvider: "MTN",
		Status:        models.WithdrawalStatusPendingOTP,
	}

	mockRepo.EXPECT().
		GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).
		Return(pending, nil)

	mockRepo.EXPECT().
		IncrementOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal, gomock.Any()).
		Return(int64(1), nil)

	otpID := uuid.New()
	mockRepo.EXPECT().
		GetValidOTP(gomock.Any(), employeeID, code, models.OTPTypeWithdrawal).
		Return(&models.OTP{ID: otpID, UserID: employeeID, Code: code}, nil)

	mockRepo.EXPECT().MarkOTPUsed(gomock.Any(), otpID).Return(nil)
	mockRepo.EXPECT().ResetOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal).Return(nil)

	mockRepo.EXPECT().MarkProcessing(gomock.Any(), withdrawalID).Return(nil)

	mockGW.EXPECT().
		InitiateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
			// The gateway receives the net amount, never the gross
			assert.Equal(t, int64(48_500), req.Amount)
			assert.Equal(t, "256761234567", req.AccountNumber)
			assert.Equal(t, "MTN", req.BankCode)
			return &models.TransferResult{Success: true, Reference: "FLW-REF-001"}, nil
		})

	mockRepo.EXPECT().MarkCompleted(gomock.Any(), withdrawalID, "FLW-REF-001").Return(nil)

	mockGW.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCompleted, gomock.Any()).
		Return(nil)

	// Act
	w, err := uc.VerifyWithdrawal(context.Background(), employeeID, withdrawalID, code)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusCompleted, w.Status)
	assert.Equal(t, "FLW-REF-001", w.TransferReference)
	assert.NotNil(t, w.ProcessedAt)
}

func TestVerifyWithdrawal_GatewayFailureReleasesFunds(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()
	code := "483920"

	pending := &models.Withdrawal{
		ID:            withdrawalID,
		EmployeeID:    employeeID,
		Amount:        50_000,
		NetAmount:     48_500,
		PaymentMethod: models.PaymentMethodMobileMoney,
		Status:        models.WithdrawalStatusPendingOTP,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(pending, nil)
	mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal, gomock.Any()).Return(int64(1), nil)

	otpID := uuid.New()
	mockRepo.EXPECT().GetValidOTP(gomock.Any(), employeeID, code, models.OTPTypeWithdrawal).
		Return(&models.OTP{ID: otpID}, nil)
	mockRepo.EXPECT().MarkOTPUsed(gomock.Any(), otpID).Return(nil)
	mockRepo.EXPECT().ResetOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal).Return(nil)
	mockRepo.EXPECT().MarkProcessing(gomock.Any(), withdrawalID).Return(nil)

	mockGW.EXPECT().
		InitiateTransfer(gomock.Any(), gomock.Any()).
		Return(&models.TransferResult{Success: false, Message: "insufficient float"}, nil)

	mockRepo.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), "insufficient float").
		DoAndReturn(func(ctx context.Context, w *models.Withdrawal, reason string) error {
			w.Status = models.WithdrawalStatusFailed
			w.FailureReason = reason
			return nil
		})

	mockGW.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalFailed, gomock.Any()).
		Return(nil)

	// Act
	w, err := uc.VerifyWithdrawal(context.Background(), employeeID, withdrawalID, code)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusFailed, w.Status)
	assert.Equal(t, "insufficient float", w.FailureReason)
}

func TestVerifyWithdrawal_InvalidOTPLeavesWithdrawalPending(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()

	pending := &models.Withdrawal{
		ID:         withdrawalID,
		EmployeeID: employeeID,
		Status:     models.WithdrawalStatusPendingOTP,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(pending, nil)
	mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal, gomock.Any()).Return(int64(2), nil)
	mockRepo.EXPECT().GetValidOTP(gomock.Any(), employeeID, "000000", models.OTPTypeWithdrawal).Return(nil, nil)

	// No state transition and no transfer happen on a wrong code

	// Act
	w, err := uc.VerifyWithdrawal(context.Background(), employeeID, withdrawalID, "000000")

	// Assert
	assert.Nil(t, w)
	assert.ErrorIs(t, err, withdrawals.ErrInvalidOTP)
}

func TestVerifyWithdrawal_AttemptLimitLocksOut(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()

	pending := &models.Withdrawal{
		ID:         withdrawalID,
		EmployeeID: employeeID,
		Status:     models.WithdrawalStatusPendingOTP,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(pending, nil)
	mockRepo.EXPECT().
		IncrementOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal, gomock.Any()).
		Return(int64(6), nil)

	// Locked out before the code is even looked up

	// Act
	w, err := uc.VerifyWithdrawal(context.Background(), employeeID, withdrawalID, "483920")

	// Assert
	assert.Nil(t, w)
	assert.ErrorIs(t, err, withdrawals.ErrOTPLocked)
}

func TestVerifyWithdrawal_TerminalStateRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()

	completed := &models.Withdrawal{
		ID:         withdrawalID,
		EmployeeID: employeeID,
		Status:     models.WithdrawalStatusCompleted,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(completed, nil)

	// Act
	w, err := uc.VerifyWithdrawal(context.Background(), employeeID, withdrawalID, "483920")

	// Assert
	assert.Nil(t, w)
	assert.ErrorIs(t, err, withdrawals.ErrInvalidState)
}

func TestCancelWithdrawal_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()

	pending := &models.Withdrawal{
		ID:         withdrawalID,
		EmployeeID: employeeID,
		Amount:     50_000,
		Status:     models.WithdrawalStatusPendingOTP,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(pending, nil)
	mockRepo.EXPECT().
		CancelWithdrawal(gomock.Any(), pending, "cancelled by employee").
		DoAndReturn(func(ctx context.Context, w *models.Withdrawal, reason string) error {
			w.Status = models.WithdrawalStatusCancelled
			w.FailureReason = reason
			return nil
		})
	mockGW.EXPECT().
		PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCancelled, gomock.Any()).
		Return(nil)

	// Act
	w, err := uc.CancelWithdrawal(context.Background(), employeeID, withdrawalID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusCancelled, w.Status)
}

func TestCancelWithdrawal_AlreadyProcessing(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()

	processing := &models.Withdrawal{
		ID:         withdrawalID,
		EmployeeID: employeeID,
		Status:     models.WithdrawalStatusProcessing,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(processing, nil)
	mockRepo.EXPECT().
		CancelWithdrawal(gomock.Any(), processing, "cancelled by employee").
		Return(withdrawals.ErrInvalidState)

	// Act
	w, err := uc.CancelWithdrawal(context.Background(), employeeID, withdrawalID)

	// Assert
	assert.Nil(t, w)
	assert.ErrorIs(t, err, withdrawals.ErrInvalidState)
}

func TestResendWithdrawalOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()
	employee := activeEmployee(employeeID)

	pending := &models.Withdrawal{
		ID:         withdrawalID,
		EmployeeID: employeeID,
		Status:     models.WithdrawalStatusPendingOTP,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(pending, nil)
	mockRepo.EXPECT().GetEmployeeByID(gomock.Any(), employeeID).Return(employee, nil)
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		SendOTP(gomock.Any(), models.DeliveryWhatsApp, employee.MSISDN, gomock.Any()).
		Return(nil)

	// Act
	err := uc.ResendWithdrawalOTP(context.Background(), employeeID, withdrawalID, models.DeliveryWhatsApp)

	// Assert
	assert.NoError(t, err)
}

func TestResendWithdrawalOTP_TerminalState(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	withdrawalID := uuid.New()

	cancelled := &models.Withdrawal{
		ID:         withdrawalID,
		EmployeeID: employeeID,
		Status:     models.WithdrawalStatusCancelled,
	}

	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), withdrawalID, employeeID).Return(cancelled, nil)

	// Act
	err := uc.ResendWithdrawalOTP(context.Background(), employeeID, withdrawalID, models.DeliverySMS)

	// Assert
	assert.ErrorIs(t, err, withdrawals.ErrInvalidState)
}

func TestGetBalance_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	employee := activeEmployee(employeeID)
	employee.WithdrawnAmount = 50_000

	mockRepo.EXPECT().GetEmployeeByID(gomock.Any(), employeeID).Return(employee, nil)

	// Act
	balance, err := uc.GetBalance(context.Background(), employeeID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(100_000), balance.AllocatedAmount)
	assert.Equal(t, int64(50_000), balance.WithdrawnAmount)
	assert.Equal(t, int64(50_000), balance.Available)
	assert.Equal(t, "UGX", balance.Currency)
}

func TestListWithdrawals_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	history := []models.Withdrawal{
		{ID: uuid.New(), EmployeeID: employeeID, Status: models.WithdrawalStatusCompleted},
		{ID: uuid.New(), EmployeeID: employeeID, Status: models.WithdrawalStatusCancelled},
	}

	mockRepo.EXPECT().ListWithdrawals(gomock.Any(), employeeID).Return(history, nil)

	// Act
	list, err := uc.ListWithdrawals(context.Background(), employeeID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestWithdrawalFlow_ReserveVerifyComplete(t *testing.T) {
	// Arrange: full happy path over a 100,000 UGX allocation
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWithdrawalRepo(ctrl)
	mockGW := mocks.NewMockWithdrawalGW(ctrl)
	uc := NewWithdrawalUC(mockRepo, mockGW, testConfig())

	employeeID := uuid.New()
	employee := activeEmployee(employeeID)
	code := "271828"

	var created *models.Withdrawal

	mockRepo.EXPECT().GetEmployeeByID(gomock.Any(), employeeID).Return(employee, nil)
	mockRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, w *models.Withdrawal) error {
			w.ID = uuid.New()
			w.Status = models.WithdrawalStatusPendingOTP
			created = w
			employee.WithdrawnAmount += w.Amount
			return nil
		})
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendOTP(gomock.Any(), models.DeliverySMS, employee.MSISDN, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCreated, gomock.Any()).Return(nil)

	// Act: request
	w, err := uc.RequestWithdrawal(context.Background(), employeeID, &models.WithdrawalInput{
		Amount:        50_000,
		PaymentMethod: models.PaymentMethodMobileMoney,
		MobileNumber:  "0761234567",
	})
	assert.NoError(t, err)

	// The gross amount is reserved immediately
	assert.Equal(t, int64(50_000), employee.WithdrawnAmount)
	assert.Equal(t, int64(50_000), employee.Available())

	// Arrange: verify
	mockRepo.EXPECT().GetWithdrawalForEmployee(gomock.Any(), w.ID, employeeID).Return(created, nil)
	mockRepo.EXPECT().IncrementOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal, gomock.Any()).Return(int64(1), nil)
	otpID := uuid.New()
	mockRepo.EXPECT().GetValidOTP(gomock.Any(), employeeID, code, models.OTPTypeWithdrawal).
		Return(&models.OTP{ID: otpID}, nil)
	mockRepo.EXPECT().MarkOTPUsed(gomock.Any(), otpID).Return(nil)
	mockRepo.EXPECT().ResetOTPAttempts(gomock.Any(), employeeID, models.OTPTypeWithdrawal).Return(nil)
	mockRepo.EXPECT().MarkProcessing(gomock.Any(), w.ID).Return(nil)
	mockGW.EXPECT().
		InitiateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
			assert.Equal(t, int64(48_500), req.Amount)
			return &models.TransferResult{Success: true, Reference: "FLW-REF-777"}, nil
		})
	mockRepo.EXPECT().MarkCompleted(gomock.Any(), w.ID, "FLW-REF-777").Return(nil)
	mockGW.EXPECT().PublishWithdrawalEvent(gomock.Any(), constants.SubjectWithdrawalCompleted, gomock.Any()).Return(nil)

	// Act: verify
	done, err := uc.VerifyWithdrawal(context.Background(), employeeID, w.ID, code)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusCompleted, done.Status)
	assert.Equal(t, int64(1_500), done.Charges)
	assert.Equal(t, int64(48_500), done.NetAmount)
	// The withdrawn amount stays spent after completion
	assert.Equal(t, int64(50_000), employee.WithdrawnAmount)
}
