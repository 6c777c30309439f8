package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/services/withdrawals"
	"github.com/kasule/wagepay/services/withdrawals/mocks"
)

func TestGenerateOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWithdrawalUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{"msisdn": "0761234567"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/generate", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		GenerateLoginOTP(gomock.Any(), "0761234567", models.DeliveryMethod("")).
		Return(nil)

	// Act
	err := authHandler.GenerateOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])
}

func TestGenerateOTP_EmptyMSISDN(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWithdrawalUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{"msisdn": ""}`
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/generate", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := authHandler.GenerateOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateOTP_UnknownEmployee(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWithdrawalUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{"msisdn": "0761234567"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/generate", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		GenerateLoginOTP(gomock.Any(), "0761234567", models.DeliveryMethod("")).
		Return(withdrawals.ErrEmployeeNotFound)

	// Act
	err := authHandler.GenerateOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWithdrawalUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{"msisdn": "0761234567", "otp": "483920"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/verify", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		VerifyLoginOTP(gomock.Any(), "0761234567", "483920").
		Return(&models.AuthResponse{
			Token:      "signed.jwt.token",
			EmployeeID: "7e6c29f1-67b9-4f8b-a1cc-86f0e93f8d30",
			ExpiresAt:  1700000000,
		}, nil)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWithdrawalUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{"msisdn": "0761234567", "otp": "000000"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/verify", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		VerifyLoginOTP(gomock.Any(), "0761234567", "000000").
		Return(nil, withdrawals.ErrInvalidOTP)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyOTP_Locked(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWithdrawalUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{"msisdn": "0761234567", "otp": "483920"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/verify", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		VerifyLoginOTP(gomock.Any(), "0761234567", "483920").
		Return(nil, withdrawals.ErrOTPLocked)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWithdrawalUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{"msisdn": "0761234567"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/verify", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
