package http

import (
	"net/http"

	"github.com/kasule/wagepay/internal/pkg/logger"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/internal/utils"
	"github.com/kasule/wagepay/services/withdrawals"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles employee login via OTP
type AuthHandler struct {
	withdrawalUC withdrawals.WithdrawalUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(withdrawalUC withdrawals.WithdrawalUC) *AuthHandler {
	return &AuthHandler{
		withdrawalUC: withdrawalUC,
	}
}

// GenerateOTP handles login OTP requests
func (h *AuthHandler) GenerateOTP(c echo.Context) error {
	var request models.LoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.MSISDN == "" {
		return utils.BadRequestResponse(c, "Mobile number is required")
	}

	if err := h.withdrawalUC.GenerateLoginOTP(c.Request().Context(), request.MSISDN, request.DeliveryMethod); err != nil {
		logger.Warn("Login OTP generation failed",
			logger.ErrorField(err),
			logger.String("msisdn", request.MSISDN))
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles login OTP verification and issues a JWT
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.VerifyLoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.MSISDN == "" || request.OTP == "" {
		return utils.BadRequestResponse(c, "Mobile number and OTP are required")
	}

	response, err := h.withdrawalUC.VerifyLoginOTP(c.Request().Context(), request.MSISDN, request.OTP)
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", response)
}
