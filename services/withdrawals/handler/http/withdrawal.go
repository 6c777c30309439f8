package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/pkg/logger"
	"github.com/kasule/wagepay/internal/pkg/models"
	"github.com/kasule/wagepay/internal/utils"
	"github.com/kasule/wagepay/services/withdrawals"
	"github.com/labstack/echo/v4"
)

// WithdrawalHandler handles HTTP requests for the withdrawal flow
type WithdrawalHandler struct {
	withdrawalUC withdrawals.WithdrawalUC
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(withdrawalUC withdrawals.WithdrawalUC) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUC: withdrawalUC,
	}
}

// CreateWithdrawal handles withdrawal requests
func (h *WithdrawalHandler) CreateWithdrawal(c echo.Context) error {
	employeeID, err := employeeIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.WithdrawalInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	w, err := h.withdrawalUC.RequestWithdrawal(c.Request().Context(), employeeID, &input)
	if err != nil {
		logger.Warn("Withdrawal request rejected",
			logger.ErrorField(err),
			logger.String("employee_id", employeeID.String()))
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Withdrawal requested, verification code sent", w)
}

// VerifyWithdrawal handles OTP submission for a pending withdrawal
func (h *WithdrawalHandler) VerifyWithdrawal(c echo.Context) error {
	employeeID, err := employeeIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid withdrawal ID")
	}

	var request models.VerifyWithdrawalRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.OTP == "" {
		return utils.BadRequestResponse(c, "OTP is required")
	}

	w, err := h.withdrawalUC.VerifyWithdrawal(c.Request().Context(), employeeID, withdrawalID, request.OTP)
	if err != nil {
		return mapError(c, err)
	}

	// The transfer itself may have failed; the reservation is already
	// released and the provider's reason recorded.
	if w.Status == models.WithdrawalStatusFailed {
		return utils.BadGatewayResponse(c, "Withdrawal failed: "+w.FailureReason)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal completed", w)
}

// ResendOTP re-issues the verification code for a pending withdrawal
func (h *WithdrawalHandler) ResendOTP(c echo.Context) error {
	employeeID, err := employeeIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid withdrawal ID")
	}

	var request struct {
		DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	}
	_ = c.Bind(&request)

	if err := h.withdrawalUC.ResendWithdrawalOTP(c.Request().Context(), employeeID, withdrawalID, request.DeliveryMethod); err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// CancelWithdrawal abandons a pending withdrawal and refunds the reservation
func (h *WithdrawalHandler) CancelWithdrawal(c echo.Context) error {
	employeeID, err := employeeIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid withdrawal ID")
	}

	w, err := h.withdrawalUC.CancelWithdrawal(c.Request().Context(), employeeID, withdrawalID)
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal cancelled, funds refunded", w)
}

// GetWithdrawal returns a single withdrawal
func (h *WithdrawalHandler) GetWithdrawal(c echo.Context) error {
	employeeID, err := employeeIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid withdrawal ID")
	}

	w, err := h.withdrawalUC.GetWithdrawal(c.Request().Context(), employeeID, withdrawalID)
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal retrieved successfully", w)
}

// ListWithdrawals returns the employee's withdrawal history
func (h *WithdrawalHandler) ListWithdrawals(c echo.Context) error {
	employeeID, err := employeeIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.withdrawalUC.ListWithdrawals(c.Request().Context(), employeeID)
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawals retrieved successfully", list)
}

// GetBalance returns the employee's current period balance
func (h *WithdrawalHandler) GetBalance(c echo.Context) error {
	employeeID, err := employeeIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	balance, err := h.withdrawalUC.GetBalance(c.Request().Context(), employeeID)
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved successfully", balance)
}
