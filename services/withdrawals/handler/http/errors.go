package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/kasule/wagepay/internal/utils"
	"github.com/kasule/wagepay/services/withdrawals"
	"github.com/labstack/echo/v4"
)

// mapError translates use case errors into HTTP responses. Unrecognized
// errors surface as a generic server error; the detail stays in the logs.
func mapError(c echo.Context, err error) error {
	var validationErr *withdrawals.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return utils.BadRequestResponse(c, validationErr.Message)
	case errors.Is(err, withdrawals.ErrInsufficientBalance):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, withdrawals.ErrEmployeeNotFound),
		errors.Is(err, withdrawals.ErrWithdrawalNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, withdrawals.ErrInvalidOTP):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, withdrawals.ErrOTPLocked):
		return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, withdrawals.ErrInvalidState):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Something went wrong, please try again")
	}
}

// employeeIDFromContext extracts the authenticated employee ID set by the
// JWT middleware.
func employeeIDFromContext(c echo.Context) (uuid.UUID, error) {
	raw := c.Get("user_id")
	if raw == nil {
		return uuid.Nil, fmt.Errorf("missing user identity")
	}

	id, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user identity: %w", err)
	}

	return id, nil
}
