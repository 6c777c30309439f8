package gateway

import (
	"context"

	"github.com/kasule/wagepay/internal/pkg/circuitbreaker"
	"github.com/kasule/wagepay/internal/pkg/models"
	natspkg "github.com/kasule/wagepay/internal/pkg/nats"
	"github.com/kasule/wagepay/internal/pkg/retry"
	gatewayHTTP "github.com/kasule/wagepay/services/withdrawals/gateway/http"
	gatewayNATS "github.com/kasule/wagepay/services/withdrawals/gateway/nats"
)

// WithdrawalGW aggregates the payment, notification and messaging gateways
type WithdrawalGW struct {
	flutterwave *gatewayHTTP.FlutterwaveClient
	infobip     *gatewayHTTP.InfobipClient
	events      *gatewayNATS.EventPublisher
	breaker     *circuitbreaker.CircuitBreaker
	retrier     *retry.Retrier
}

// NewWithdrawalGW creates a new withdrawal gateway instance
func NewWithdrawalGW(cfg *models.Config, natsClient *natspkg.Client) *WithdrawalGW {
	return &WithdrawalGW{
		flutterwave: gatewayHTTP.NewFlutterwaveClient(cfg.Flutterwave),
		infobip:     gatewayHTTP.NewInfobipClient(cfg.Infobip),
		events:      gatewayNATS.NewEventPublisher(natsClient),
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig("flutterwave")),
		retrier:     retry.New(retry.DefaultConfig()),
	}
}

// VerifyAccount resolves a bank account to its registered name
func (g *WithdrawalGW) VerifyAccount(ctx context.Context, accountNumber, bankCode string) (string, error) {
	var name string
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var verifyErr error
		name, verifyErr = g.flutterwave.VerifyAccount(ctx, accountNumber, bankCode)
		return verifyErr
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// InitiateTransfer asks the payment gateway to disburse funds.
// Transfers go through the circuit breaker but are never retried,
// a retry after an ambiguous failure could disburse twice.
func (g *WithdrawalGW) InitiateTransfer(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
	var result *models.TransferResult
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var transferErr error
		result, transferErr = g.flutterwave.InitiateTransfer(ctx, req)
		return transferErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SendOTP dispatches a one-time code over the requested channel
func (g *WithdrawalGW) SendOTP(ctx context.Context, method models.DeliveryMethod, recipient, code string) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		switch method {
		case models.DeliveryWhatsApp:
			return g.infobip.SendWhatsApp(ctx, recipient, code)
		case models.DeliveryEmail:
			return g.infobip.SendEmail(ctx, recipient, "Your WagePay verification code",
				"Your WagePay verification code is "+code)
		default:
			return g.infobip.SendSMS(ctx, recipient, "Your WagePay verification code is "+code)
		}
	})
}

// PublishWithdrawalEvent publishes a withdrawal lifecycle event
func (g *WithdrawalGW) PublishWithdrawalEvent(_ context.Context, subject string, event *models.WithdrawalEvent) error {
	return g.events.PublishWithdrawalEvent(subject, event)
}
