package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"asphaltworks/internal/usecase/interfaces"

	"github.com/sony/gobreaker"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway implements the payment processor contract on Stripe
// PaymentIntents: AuthorizePayment creates a manual-capture intent (funds
// held, nothing moved), CapturePayment later captures at most the held
// amount.
//
// Outbound calls run through a circuit breaker so a degraded Stripe API
// fails fast instead of tying up request handlers.

type StripeGateway struct {
	api      *client.API
	breaker  *gobreaker.CircuitBreaker
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "stripe",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[payment][gateway] breaker %s state %s -> %s", name, from, to)
		},
	})

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{breaker: breaker, mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	api := &client.API{}
	api.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{api: api, breaker: breaker}, nil
}

func (g *StripeGateway) AuthorizePayment(ctx context.Context, amountCents int64, currency, description string, metadata map[string]string) (interfaces.PaymentAuthorization, error) {
	if g != nil && g.mockMode {
		id := mockProviderID("pi_mock")
		log.Printf("[payment][gateway] mock authorize success payment_intent=%s amount_cents=%d", id, amountCents)
		return interfaces.PaymentAuthorization{
			PaymentIntentID: id,
			ClientSecret:    id + "_secret",
			Status:          string(stripe.PaymentIntentStatusRequiresPaymentMethod),
		}, nil
	}
	if g == nil || g.api == nil {
		return interfaces.PaymentAuthorization{}, ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] authorize start amount_cents=%d currency=%s", amountCents, currency)

	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(currency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Description:   stripe.String(description),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.api.PaymentIntents.New(params)
	})
	if err != nil {
		log.Printf("[payment][gateway] authorize failed err=%v", err)
		return interfaces.PaymentAuthorization{}, err
	}

	pi := out.(*stripe.PaymentIntent)
	log.Printf("[payment][gateway] authorize success payment_intent=%s status=%s", pi.ID, pi.Status)
	return interfaces.PaymentAuthorization{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Status:          string(pi.Status),
	}, nil
}

func (g *StripeGateway) CapturePayment(ctx context.Context, paymentIntentID string, amountCents int64, metadata map[string]string) (interfaces.CaptureResult, error) {
	if g != nil && g.mockMode {
		id := mockProviderID("ch_mock")
		log.Printf("[payment][gateway] mock capture success payment_intent=%s amount_cents=%d", paymentIntentID, amountCents)
		return interfaces.CaptureResult{
			ProviderPaymentID: id,
			Status:            string(stripe.PaymentIntentStatusSucceeded),
			AmountCaptured:    amountCents,
		}, nil
	}
	if g == nil || g.api == nil {
		return interfaces.CaptureResult{}, ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] capture start payment_intent=%s amount_cents=%d", paymentIntentID, amountCents)

	params := &stripe.PaymentIntentCaptureParams{
		Params:          stripe.Params{Context: ctx},
		AmountToCapture: stripe.Int64(amountCents),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.api.PaymentIntents.Capture(paymentIntentID, params)
	})
	if err != nil {
		log.Printf("[payment][gateway] capture failed payment_intent=%s err=%v", paymentIntentID, err)
		return interfaces.CaptureResult{}, describeStripeError(err)
	}

	pi := out.(*stripe.PaymentIntent)
	log.Printf("[payment][gateway] capture success payment_intent=%s status=%s amount_received=%d", pi.ID, pi.Status, pi.AmountReceived)
	return interfaces.CaptureResult{
		ProviderPaymentID: pi.ID,
		Status:            string(pi.Status),
		AmountCaptured:    pi.AmountReceived,
	}, nil
}

// describeStripeError keeps the processor-provided detail visible to the
// caller without leaking the whole response.
func describeStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return fmt.Errorf("stripe %s (%s): %s", stripeErr.Type, stripeErr.Code, stripeErr.Msg)
	}
	return err
}

func mockProviderID(prefix string) string {
	return prefix + "_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
