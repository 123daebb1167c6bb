package interfaces

import "context"

// PaymentAuthorization is the processor-side hold created at order placement.
type PaymentAuthorization struct {
	PaymentIntentID string
	ClientSecret    string
	Status          string
}

// CaptureResult is the processor's answer to a capture call.
type CaptureResult struct {
	ProviderPaymentID string
	Status            string
	AmountCaptured    int64
}

// IPaymentGateway abstracts the external payment processor (Stripe).
//
// The processor must support authorize-now / capture-later semantics:
// AuthorizePayment places a manual-capture hold, CapturePayment later
// captures at most the held amount. All amounts are integer minor units.
// Metadata is free-form audit linkage attached to the processor objects.
type IPaymentGateway interface {
	AuthorizePayment(ctx context.Context, amountCents int64, currency, description string, metadata map[string]string) (PaymentAuthorization, error)
	CapturePayment(ctx context.Context, paymentIntentID string, amountCents int64, metadata map[string]string) (CaptureResult, error)
}
