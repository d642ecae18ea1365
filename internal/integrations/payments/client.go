package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

// Client клиент платёжного провайдера (Stripe Checkout)
type Client struct {
	successURL string
	cancelURL  string
	logger     Logger
}

func NewClient(apiKey, successURL, cancelURL string, logger Logger) *Client {
	stripe.Key = apiKey

	return &Client{
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// CreateCheckoutSession создаёт платёжную сессию для выбранного пакета услуг
func (c *Client) CreateCheckoutSession(ctx context.Context, pkg domain.PricingPackage) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(pkg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(pkg.Name),
					},
					UnitAmount: stripe.Int64(pkg.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.AddMetadata("package_id", pkg.ID)

	sess, err := session.New(params)
	if err != nil {
		c.logger.Error("payments: failed to create checkout session for package %s: %v", pkg.ID, err)

		return nil, fmt.Errorf("%w: CreateCheckoutSession - session.New: %v", ErrProviderUnavailable, err)
	}

	return &CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// GetSessionStatus возвращает текущий статус платёжной сессии
func (c *Client) GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	sess, err := session.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, fmt.Errorf("%w: GetSessionStatus - session.Get: %v", ErrSessionNotFound, err)
		}

		c.logger.Error("payments: failed to get checkout session %s: %v", sessionID, err)

		return nil, fmt.Errorf("%w: GetSessionStatus - session.Get: %v", ErrProviderUnavailable, err)
	}

	return &SessionStatus{
		ID:            sess.ID,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
	}, nil
}
