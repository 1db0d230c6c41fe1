package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"

	"github.com/oportuna/oportuna-api/internal/config"
)

var ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

// StripeProvider implements PaymentProvider over Stripe Checkout.
type StripeProvider struct {
	conf *config.StripeConfig
}

func NewStripeProvider(conf *config.StripeConfig) *StripeProvider {
	stripe.Key = conf.SecretKey

	return &StripeProvider{
		conf: conf,
	}
}

func (p *StripeProvider) CreateCheckoutSession(amount decimal.Decimal, currency, description, customerEmail string) (string, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return "", ErrInvalidPaymentAmount
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(customerEmail),
		SuccessURL:    stripe.String(p.conf.SuccessURL),
		CancelURL:     stripe.String(p.conf.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amount.Mul(decimal.NewFromInt(100)).IntPart()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	checkout, err := session.New(params)
	if err != nil {
		return "", err
	}

	return checkout.ID, nil
}
