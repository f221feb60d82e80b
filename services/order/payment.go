package order

import (
	"fmt"

	"bizly/models"
	"bizly/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CreatePaymentIntent opens a Stripe payment intent for a pending order and
// records its ID on the order. Returns the client secret the dashboard hands
// to the payment element.
func (s *DefaultOrderService) CreatePaymentIntent(id string) (string, error) {
	order, err := s.Repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if order.Status != models.OrderPending {
		return "", InvalidTransitionError{From: order.Status, To: models.OrderPaid}
	}
	if order.TotalCents <= 0 {
		return "", fmt.Errorf("order %s has nothing to charge", id)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(order.TotalCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("order_id", order.ID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent for order %s: %w", id, err)
	}

	if err := s.Repo.SetPaymentIntent(order.ID, intent.ID); err != nil {
		return "", err
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("order_id", order.ID),
		zap.String("payment_intent", intent.ID))
	return intent.ClientSecret, nil
}
