// Package gateway hands a checkout order to the external payment provider
// and waits for the browser to come back with a payment id and signature.
// The provider page itself is third-party; this package only brokers the
// round trip.
package gateway

import (
	"context"
	"errors"
	"net/url"
	"strconv"
)

// Order is what the provider needs to collect a payment. OrderID comes
// from the subscribe endpoint; the server verifies the returned signature.
type Order struct {
	Key         string
	OrderID     string
	Amount      int
	Currency    string
	Name        string
	Description string
}

// Return carries the provider's proof of payment back to the client.
type Return struct {
	PaymentID string
	Signature string
}

// ErrDeclined is returned when the provider reports a failed or abandoned
// payment instead of a proof.
var ErrDeclined = errors.New("payment declined by gateway")

// Gateway collects one payment for an order.
type Gateway interface {
	Collect(ctx context.Context, order Order) (*Return, error)
}

// CheckoutURL builds the hosted provider page URL for an order.
func CheckoutURL(base string, order Order, callback string) string {
	q := url.Values{}
	q.Set("key_id", order.Key)
	q.Set("order_id", order.OrderID)
	q.Set("amount", strconv.Itoa(order.Amount))
	q.Set("currency", order.Currency)
	q.Set("name", order.Name)
	q.Set("description", order.Description)
	q.Set("callback_url", callback)
	return base + "?" + q.Encode()
}
