package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/pkg/gateway"
	"github.com/codementorhq/codementor-go/pkg/nav"
)

var ErrVerificationFailed = errors.New("payment verification failed")

// Checkout drives the subscription purchase: order creation, the gateway
// handoff and server-side verification. The payment store is only touched
// after the server confirms the payment; a failed verification leaves
// payment state to be refetched later.
type Checkout struct {
	App *container.App
}

func NewCheckout(app *container.App) *Checkout {
	return &Checkout{App: app}
}

type subscribeRequest struct {
	Plan entity.Plan `json:"plan"`
}

type verifyRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

type verifyResponse struct {
	Subscription entity.Subscription `json:"subscription"`
	Payment      entity.Payment      `json:"payment"`
}

// Subscribe purchases course access on the given plan.
func (c *Checkout) Subscribe(ctx context.Context, courseID string, plan entity.Plan) error {
	if !plan.Valid() {
		return fmt.Errorf("unknown plan %q", plan)
	}

	course := c.App.Courses.Current()
	if course == nil || course.ID != courseID {
		var fetched entity.Course
		if err := c.App.API.Get(ctx, "/courses/"+courseID, &fetched); err != nil {
			return fmt.Errorf("get course: %w", err)
		}
		c.App.Courses.SetCurrent(&fetched)
		course = &fetched
	}

	var order entity.CheckoutOrder
	if err := c.App.API.Post(ctx, "/courses/"+courseID+"/subscribe", subscribeRequest{Plan: plan}, &order); err != nil {
		c.App.Notifier.Error("Failed to initialize payment")
		return fmt.Errorf("create order: %w", err)
	}

	ret, err := c.App.Gateway.Collect(ctx, gateway.Order{
		Key:         c.App.Cfg.GatewayKey,
		OrderID:     order.OrderID,
		Amount:      order.Amount,
		Currency:    "INR",
		Name:        c.App.Cfg.AppName,
		Description: "Subscription for " + course.Title,
	})
	if err != nil {
		c.App.Notifier.Error("Payment verification failed")
		c.App.Nav.Go(nav.RoutePaymentFailure)
		return fmt.Errorf("gateway: %w", err)
	}

	var verified verifyResponse
	if err := c.App.API.Post(ctx, "/payment/verify", verifyRequest{
		OrderID:   order.OrderID,
		PaymentID: ret.PaymentID,
		Signature: ret.Signature,
	}, &verified); err != nil {
		c.App.Notifier.Error("Payment verification failed")
		c.App.Nav.Go(nav.RoutePaymentFailure)
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	c.App.Payments.AddSubscription(verified.Subscription)
	c.App.Payments.AddPayment(verified.Payment)
	c.App.Notifier.Success("Subscription successful!")
	c.App.Nav.Go(nav.RoutePaymentSuccess + "?courseId=" + courseID)
	return nil
}

// History replaces the cached subscriptions from the server.
func (c *Checkout) History(ctx context.Context) error {
	var subs []entity.Subscription
	if err := c.App.API.Get(ctx, "/subscriptions", &subs); err != nil {
		return fmt.Errorf("list subscriptions: %w", err)
	}
	c.App.Payments.SetSubscriptions(subs)
	return nil
}
