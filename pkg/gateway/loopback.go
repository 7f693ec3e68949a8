package gateway

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Loopback collects a payment by printing the hosted checkout URL and
// running a one-shot local HTTP listener the provider redirects back to,
// the same handoff a command-line OAuth login uses.
type Loopback struct {
	CheckoutBase string
	Port         string
	Logger       *logrus.Logger
}

// NewLoopback creates a loopback gateway listening on the given port.
func NewLoopback(checkoutBase, port string, logger *logrus.Logger) *Loopback {
	return &Loopback{CheckoutBase: checkoutBase, Port: port, Logger: logger}
}

// Collect serves the return endpoint, announces the checkout URL and
// blocks until the provider redirects back or ctx is done.
func (l *Loopback) Collect(ctx context.Context, order Order) (*Return, error) {
	returns := make(chan Return, 1)
	declined := make(chan struct{}, 1)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))
	r.GET("/return", func(c *gin.Context) {
		paymentID := c.Query("razorpay_payment_id")
		signature := c.Query("razorpay_signature")
		if paymentID == "" || signature == "" {
			select {
			case declined <- struct{}{}:
			default:
			}
			c.String(http.StatusBadRequest, "Payment was not completed. You can close this window.")
			return
		}
		select {
		case returns <- Return{PaymentID: paymentID, Signature: signature}:
		default:
		}
		c.String(http.StatusOK, "Payment received. You can close this window and return to the app.")
	})

	addr := net.JoinHostPort("127.0.0.1", l.Port)
	srv := &http.Server{Addr: addr, Handler: r}
	errs := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	callback := "http://" + addr + "/return"
	checkoutURL := CheckoutURL(l.CheckoutBase, order, callback)
	if l.Logger != nil {
		l.Logger.WithFields(logrus.Fields{
			"order_id": order.OrderID,
			"amount":   order.Amount,
		}).Info("complete the payment in your browser: " + checkoutURL)
	}

	select {
	case ret := <-returns:
		return &ret, nil
	case <-declined:
		return nil, ErrDeclined
	case err := <-errs:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
