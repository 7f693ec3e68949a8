package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codementorhq/codementor-go/config"
	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/pkg/gateway"
	"github.com/codementorhq/codementor-go/pkg/nav"
	"github.com/codementorhq/codementor-go/pkg/notify"
)

// stubGateway returns a canned gateway result and records the orders it
// was asked to collect.
type stubGateway struct {
	ret    *gateway.Return
	err    error
	orders []gateway.Order
}

func (s *stubGateway) Collect(_ context.Context, order gateway.Order) (*gateway.Return, error) {
	s.orders = append(s.orders, order)
	if s.err != nil {
		return nil, s.err
	}
	return s.ret, nil
}

// testApp bundles an App wired to a fake API server with recording
// navigator and notifier.
type testApp struct {
	*container.App
	Nav     *nav.Recorder
	Notices *notify.Recorder
	Gateway *stubGateway
}

// newTestApp builds an application context whose API client talks to the
// given handler.
func newTestApp(t *testing.T, handler http.Handler) *testApp {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	recorder := &nav.Recorder{}
	notices := &notify.Recorder{}
	gw := &stubGateway{ret: &gateway.Return{PaymentID: "pay_1", Signature: "sig_1"}}

	cfg := &config.Config{
		AppName:        "codementor",
		Env:            "development",
		APIBaseURL:     srv.URL,
		RequestTimeout: 5 * time.Second,
		GatewayKey:     "rzp_test",
		SessionFile:    filepath.Join(t.TempDir(), "session.json"),
	}
	app, err := container.New(cfg, container.Options{
		Navigator: recorder,
		Notifier:  notices,
		Gateway:   gw,
	})
	require.NoError(t, err)

	return &testApp{App: app, Nav: recorder, Notices: notices, Gateway: gw}
}

// jsonHandler responds to every request with the given body.
func jsonHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

// failHandler responds to every request with the given status.
func failHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}
