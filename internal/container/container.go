// Package container constructs the application context: configuration,
// logger, the API client and the five state containers. Everything is
// owned by one App value passed by reference, so no package-level mutable
// state exists anywhere in the client.
package container

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/codementorhq/codementor-go/config"
	"github.com/codementorhq/codementor-go/internal/api"
	"github.com/codementorhq/codementor-go/internal/session"
	"github.com/codementorhq/codementor-go/internal/state"
	"github.com/codementorhq/codementor-go/pkg/gateway"
	"github.com/codementorhq/codementor-go/pkg/helpers"
	"github.com/codementorhq/codementor-go/pkg/nav"
	"github.com/codementorhq/codementor-go/pkg/notify"
)

// App wires shared components and state for one client session.
type App struct {
	Cfg      *config.Config
	Logger   *logrus.Logger
	Session  *session.Store
	API      *api.Client
	Gateway  gateway.Gateway
	Notifier notify.Notifier
	Nav      nav.Navigator

	Auth          *state.Auth
	Courses       *state.Courses
	Payments      *state.Payments
	Notifications *state.Notifications
	Profiles      *state.Profiles
}

// Options overrides default component construction, mainly for tests and
// for embedding the client behind a different surface.
type Options struct {
	Navigator nav.Navigator
	Notifier  notify.Notifier
	Gateway   gateway.Gateway
}

// New builds the application context. A 401 from any API call clears the
// persisted token and navigates to role selection, once per response.
func New(cfg *config.Config, opts Options) (*App, error) {
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLog(logger)
	}
	navigator := opts.Navigator
	if navigator == nil {
		navigator = nav.Func(func(route string) {
			logger.WithField("route", route).Info("navigate")
		})
	}

	sess, err := session.Open(cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	// Drop a restored token that is already past its expiry. Opaque
	// tokens pass through; the server answers those with a 401.
	if token := sess.Token(); token != "" {
		if claims, err := helpers.ReadTokenClaims(token); err == nil && claims.Expired(time.Now()) {
			_ = sess.Clear()
		}
	}

	app := &App{
		Cfg:      cfg,
		Logger:   logger,
		Session:  sess,
		Notifier: notifier,
		Nav:      navigator,

		Auth:          state.NewAuth(sess),
		Courses:       state.NewCourses(),
		Payments:      state.NewPayments(),
		Notifications: state.NewNotifications(),
		Profiles:      state.NewProfiles(),
	}

	var apiLogger *logrus.Logger
	if cfg.HTTPLogEnabled {
		apiLogger = logger
	}
	client, err := api.New(api.Config{
		BaseURL:  cfg.APIBaseURL,
		Timeout:  cfg.RequestTimeout,
		Tokens:   sess,
		Notifier: notifier,
		Logger:   apiLogger,
		OnUnauthorized: func() {
			app.Auth.Logout()
			navigator.Go(nav.RouteSelectRole)
		},
	})
	if err != nil {
		return nil, err
	}
	app.API = client

	app.Gateway = opts.Gateway
	if app.Gateway == nil {
		app.Gateway = gateway.NewLoopback(cfg.GatewayCheckoutURL, cfg.GatewayCallbackPort, logger)
	}

	return app, nil
}
