// Package nav is the navigation boundary of the client. Workflows request
// route changes through a Navigator instead of touching any rendering layer.
package nav

import "github.com/codementorhq/codementor-go/internal/domain/entity"

// Route names mirror the hosted application's paths.
const (
	RouteSelectRole      = "/auth/select-role"
	RouteCompleteProfile = "/auth/complete-profile"
	RouteCourses         = "/courses"
	RouteFeed            = "/feed"
	RoutePaymentSuccess  = "/payment/success"
	RoutePaymentFailure  = "/payment/failure"
)

// RouteDashboard returns the role-specific dashboard route.
func RouteDashboard(role entity.Role) string {
	return "/dashboard/" + string(role)
}

// Navigator receives route changes dispatched by workflows.
type Navigator interface {
	Go(route string)
}

// Func adapts a function to the Navigator interface.
type Func func(route string)

func (f Func) Go(route string) { f(route) }

// Recorder captures navigation for tests.
type Recorder struct {
	Routes []string
}

func (r *Recorder) Go(route string) { r.Routes = append(r.Routes, route) }

// Last returns the most recent route, or "" when nothing was navigated.
func (r *Recorder) Last() string {
	if len(r.Routes) == 0 {
		return ""
	}
	return r.Routes[len(r.Routes)-1]
}
