package entity

// Plan is a subscription billing tier.
type Plan string

const (
	PlanMonthly   Plan = "monthly"
	PlanQuarterly Plan = "quarterly"
	PlanAnnual    Plan = "annual"
)

// Valid reports whether p is one of the known plans.
func (p Plan) Valid() bool {
	return p == PlanMonthly || p == PlanQuarterly || p == PlanAnnual
}

// SubscriptionStatus reflects the server-held lifecycle of a purchase:
// pending until settled, then active until it expires or is cancelled.
type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a time-bounded purchased access grant to a course.
type Subscription struct {
	ID        string             `json:"id"`
	CourseID  string             `json:"courseId"`
	Plan      Plan               `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Amount    int                `json:"amount"`
}

// PaymentStatus is the outcome of a single checkout attempt.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

// Payment records one checkout round-trip in the session history.
type Payment struct {
	ID        string        `json:"id"`
	Amount    int           `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CourseID  string        `json:"courseId"`
	CreatedAt string        `json:"createdAt"`
}

// CheckoutOrder is returned by the subscribe endpoint and handed to the
// payment gateway.
type CheckoutOrder struct {
	OrderID string `json:"orderId"`
	Amount  int    `json:"amount"`
}
