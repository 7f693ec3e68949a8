package state

import (
	"sync"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// PaymentsState caches subscriptions and the payment history for the
// session. The per-course subscription lookup is derived on read, never
// stored, so it cannot diverge from the list.
type PaymentsState struct {
	Subscriptions []entity.Subscription
	History       []entity.Payment // newest first
}

// ReduceSetSubscriptions replaces the subscriptions list.
func ReduceSetSubscriptions(s PaymentsState, subs []entity.Subscription) PaymentsState {
	s.Subscriptions = subs
	return s
}

// ReduceAddSubscription appends a subscription recorded after checkout.
func ReduceAddSubscription(s PaymentsState, sub entity.Subscription) PaymentsState {
	s.Subscriptions = append(append([]entity.Subscription{}, s.Subscriptions...), sub)
	return s
}

// ReduceAddPayment prepends a payment, keeping the history newest-first.
func ReduceAddPayment(s PaymentsState, p entity.Payment) PaymentsState {
	s.History = append([]entity.Payment{p}, s.History...)
	return s
}

// ReduceSubscriptionStatus rewrites the status of every subscription for
// the given course.
func ReduceSubscriptionStatus(s PaymentsState, courseID string, status entity.SubscriptionStatus) PaymentsState {
	updated := make([]entity.Subscription, len(s.Subscriptions))
	copy(updated, s.Subscriptions)
	for i := range updated {
		if updated[i].CourseID == courseID {
			updated[i].Status = status
		}
	}
	s.Subscriptions = updated
	return s
}

// Payments owns the payment state.
type Payments struct {
	mu    sync.Mutex
	state PaymentsState
}

func NewPayments() *Payments { return &Payments{} }

// State returns a snapshot of the payment state.
func (p *Payments) State() PaymentsState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// StatusFor returns the subscription covering courseID. Derived from the
// list on every call.
func (p *Payments) StatusFor(courseID string) (entity.Subscription, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, sub := range p.state.Subscriptions {
		if sub.CourseID == courseID {
			return sub, true
		}
	}
	return entity.Subscription{}, false
}

// SetSubscriptions replaces the subscriptions list.
func (p *Payments) SetSubscriptions(subs []entity.Subscription) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceSetSubscriptions(p.state, subs)
}

// AddSubscription records a subscription after a verified checkout.
func (p *Payments) AddSubscription(sub entity.Subscription) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceAddSubscription(p.state, sub)
}

// AddPayment prepends a payment to the history.
func (p *Payments) AddPayment(payment entity.Payment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceAddPayment(p.state, payment)
}

// UpdateSubscriptionStatus rewrites the status for one course.
func (p *Payments) UpdateSubscriptionStatus(courseID string, status entity.SubscriptionStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceSubscriptionStatus(p.state, courseID, status)
}
