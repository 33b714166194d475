package license

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RenewalPeriod is how far ahead of the subscribe time the renewal date is set.
const RenewalPeriod = 365 * 24 * time.Hour

// Customer owns at most one Subscription.
// Name, Email and Password are opaque and never validated here.
type Customer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string

	Subscription        *Subscription
	SubscriptionRenewal *time.Time

	now func() time.Time
}

// CustomerOption configures a Customer at construction time.
type CustomerOption func(*customerOptions)

type customerOptions struct {
	id       uuid.UUID
	planType *string
	now      func() time.Time
}

// WithPlan subscribes the customer to planType as part of construction.
func WithPlan(planType string) CustomerOption {
	return func(o *customerOptions) {
		o.planType = &planType
	}
}

// WithID sets the customer identifier. Nil UUIDs are ignored.
func WithID(id uuid.UUID) CustomerOption {
	return func(o *customerOptions) {
		if id != uuid.Nil {
			o.id = id
		}
	}
}

// WithClock overrides the time source used for the renewal date.
func WithClock(now func() time.Time) CustomerOption {
	return func(o *customerOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// NewCustomer creates a customer with no subscription unless WithPlan is given,
// in which case subscription errors are returned.
func NewCustomer(name, email, password string, opts ...CustomerOption) (*Customer, error) {
	o := &customerOptions{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	c := &Customer{
		ID:       o.id,
		Name:     name,
		Email:    email,
		Password: password,
		now:      o.now,
	}
	if o.planType != nil {
		if err := c.Subscribe(*o.planType); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Subscribe creates the customer's subscription and sets the renewal date one
// year ahead. Returns ErrSubscriptionExists if a subscription is already set.
func (c *Customer) Subscribe(planType string) error {
	if c.Subscription != nil {
		return fmt.Errorf("%w: %s", ErrSubscriptionExists, c)
	}

	sub, err := NewSubscription(planType, c.ID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if c.now != nil {
		now = c.now()
	}
	renewal := now.Add(RenewalPeriod)

	c.Subscription = sub
	c.SubscriptionRenewal = &renewal
	return nil
}

func (c *Customer) HasSubscription() bool {
	return c.Subscription != nil
}

// String renders "name <email>".
func (c *Customer) String() string {
	return fmt.Sprintf("%s <%s>", c.Name, c.Email)
}
