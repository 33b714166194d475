package licensing

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sitelicense/pkg/license"
)

// CustomerView is a detached copy of a customer's state. The password hash is never exposed.
type CustomerView struct {
	ID           uuid.UUID         `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Email        string            `json:"email" yaml:"email"`
	Subscription *SubscriptionView `json:"subscription,omitempty" yaml:"subscription,omitempty"`
}

type SubscriptionView struct {
	Plan      license.PlanType `json:"plan" yaml:"plan"`
	Allowance int64            `json:"allowance" yaml:"allowance"`
	Price     license.Money    `json:"price" yaml:"price"`
	RenewsAt  time.Time        `json:"renews_at" yaml:"renews_at"`
	Websites  []WebsiteView    `json:"websites" yaml:"websites"`
}

type WebsiteView struct {
	URL     string `json:"url" yaml:"url"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// EnabledCount returns how many websites count against the allowance.
func (v *SubscriptionView) EnabledCount() int {
	n := 0
	for _, w := range v.Websites {
		if w.Enabled {
			n++
		}
	}
	return n
}

func newCustomerView(c *license.Customer) CustomerView {
	view := CustomerView{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
	sub := c.Subscription
	if sub == nil {
		return view
	}

	websites := sub.Websites()
	sv := &SubscriptionView{
		Plan:      sub.Plan().Type(),
		Allowance: sub.Plan().Allowance(),
		Price:     sub.Plan().Price(),
		Websites:  make([]WebsiteView, 0, len(websites)),
	}
	if c.SubscriptionRenewal != nil {
		sv.RenewsAt = *c.SubscriptionRenewal
	}
	for _, w := range websites {
		sv.Websites = append(sv.Websites, WebsiteView{URL: w.URL, Enabled: w.Enabled})
	}
	view.Subscription = sv
	return view
}
