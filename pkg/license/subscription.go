package license

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Subscription binds one Plan to an ordered collection of websites.
// The count of enabled websites never exceeds the plan allowance unless
// the plan is unlimited. Subscription is not safe for concurrent use.
type Subscription struct {
	plan       *Plan
	customerID uuid.UUID
	websites   []*Website
}

// NewSubscription creates a subscription on the named tier with no websites.
// Returns ErrPlanType for an unknown tier.
func NewSubscription(planType string, customerID uuid.UUID) (*Subscription, error) {
	plan, err := NewPlan(planType)
	if err != nil {
		return nil, err
	}
	return &Subscription{
		plan:       plan,
		customerID: customerID,
		websites:   make([]*Website, 0),
	}, nil
}

func (s *Subscription) Plan() *Plan {
	return s.plan
}

func (s *Subscription) CustomerID() uuid.UUID {
	return s.customerID
}

// Websites returns every website, enabled or not, in insertion order.
func (s *Subscription) Websites() []*Website {
	return slices.Clone(s.websites)
}

// EnabledWebsites returns the enabled websites in insertion order.
func (s *Subscription) EnabledWebsites() []*Website {
	enabled := make([]*Website, 0, len(s.websites))
	for _, w := range s.websites {
		if w.Enabled {
			enabled = append(enabled, w)
		}
	}
	return enabled
}

// AddWebsite appends an enabled website for url.
// Returns ErrWebsiteLimitReached when the enabled count already meets a finite
// allowance. Adding a url that is already present, even disabled, is a no-op.
func (s *Subscription) AddWebsite(url string) error {
	if !s.plan.IsUnlimited() && int64(len(s.EnabledWebsites())) >= s.plan.Allowance() {
		return fmt.Errorf("%w: cannot add %q to plan %q", ErrWebsiteLimitReached, url, s.plan.Type())
	}
	if s.find(url) >= 0 {
		return nil
	}
	s.websites = append(s.websites, NewWebsite(url, s.customerID))
	return nil
}

// RemoveWebsite deletes every website matching url.
// An empty url removes the most recently added website regardless of its state.
func (s *Subscription) RemoveWebsite(url string) error {
	if len(s.websites) == 0 {
		return nil
	}
	if url == "" {
		s.websites[len(s.websites)-1] = nil
		s.websites = s.websites[:len(s.websites)-1]
		return nil
	}
	s.websites = slices.DeleteFunc(s.websites, func(w *Website) bool {
		return w.URL == url
	})
	return nil
}

// DisableWebsite disables the first website matching url. Unknown urls are ignored.
func (s *Subscription) DisableWebsite(url string) error {
	if i := s.find(url); i >= 0 {
		s.websites[i].Enabled = false
	}
	return nil
}

// UpdatePlan upgrades or downgrades the plan to target.
// A downgrade disables every enabled website past the new allowance, keeping
// the earliest added ones. Upgrades never re-enable websites.
// Returns ErrPlanNotValid if target is not a known tier.
func (s *Subscription) UpdatePlan(target string) error {
	switch ResolveTransition(s.plan.Type(), target) {
	case TransitionUpgrade:
		if err := s.plan.Upgrade(target); err != nil {
			return fmt.Errorf("%w: %w", ErrPlanNotValid, err)
		}
		return nil
	case TransitionDowngrade:
		if err := s.plan.Downgrade(target); err != nil {
			return fmt.Errorf("%w: %w", ErrPlanNotValid, err)
		}
		s.disableOverAllowance()
		return nil
	default:
		return fmt.Errorf("%w: %q cannot be updated to plan %q", ErrPlanNotValid, s, target)
	}
}

func (s *Subscription) disableOverAllowance() {
	if s.plan.IsUnlimited() {
		return
	}
	allowance := s.plan.Allowance()
	enabled := s.EnabledWebsites()
	if int64(len(enabled)) <= allowance {
		return
	}
	for _, w := range enabled[allowance:] {
		w.Enabled = false
	}
}

func (s *Subscription) find(url string) int {
	return slices.IndexFunc(s.websites, func(w *Website) bool {
		return w.URL == url
	})
}

// String renders "plan: customer id".
func (s *Subscription) String() string {
	return fmt.Sprintf("%s: %s", s.plan, s.customerID)
}
