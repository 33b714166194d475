package license

import "fmt"

// Plan is a subscription tier held by exactly one Subscription.
// Upgrades and downgrades mutate the plan in place.
type Plan struct {
	planType PlanType
}

// NewPlan returns a plan for the named tier.
// Returns ErrPlanType if the name is not one of Single, Plus or Infinite.
func NewPlan(planType string) (*Plan, error) {
	pt, err := ParsePlanType(planType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, planType)
	}
	return &Plan{planType: pt}, nil
}

func (p *Plan) Type() PlanType {
	return p.planType
}

// Allowance returns the maximum number of enabled websites, or Unlimited.
func (p *Plan) Allowance() int64 {
	return tiers[p.planType].allowance
}

func (p *Plan) Price() Money {
	return tiers[p.planType].price
}

// IsUnlimited reports whether the plan places no cap on enabled websites.
func (p *Plan) IsUnlimited() bool {
	return p.Allowance() == Unlimited
}

// Upgrade moves the plan to a tier of equal or higher rank.
// Returns ErrPlanUpgrade and leaves the plan untouched otherwise.
func (p *Plan) Upgrade(target string) error {
	pt, err := ParsePlanType(target)
	if err != nil || pt < p.planType {
		return fmt.Errorf("%w: %q cannot be upgraded to %q", ErrPlanUpgrade, p.planType, target)
	}
	p.planType = pt
	return nil
}

// Downgrade moves the plan to a tier of equal or lower rank.
// Returns ErrPlanDowngrade and leaves the plan untouched otherwise.
func (p *Plan) Downgrade(target string) error {
	pt, err := ParsePlanType(target)
	if err != nil || pt > p.planType {
		return fmt.Errorf("%w: %q cannot be downgraded to %q", ErrPlanDowngrade, p.planType, target)
	}
	p.planType = pt
	return nil
}

// String renders "Type (price): allowance", e.g. "Plus (99.00 USD): 3".
func (p *Plan) String() string {
	return fmt.Sprintf("%s (%s): %d", p.planType, p.Price(), p.Allowance())
}
