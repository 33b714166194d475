package license

import "errors"

var (
	ErrPlanType      = errors.New("license: plan type does not exist")
	ErrPlanUpgrade   = errors.New("license: plan cannot be upgraded")
	ErrPlanDowngrade = errors.New("license: plan cannot be downgraded")

	ErrWebsiteLimitReached = errors.New("license: website limit reached for plan")
	ErrPlanNotValid        = errors.New("license: subscription plan not valid")
	ErrSubscriptionExists  = errors.New("license: customer already has a subscription")

	ErrInvalidCurrency = errors.New("license: invalid currency code")
)
