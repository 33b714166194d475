// Package license implements the website licensing rules behind a customer's
// subscription: which tier a customer is on, how many websites that tier
// allows, and what happens to existing websites when the tier changes.
//
// Key concepts:
//
//   - Plan: one of the Single, Plus or Infinite tiers, with a fixed allowance and price
//   - Subscription: a plan plus the ordered list of websites registered under it
//   - Website: a registered site; disabled websites are kept but not counted
//   - Customer: holds at most one subscription, created once via Subscribe
//
// Tiers are ranked Single < Plus < Infinite. Moving to a tier of equal or
// higher rank is an upgrade; moving to a lower rank is a downgrade, which
// disables the most recently added enabled websites that no longer fit.
//
// Basic usage:
//
//	customer, err := license.NewCustomer("Jane", "jane@example.com", hash,
//	    license.WithPlan("Single"),
//	)
//	if err != nil {
//	    // Handle ErrPlanType
//	}
//
//	sub := customer.Subscription
//	_ = sub.AddWebsite("example.com")
//	if err := sub.AddWebsite("example.org"); errors.Is(err, license.ErrWebsiteLimitReached) {
//	    _ = sub.UpdatePlan("Plus")
//	}
//
// The package performs no I/O and holds no locks. Callers that share a
// Customer between goroutines must serialize access to it.
package license
