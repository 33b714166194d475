package licensing

import (
	"context"
	"errors"

	"github.com/dmitrymomot/sitelicense/pkg/license"
)

var (
	ErrCustomerNotFound = errors.New("licensing: customer not found")
	ErrEmailTaken       = errors.New("licensing: email already registered")
	ErrNoSubscription   = errors.New("licensing: customer has no subscription")
	ErrInvalidInput     = errors.New("licensing: invalid input")
	ErrPasswordHashing  = errors.New("licensing: failed to hash password")

	ErrInvalidScenario = errors.New("licensing: invalid scenario")
	ErrUnknownAction   = errors.New("licensing: unknown scenario action")
	ErrStepFailed      = errors.New("licensing: scenario step failed")
)

// Stable error codes for transport layers.
const (
	CodePlanTypeInvalid       = "plan_type_invalid"
	CodePlanUpgradeRejected   = "plan_upgrade_rejected"
	CodePlanDowngradeRejected = "plan_downgrade_rejected"
	CodeWebsiteLimitReached   = "website_limit_reached"
	CodePlanNotValid          = "plan_not_valid"
	CodeSubscriptionExists    = "subscription_exists"
	CodeSubscriptionMissing   = "subscription_missing"
	CodeCustomerNotFound      = "customer_not_found"
	CodeEmailTaken            = "email_taken"
	CodeInvalidInput          = "invalid_input"
	CodeUnknownAction         = "unknown_action"
	CodeCanceled              = "canceled"
	CodeInternal              = "internal"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{license.ErrPlanNotValid, CodePlanNotValid},
	{license.ErrPlanType, CodePlanTypeInvalid},
	{license.ErrPlanUpgrade, CodePlanUpgradeRejected},
	{license.ErrPlanDowngrade, CodePlanDowngradeRejected},
	{license.ErrWebsiteLimitReached, CodeWebsiteLimitReached},
	{license.ErrSubscriptionExists, CodeSubscriptionExists},
	{ErrNoSubscription, CodeSubscriptionMissing},
	{ErrCustomerNotFound, CodeCustomerNotFound},
	{ErrEmailTaken, CodeEmailTaken},
	{ErrInvalidInput, CodeInvalidInput},
	{ErrUnknownAction, CodeUnknownAction},
	{context.Canceled, CodeCanceled},
	{context.DeadlineExceeded, CodeCanceled},
}

// ErrorCode maps err to a stable code. Returns "" for nil and CodeInternal
// for errors outside the licensing taxonomy.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
