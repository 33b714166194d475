package licensing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sitelicense/pkg/license"
	"github.com/dmitrymomot/sitelicense/svc/licensing"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plan type", license.ErrPlanType, licensing.CodePlanTypeInvalid},
		{"upgrade", license.ErrPlanUpgrade, licensing.CodePlanUpgradeRejected},
		{"downgrade", license.ErrPlanDowngrade, licensing.CodePlanDowngradeRejected},
		{"limit", fmt.Errorf("%w: detail", license.ErrWebsiteLimitReached), licensing.CodeWebsiteLimitReached},
		{"plan not valid wins over wrapped cause", fmt.Errorf("%w: %w", license.ErrPlanNotValid, license.ErrPlanUpgrade), licensing.CodePlanNotValid},
		{"subscription exists", license.ErrSubscriptionExists, licensing.CodeSubscriptionExists},
		{"no subscription", licensing.ErrNoSubscription, licensing.CodeSubscriptionMissing},
		{"not found", licensing.ErrCustomerNotFound, licensing.CodeCustomerNotFound},
		{"email taken", licensing.ErrEmailTaken, licensing.CodeEmailTaken},
		{"invalid input", errors.Join(licensing.ErrInvalidInput, errors.New("field")), licensing.CodeInvalidInput},
		{"canceled", context.Canceled, licensing.CodeCanceled},
		{"deadline", context.DeadlineExceeded, licensing.CodeCanceled},
		{"unknown", errors.New("boom"), licensing.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, licensing.ErrorCode(tt.err))
		})
	}
}
