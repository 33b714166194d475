package license_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitelicense/pkg/license"
)

func TestNewCustomer(t *testing.T) {
	t.Parallel()

	t.Run("stores identity without subscribing", func(t *testing.T) {
		t.Parallel()
		customer, err := license.NewCustomer("name", "email@email.com", "password")
		require.NoError(t, err)
		assert.Equal(t, "name", customer.Name)
		assert.Equal(t, "email@email.com", customer.Email)
		assert.Equal(t, "password", customer.Password)
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.Nil(t, customer.Subscription)
		assert.Nil(t, customer.SubscriptionRenewal)
		assert.False(t, customer.HasSubscription())
	})

	t.Run("uses the given id", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		customer, err := license.NewCustomer("name", "email", "password", license.WithID(id))
		require.NoError(t, err)
		assert.Equal(t, id, customer.ID)
	})

	t.Run("subscribes with a plan", func(t *testing.T) {
		t.Parallel()
		customer, err := license.NewCustomer("name", "email", "password", license.WithPlan("Plus"))
		require.NoError(t, err)
		require.True(t, customer.HasSubscription())
		assert.Equal(t, license.Plus, customer.Subscription.Plan().Type())
		assert.Equal(t, customer.ID, customer.Subscription.CustomerID())
	})

	t.Run("fails on an unknown plan", func(t *testing.T) {
		t.Parallel()
		customer, err := license.NewCustomer("name", "email", "password", license.WithPlan("not valid"))
		assert.ErrorIs(t, err, license.ErrPlanType)
		assert.Nil(t, customer)
	})
}

func TestCustomer_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("sets renewal one year ahead", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		customer, err := license.NewCustomer("name", "email", "password",
			license.WithClock(func() time.Time { return now }),
		)
		require.NoError(t, err)

		require.NoError(t, customer.Subscribe("Single"))
		require.NotNil(t, customer.SubscriptionRenewal)
		assert.Equal(t, now.AddDate(0, 0, 365), *customer.SubscriptionRenewal)
	})

	t.Run("second subscribe fails", func(t *testing.T) {
		t.Parallel()
		customer, err := license.NewCustomer("name", "email", "password", license.WithPlan("Single"))
		require.NoError(t, err)
		sub := customer.Subscription

		err = customer.Subscribe("Plus")
		assert.ErrorIs(t, err, license.ErrSubscriptionExists)
		assert.Same(t, sub, customer.Subscription)
		assert.Equal(t, license.Single, customer.Subscription.Plan().Type())
	})

	t.Run("unknown plan leaves customer unsubscribed", func(t *testing.T) {
		t.Parallel()
		customer, err := license.NewCustomer("name", "email", "password")
		require.NoError(t, err)

		err = customer.Subscribe("not valid")
		assert.ErrorIs(t, err, license.ErrPlanType)
		assert.Nil(t, customer.Subscription)
		assert.Nil(t, customer.SubscriptionRenewal)

		require.NoError(t, customer.Subscribe("Single"))
	})
}

func TestCustomer_String(t *testing.T) {
	t.Parallel()

	customer, err := license.NewCustomer("name", "email@email.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "name <email@email.com>", customer.String())
}
