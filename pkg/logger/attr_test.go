package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitelicense/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("sub", logger.URL("a"), logger.Enabled(2))
	require.Equal(t, "sub", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "url", g[0].Key)
	assert.Equal(t, "enabled_websites", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrorCode(t *testing.T) {
	attr := logger.ErrorCode("website_limit_reached")
	require.Equal(t, "error_code", attr.Key)
	assert.Equal(t, "website_limit_reached", attr.Value.String())

	assert.True(t, logger.ErrorCode("").Equal(slog.Attr{}))
}

func TestCustomerID(t *testing.T) {
	id := uuid.New()
	attr := logger.CustomerID(id)
	require.Equal(t, "customer_id", attr.Key)
	assert.Equal(t, id.String(), attr.Value.String())

	assert.True(t, logger.CustomerID(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, "plan_type", logger.PlanType("Plus").Key)
	assert.Equal(t, "Plus", logger.PlanType("Plus").Value.String())
	assert.Equal(t, "transition", logger.Transition("upgrade").Key)
	assert.Equal(t, int64(3), logger.Step(3).Value.Int64())
	assert.Equal(t, "component", logger.Component("licensing").Key)
}
