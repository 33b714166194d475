package license_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sitelicense/pkg/license"
)

func TestNewWebsite(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	website := license.NewWebsite("url", customerID)
	assert.Equal(t, "url", website.URL)
	assert.Equal(t, customerID, website.CustomerID)
	assert.True(t, website.Enabled)
}

func TestWebsite_String(t *testing.T) {
	t.Parallel()

	website := license.NewWebsite("url", uuid.New())
	assert.Equal(t, "url (true)", website.String())

	website.Enabled = false
	assert.Equal(t, "url (false)", website.String())
}
