package license

import (
	"fmt"

	"github.com/google/uuid"
)

// Website is a site registered under a subscription.
// CustomerID refers back to the owning customer without owning it.
type Website struct {
	URL        string
	Enabled    bool
	CustomerID uuid.UUID
}

// NewWebsite returns an enabled website. The URL is stored verbatim.
func NewWebsite(url string, customerID uuid.UUID) *Website {
	return &Website{
		URL:        url,
		Enabled:    true,
		CustomerID: customerID,
	}
}

func (w *Website) String() string {
	return fmt.Sprintf("%s (%t)", w.URL, w.Enabled)
}
