package ports

import (
	"context"
	"net/http"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
)

// Service exposes the support bounded context use cases.
type Service interface {
	// CustomerOrders assembles the consolidated identity and recent-order
	// view for an email address. Missing data degrades to default fields;
	// an error is only returned when the backing store itself fails.
	CustomerOrders(ctx context.Context, email string) (*domain.CustomerOrders, error)
}

// Authorizer gates requests on the bearer credential carried in the headers.
// A nil return means the request may proceed.
type Authorizer interface {
	Authorize(ctx context.Context, headers http.Header) error
}
