// Package httpapi exposes the connector's single customer-order endpoint.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
	"github.com/JDavidVR/zendesk-support-api/internal/shared/apierrors"
)

// CustomerOrderAPI handles the customer-order report endpoint.
type CustomerOrderAPI struct {
	authorizer ports.Authorizer
	service    ports.Service
	logger     *slog.Logger
}

// NewCustomerOrderAPI wires dependencies.
func NewCustomerOrderAPI(authorizer ports.Authorizer, service ports.Service, logger *slog.Logger) *CustomerOrderAPI {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerOrderAPI{authorizer: authorizer, service: service, logger: logger}
}

// CustomerOrder serves GET/POST /api/v1/customerorder. The request carries
// exactly one parameter whose key is the customer email; the value is unused.
func (api *CustomerOrderAPI) CustomerOrder(c *gin.Context) {
	ctx := c.Request.Context()
	if err := api.authorizer.Authorize(ctx, c.Request.Header); err != nil {
		apierrors.Respond(c, err)
		return
	}

	email, err := emailParam(c.Request)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	doc, err := api.service.CustomerOrders(ctx, email)
	if err != nil {
		api.logger.ErrorContext(ctx, "customer order aggregation failed", slog.String("error", err.Error()))
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// emailParam extracts the email from the single request parameter's key.
// Query and form parameters are considered together; anything other than
// exactly one parameter is rejected.
func emailParam(r *http.Request) (string, error) {
	if err := r.ParseForm(); err != nil {
		return "", apierrors.ErrBadParams
	}
	if len(r.Form) != 1 {
		return "", apierrors.ErrBadParams
	}
	for key := range r.Form {
		return key, nil
	}
	return "", apierrors.ErrBadParams
}
