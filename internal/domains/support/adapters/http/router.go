package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// NewRouter builds the gin engine with the customer-order routes mounted.
// Extra middleware (tracing etc.) runs after recovery and request id.
func NewRouter(api *CustomerOrderAPI, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(middleware...)

	// Method-agnostic in the original; both verbs carry the same single
	// parameter whose key is the email.
	router.GET("/api/v1/customerorder", api.CustomerOrder)
	router.POST("/api/v1/customerorder", api.CustomerOrder)
	return router
}

// RequestID tags every request and response with a correlation id, minting
// one when the caller did not send any.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
