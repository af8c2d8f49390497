package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON document written for every failed request.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Respond writes err as the fixed error document. Known Problems keep their
// status and message; anything else is reported as a generic 500.
func Respond(c *gin.Context, err error) {
	var problem *Problem
	if errors.As(err, &problem) {
		c.JSON(problem.Status, ErrorBody{Success: false, Message: problem.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Success: false, Message: "Internal error"})
}
