package response

import "github.com/gin-gonic/gin"

// ErrorBody is the failure payload every route shares: a human-readable
// message plus optional field-level or store error detail.
type ErrorBody struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Fail writes an ErrorBody with the given status.
func Fail(c *gin.Context, status int, message string, errs interface{}) {
	c.JSON(status, ErrorBody{Message: message, Errors: errs})
}

// AbortFail writes an ErrorBody and stops the handler chain; used by
// middleware that must not fall through to the protected route.
func AbortFail(c *gin.Context, status int, message string, errs interface{}) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message, Errors: errs})
}
