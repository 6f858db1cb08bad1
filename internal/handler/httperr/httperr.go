// Package httperr renders the engine's error bodies and records the
// underlying cause on the gin context for the logging middleware.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response travels as gin error metadata so the error middleware can
// re-render a failure whose handler never wrote a body.
type Response struct {
	Status int
	Body   gin.H
}

// AbortWithError writes {"error": msg} merged with any extra detail
// fields. err preserves the original failure for monitoring; it may be
// nil for pure policy rejections with no underlying cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail gin.H) {
	body := gin.H{"error": msg}
	for k, v := range detail {
		body[k] = v
	}

	if err != nil {
		_ = c.Error(&gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: Response{Status: status, Body: body},
		})
	}
	c.AbortWithStatusJSON(status, body)
}
