package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reoring/ezjson"
	"github.com/reoring/ezjson/middleware"
)

// ReadJSON reads the request body into a T with opt (or DefaultReadOpt when
// zero value), stores it in the context, and on failure aborts with 400 and
// the path-qualified error payload.
func ReadJSON[T any, PT ezjson.DescriberPtr[T]](opt ezjson.ReadOpt) gin.HandlerFunc {
	opt = middleware.Resolve(opt)
	return func(c *gin.Context) {
		v, err := middleware.ReadBody[T, PT](c.Request.Body, opt)
		if err != nil {
			c.Data(http.StatusBadRequest, "application/json", middleware.ErrorPayload(err))
			c.Abort()
			return
		}
		// store decoded in request context
		c.Request = c.Request.WithContext(middleware.ContextWithDecoded(c.Request.Context(), v))
		c.Next()
	}
}

// GetDecoded fetches the decoded *T from gin.Context.
func GetDecoded[T any](c *gin.Context) (*T, bool) {
	return middleware.DecodedFromContext[T](c.Request.Context())
}
