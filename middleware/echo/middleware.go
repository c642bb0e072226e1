package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reoring/ezjson"
	"github.com/reoring/ezjson/middleware"
)

// ReadJSON reads the request body into a T, stores it in the context on
// success, or replies 400 with the path-qualified error payload.
func ReadJSON[T any, PT ezjson.DescriberPtr[T]](opt ezjson.ReadOpt) echo.MiddlewareFunc {
	opt = middleware.Resolve(opt)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := middleware.ReadBody[T, PT](c.Request().Body, opt)
			if err != nil {
				return c.Blob(http.StatusBadRequest, "application/json", middleware.ErrorPayload(err))
			}
			ctx := middleware.ContextWithDecoded(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetDecoded fetches the decoded *T from echo.Context.
func GetDecoded[T any](c echo.Context) (*T, bool) {
	return middleware.DecodedFromContext[T](c.Request().Context())
}
