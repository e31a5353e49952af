package middleware

import (
	"fmt"
	"net/http"

	commonhttp "bitbucket.org/Amartha/go-payment-instruction/internal/common/http"

	"github.com/labstack/echo/v4"
)

func (m *AppMiddleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secretKey := c.Request().Header.Get("X-Secret-Key")
		if secretKey == "" {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, fmt.Errorf("%s", "required secret key"))
		}

		if secretKey != m.conf.SecretKey {
			return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, fmt.Errorf("%s", "invalid secret key"))
		}

		return next(c)
	}
}
