package health

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/http"

	"github.com/labstack/echo/v4"
)

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group) {
	hh := healthHandler{}
	app.GET("/health", hh.healthCheck())
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}
)

func (th healthHandler) healthCheck() echo.HandlerFunc {
	return func(c echo.Context) error {
		return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	}
}
