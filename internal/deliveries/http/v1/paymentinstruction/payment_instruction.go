package paymentinstruction

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/http"
	"bitbucket.org/Amartha/go-payment-instruction/internal/models"
	"bitbucket.org/Amartha/go-payment-instruction/internal/services"

	"github.com/labstack/echo/v4"
)

type paymentInstructionHandler struct {
	instructionService services.InstructionService
}

func New(app *echo.Group, instructionService services.InstructionService) {
	pi := paymentInstructionHandler{
		instructionService: instructionService,
	}

	app.POST("/payment-instructions", pi.processPaymentInstruction())
}

// processPaymentInstruction parses a free-text instruction against the
// submitted account snapshot and returns either the priced transfer or a
// structured rejection. Rejections answer with HTTP 400, everything else
// with HTTP 200.
func (pi paymentInstructionHandler) processPaymentInstruction() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.ProcessPaymentInstructionRequest)

		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		result, code := pi.instructionService.Process(c.Request().Context(), *req)

		return http.RestSuccessResponse(c, code, result)
	}
}
