package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopantik/payment-service/internal/dto"
	"github.com/shopantik/payment-service/internal/service"
	"github.com/shopantik/payment-service/pkg/errs"
	"github.com/shopantik/payment-service/pkg/utils"
)

type Controller struct {
	service     service.PaymentService
	frontendURL string
}

func CreatePaymentController(e *echo.Echo, service service.PaymentService, frontendURL string) {
	c := Controller{
		service:     service,
		frontendURL: frontendURL,
	}

	e.GET("/", c.Welcome)

	e.POST("/payment/success", c.PaymentSuccessRedirect)
	e.POST("/payment/fail", c.PaymentFailRedirect)
	e.POST("/payment/cancel", c.PaymentCancelRedirect)

	e.POST("/api/payment/initiate", c.InitiatePayment)
	e.POST("/api/payment/ipn", c.PaymentIPN)
}

func (c *Controller) Welcome(e echo.Context) error {
	return e.String(http.StatusOK, "Welcome to ShopAntik SSLCommerz Payment Integration")
}

func (c *Controller) InitiatePayment(e echo.Context) error {
	payload := dto.InitiatePaymentRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "InitiatePayment").Msg("")
	}

	resp, err := c.service.InitiatePayment(e.Request().Context(), payload)
	if err != nil {
		log.Error().Err(err).Str("component", "InitiatePayment").Msg("payment initiation failed")
		return e.JSON(http.StatusInternalServerError, dto.InitiatePaymentErrorResponse{
			Success: false,
			Message: "Payment initiation failed",
			Error:   err.Error(),
		})
	}

	return e.JSON(http.StatusOK, resp)
}

func (c *Controller) PaymentIPN(e echo.Context) error {
	payload := dto.PaymentNotification{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PaymentIPN").Msg("")
	}

	err = c.service.PaymentIPN(e.Request().Context(), payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PaymentIPN").Msg("IPN processing failed")
		return e.JSON(http.StatusInternalServerError, dto.IPNResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return e.JSON(http.StatusOK, dto.IPNResponse{Success: true})
}

func (c *Controller) PaymentSuccessRedirect(e echo.Context) error {
	return c.redirectToOutcome(e, "success")
}

func (c *Controller) PaymentFailRedirect(e echo.Context) error {
	return c.redirectToOutcome(e, "failed")
}

func (c *Controller) PaymentCancelRedirect(e echo.Context) error {
	return c.redirectToOutcome(e, "cancelled")
}

// redirectToOutcome hands the customer's browser back to the storefront.
// Order state is never touched here; the IPN path is the only writer. A
// transaction id the order id cannot be recovered from is rejected instead
// of redirecting with an empty order_id.
func (c *Controller) redirectToOutcome(e echo.Context, outcome string) error {
	tranID := e.FormValue("tran_id")

	orderID, err := utils.OrderIDFromTransactionID(tranID)
	if err != nil {
		log.Error().Err(err).Str("component", "redirectToOutcome").Str("tran_id", tranID).Msg("")
		return e.JSON(errs.GetErrorStatusCode(err), dto.IPNResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return e.Redirect(http.StatusFound, fmt.Sprintf("%s/payment-%s?order_id=%d", c.frontendURL, outcome, orderID))
}
