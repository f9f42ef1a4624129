package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shopantik/payment-service/config"
	"github.com/shopantik/payment-service/internal/domain"
	"github.com/shopantik/payment-service/internal/dto"
	paymentgateway "github.com/shopantik/payment-service/internal/infrastructure/payment-gateway"
	"github.com/shopantik/payment-service/internal/repository"
	"github.com/shopantik/payment-service/pkg/errs"
	"github.com/shopantik/payment-service/pkg/utils"
)

// Gateway-documented field limits.
const (
	maxCustomerFieldLen = 50
	maxPhoneLen         = 20
	maxProductNameLen   = 255
)

const codPartialMarker = "cod_partial"

type PaymentServiceImpl struct {
	repository   repository.OrderRepository
	gateway      paymentgateway.PaymentGateway
	confirmation ConfirmationSender
	inventory    InventoryPublisher
	config       *config.Config
}

func CreatePaymentService(repository repository.OrderRepository, gateway paymentgateway.PaymentGateway, confirmation ConfirmationSender, inventory InventoryPublisher, config *config.Config) PaymentService {
	return &PaymentServiceImpl{
		repository:   repository,
		gateway:      gateway,
		confirmation: confirmation,
		inventory:    inventory,
		config:       config,
	}
}

func (s *PaymentServiceImpl) InitiatePayment(ctx context.Context, req dto.InitiatePaymentRequest) (resp dto.InitiatePaymentResponse, err error) {
	tranID := utils.NewTransactionID(req.OrderData.ID)

	// Discounted orders collect only the shipping charge online; the
	// balance is cash on delivery.
	paymentAmount := req.OrderData.Total
	valueB := ""
	if req.OrderData.HasDiscountedPrice {
		paymentAmount = req.OrderData.ShippingCost
		valueB = codPartialMarker
	}

	productNames := make([]string, len(req.CartItems))
	for i, item := range req.CartItems {
		productNames[i] = item.Name
	}

	sessionReq := paymentgateway.SessionRequest{
		TotalAmount:     paymentAmount,
		Currency:        "BDT",
		TranID:          tranID,
		SuccessURL:      fmt.Sprintf("%s/payment/success", s.config.BackendURL),
		FailURL:         fmt.Sprintf("%s/payment/fail", s.config.BackendURL),
		CancelURL:       fmt.Sprintf("%s/payment/cancel", s.config.BackendURL),
		IPNURL:          fmt.Sprintf("%s/api/payment/ipn", s.config.BackendURL),
		ShippingMethod:  "Courier",
		ProductName:     utils.Truncate(strings.Join(productNames, ", "), maxProductNameLen),
		ProductCategory: "Books",
		ProductProfile:  "physical-goods",
		CusName:         utils.Truncate(req.Customer.Name, maxCustomerFieldLen),
		CusEmail:        utils.Truncate(req.Customer.Email, maxCustomerFieldLen),
		CusAdd1:         utils.Truncate(req.Customer.Address, maxCustomerFieldLen),
		CusCity:         utils.Truncate(req.Customer.City, maxCustomerFieldLen),
		CusPostcode:     utils.Truncate(req.Customer.PostalCode, maxCustomerFieldLen),
		CusCountry:      "Bangladesh",
		CusPhone:        utils.Truncate(req.Customer.Phone, maxPhoneLen),
		ShipName:        utils.Truncate(req.Customer.Name, maxCustomerFieldLen),
		ShipAdd1:        utils.Truncate(req.Customer.Address, maxCustomerFieldLen),
		ShipCity:        utils.Truncate(req.Customer.City, maxCustomerFieldLen),
		ShipPostcode:    utils.Truncate(req.Customer.PostalCode, maxCustomerFieldLen),
		ShipCountry:     "Bangladesh",
		ValueA:          strconv.FormatInt(req.OrderData.ID, 10),
		ValueB:          valueB,
	}

	sessionResp, err := s.gateway.InitiateSession(ctx, sessionReq)
	if err != nil {
		return resp, err
	}

	log.Info().
		Str("gateway_url", sessionResp.GatewayPageURL).
		Str("session_status", sessionResp.Status).
		Str("tran_id", tranID).
		Msg("SSLCommerz session response")

	if sessionResp.GatewayPageURL == "" {
		return resp, errs.ErrGatewayResponse
	}

	// Live credentials that silently fall back to the sandbox would take
	// real orders without taking real money.
	if s.config.SSLCommerzConfig.IsLive && strings.Contains(sessionResp.GatewayPageURL, "sandbox") {
		return resp, errs.ErrSandboxGatewayURL
	}

	resp = dto.InitiatePaymentResponse{
		Success:    true,
		GatewayURL: sessionResp.GatewayPageURL,
		TranID:     tranID,
	}

	return resp, nil
}

func (s *PaymentServiceImpl) PaymentIPN(ctx context.Context, req dto.PaymentNotification) (err error) {
	validation, err := s.gateway.ValidatePayment(ctx, req.ValID)
	if err != nil {
		return err
	}

	orderID, err := strconv.ParseInt(req.ValueA, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: notification carries no usable order id", errs.ErrClient)
	}

	status, paymentStatus := mapGatewayStatus(req.Status, validation.ValueB)

	err = s.repository.UpdateOrderPayment(ctx, domain.OrderUpdate{
		OrderID:          orderID,
		Status:           status,
		PaymentStatus:    paymentStatus,
		PaymentData:      validation.Raw,
		SSLCommerzTranID: req.TranID,
		UpdatedAt:        time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	if status != domain.OrderStatusPaid && status != domain.OrderStatusProcessing {
		return nil
	}

	order, err := s.repository.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	// Best effort from here on: the order row already carries the
	// authoritative status, so a failed email or broker write must not
	// turn the IPN response into an error.
	if err := s.confirmation.SendOrderConfirmation(ctx, order); err != nil {
		log.Error().Err(err).Str("component", "PaymentIPN").Int64("order_id", orderID).Msg("failed to send order confirmation")
	}

	if err := s.inventory.PublishInventoryUpdate(ctx, order); err != nil {
		log.Error().Err(err).Str("component", "PaymentIPN").Int64("order_id", orderID).Msg("failed to publish inventory update")
	}

	return nil
}

// mapGatewayStatus is the status-mapping policy: gateway outcome plus the
// COD-partial marker on the validation payload decide both order fields.
// Anything unrecognized stays pending until the gateway says otherwise.
func mapGatewayStatus(gatewayStatus, valueB string) (status, paymentStatus string) {
	switch gatewayStatus {
	case "VALID", "VALIDATED":
		if valueB == codPartialMarker {
			return domain.OrderStatusProcessing, domain.PaymentStatusDeliveryPaid
		}
		return domain.OrderStatusPaid, domain.PaymentStatusPaid
	case "FAILED":
		return domain.OrderStatusFailed, domain.PaymentStatusFailed
	case "CANCELLED":
		return domain.OrderStatusCancelled, domain.PaymentStatusCancelled
	default:
		return domain.OrderStatusPending, domain.PaymentStatusPending
	}
}
