package service

import (
	"context"

	"github.com/shopantik/payment-service/internal/domain"
	"github.com/shopantik/payment-service/internal/dto"
)

type PaymentService interface {
	InitiatePayment(ctx context.Context, req dto.InitiatePaymentRequest) (dto.InitiatePaymentResponse, error)
	PaymentIPN(ctx context.Context, req dto.PaymentNotification) (err error)
}

// ConfirmationSender and InventoryPublisher are the two fire-and-forget
// collaborators invoked after a successful payment lands. Their failures
// are logged and never surfaced to the gateway.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, order domain.Order) error
}

type InventoryPublisher interface {
	PublishInventoryUpdate(ctx context.Context, order domain.Order) error
}
