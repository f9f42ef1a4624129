package repository

import (
	"context"

	"github.com/shopantik/payment-service/internal/domain"
)

type OrderRepository interface {
	GetOrderByID(ctx context.Context, orderID int64) (data domain.Order, err error)
	UpdateOrderPayment(ctx context.Context, data domain.OrderUpdate) (err error)
}
