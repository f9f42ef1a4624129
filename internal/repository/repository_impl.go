package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopantik/payment-service/internal/domain"
	"github.com/shopantik/payment-service/pkg/errs"
)

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func CreateOrderRepository(db *sqlx.DB) OrderRepository {
	return &OrderRepositoryImpl{
		db: db,
	}
}

func (r *OrderRepositoryImpl) GetOrderByID(ctx context.Context, orderID int64) (data domain.Order, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, total, shipping_cost, has_discounted_price, status, payment_status, payment_data, sslcommerz_tran_id, customer_name, customer_email, created_at, updated_at, deleted_at FROM orders WHERE id = $1 AND deleted_at IS NULL", orderID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrOrderNotFound
		}
		log.Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return data, errs.ErrStore
	}

	err = r.db.SelectContext(ctx, &data.Items, "SELECT id, order_id, product_id, name, quantity FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return data, errs.ErrStore
	}

	return
}

func (r *OrderRepositoryImpl) UpdateOrderPayment(ctx context.Context, data domain.OrderUpdate) (err error) {
	result, err := r.db.NamedExecContext(ctx, "UPDATE orders SET status = :status, payment_status = :payment_status, payment_data = :payment_data, sslcommerz_tran_id = :sslcommerz_tran_id, updated_at = :updated_at WHERE id = :order_id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderPayment").Msg("")
		return errs.ErrStore
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderPayment").Msg("")
		return errs.ErrStore
	}

	if affected == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}
