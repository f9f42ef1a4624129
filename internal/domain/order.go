package domain

// Order statuses written by the notification reconciler.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusPaid       = "paid"
	OrderStatusFailed     = "failed"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses: delivery_paid marks the COD-partial flow where only
// shipping was collected online and the balance is due at delivery.
const (
	PaymentStatusPending      = "pending"
	PaymentStatusDeliveryPaid = "delivery_paid"
	PaymentStatusPaid         = "paid"
	PaymentStatusFailed       = "failed"
	PaymentStatusCancelled    = "cancelled"
)

type Order struct {
	ID                 int64   `db:"id"`
	Total              float64 `db:"total"`
	ShippingCost       float64 `db:"shipping_cost"`
	HasDiscountedPrice bool    `db:"has_discounted_price"`
	Status             string  `db:"status"`
	PaymentStatus      string  `db:"payment_status"`
	PaymentData        []byte  `db:"payment_data"`
	SSLCommerzTranID   *string `db:"sslcommerz_tran_id"`
	CustomerName       string  `db:"customer_name"`
	CustomerEmail      string  `db:"customer_email"`
	CreatedAt          int64   `db:"created_at"`
	UpdatedAt          int64   `db:"updated_at"`
	DeletedAt          *int64  `db:"deleted_at"`
	Items              []OrderItem
}

type OrderItem struct {
	ID        int64  `db:"id"`
	OrderID   int64  `db:"order_id"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Quantity  int64  `db:"quantity"`
}

// OrderUpdate is the partial update derived from one gateway notification.
// It exists for the duration of a single IPN delivery.
type OrderUpdate struct {
	OrderID          int64  `db:"order_id"`
	Status           string `db:"status"`
	PaymentStatus    string `db:"payment_status"`
	PaymentData      []byte `db:"payment_data"`
	SSLCommerzTranID string `db:"sslcommerz_tran_id"`
	UpdatedAt        int64  `db:"updated_at"`
}
