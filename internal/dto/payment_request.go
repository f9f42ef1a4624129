package dto

type OrderData struct {
	ID                 int64   `json:"id"`
	Total              float64 `json:"total"`
	HasDiscountedPrice bool    `json:"has_discounted_price"`
	ShippingCost       float64 `json:"shipping_cost"`
	ShippingLocation   string  `json:"shipping_location"`
}

type Customer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

type CartItem struct {
	Name string `json:"name"`
}

type InitiatePaymentRequest struct {
	OrderData OrderData  `json:"orderData"`
	Customer  Customer   `json:"customer"`
	CartItems []CartItem `json:"cartItems"`
}
