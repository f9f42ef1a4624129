package dto

// Response envelopes are fixed by what the storefront and the gateway's
// IPN pusher already consume; keep field names stable.

type InitiatePaymentResponse struct {
	Success    bool   `json:"success"`
	GatewayURL string `json:"gateway_url"`
	TranID     string `json:"tran_id"`
}

type InitiatePaymentErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type IPNResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
