package dto

// PaymentNotification is the gateway's asynchronous status push. The body
// is not trusted for the final status decision on its own; the val_id is
// re-validated against the gateway before any order mutation.
type PaymentNotification struct {
	ValID  string `json:"val_id" form:"val_id"`
	TranID string `json:"tran_id" form:"tran_id"`
	Status string `json:"status" form:"status"`
	ValueA string `json:"value_a" form:"value_a"`
}
