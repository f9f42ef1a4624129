package paymentgateway

import "context"

// PaymentGateway is the capability surface the payment service needs from
// SSLCommerz: open a hosted checkout session, and confirm a notification's
// val_id server-to-server.
type PaymentGateway interface {
	InitiateSession(ctx context.Context, req SessionRequest) (SessionResponse, error)
	ValidatePayment(ctx context.Context, valID string) (ValidationResponse, error)
}

// SessionRequest carries the gwprocess v4 session fields. String values
// are expected to be truncated to the gateway's per-field limits before
// they reach the client.
type SessionRequest struct {
	TotalAmount     float64
	Currency        string
	TranID          string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	IPNURL          string
	ShippingMethod  string
	ProductName     string
	ProductCategory string
	ProductProfile  string
	CusName         string
	CusEmail        string
	CusAdd1         string
	CusCity         string
	CusPostcode     string
	CusCountry      string
	CusPhone        string
	ShipName        string
	ShipAdd1        string
	ShipCity        string
	ShipPostcode    string
	ShipCountry     string
	ValueA          string
	ValueB          string
}

type SessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type ValidationResponse struct {
	Status      string `json:"status"`
	TranDate    string `json:"tran_date"`
	TranID      string `json:"tran_id"`
	ValID       string `json:"val_id"`
	Amount      string `json:"amount"`
	StoreAmount string `json:"store_amount"`
	Currency    string `json:"currency"`
	BankTranID  string `json:"bank_tran_id"`
	CardType    string `json:"card_type"`
	ValueA      string `json:"value_a"`
	ValueB      string `json:"value_b"`
	ValueC      string `json:"value_c"`
	ValueD      string `json:"value_d"`
	RiskLevel   string `json:"risk_level"`
	RiskTitle   string `json:"risk_title"`

	// Raw is the validator response body as received, persisted verbatim
	// on the order record.
	Raw []byte `json:"-"`
}
