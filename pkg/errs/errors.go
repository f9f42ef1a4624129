package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer         = errors.New("Internal server error")
	ErrClient                 = errors.New("Bad request")
	ErrGatewayResponse        = errors.New("No gateway URL received from SSLCommerz")
	ErrSandboxGatewayURL      = errors.New("SSLCommerz returned sandbox URL in live mode")
	ErrGatewayValidation      = errors.New("SSLCommerz validation request failed")
	ErrOrderNotFound          = errors.New("Order not found")
	ErrStore                  = errors.New("Order store update failed")
	ErrMalformedTransactionID = errors.New("Malformed transaction id")
)

// The IPN and initiation responses are consumed by machines, so almost
// everything maps to a 500; only requests we can reject before doing any
// work come back as a 400.
var errorMap = map[error]int{
	ErrInternalServer:         ErrStatusInternalServer,
	ErrClient:                 ErrStatusClient,
	ErrGatewayResponse:        ErrStatusInternalServer,
	ErrSandboxGatewayURL:      ErrStatusInternalServer,
	ErrGatewayValidation:      ErrStatusInternalServer,
	ErrOrderNotFound:          ErrStatusInternalServer,
	ErrStore:                  ErrStatusInternalServer,
	ErrMalformedTransactionID: ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	for target, code := range errorMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return ErrStatusInternalServer
}
