package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopantik/payment-service/pkg/errs"
)

const transactionIDPrefix = "ORDER"

// NewTransactionID mints the correlation id sent to the gateway,
// ORDER_{orderID}_{unixMillis}. Two initiations for the same order would
// have to land in the same millisecond to collide.
func NewTransactionID(orderID int64) string {
	return fmt.Sprintf("%s_%d_%d", transactionIDPrefix, orderID, time.Now().UnixMilli())
}

// OrderIDFromTransactionID recovers the order id embedded as the second
// underscore-delimited segment of a transaction id.
func OrderIDFromTransactionID(tranID string) (int64, error) {
	segments := strings.Split(tranID, "_")
	if len(segments) < 2 {
		return 0, errs.ErrMalformedTransactionID
	}

	orderID, err := strconv.ParseInt(segments[1], 10, 64)
	if err != nil {
		return 0, errs.ErrMalformedTransactionID
	}

	return orderID, nil
}
