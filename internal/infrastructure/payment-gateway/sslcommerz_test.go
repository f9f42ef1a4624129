package paymentgateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	circuitbreaker "github.com/shopantik/payment-service/internal/infrastructure/circuit-breaker"
	"github.com/shopantik/payment-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *SSLCommerzClient {
	return &SSLCommerzClient{
		storeID:       "shopantiktest",
		storePassword: "shopantiktest@ssl",
		baseURL:       baseURL,
		cb:            circuitbreaker.CreateCircuitBreaker("sslcommerz-test"),
	}
}

func TestInitiateSession(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, sessionPath, r.URL.Path)
		require.NoError(t, r.ParseForm())

		received = map[string]string{}
		for key := range r.PostForm {
			received[key] = r.PostForm.Get(key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","sessionkey":"A1B2C3","GatewayPageURL":"https://sandbox.sslcommerz.com/EasyCheckOut/testA1B2C3"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.InitiateSession(context.Background(), SessionRequest{
		TotalAmount: 150,
		Currency:    "BDT",
		TranID:      "ORDER_55_1716822000000",
		CusName:     "Rahim Uddin",
		ValueA:      "55",
		ValueB:      "cod_partial",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://sandbox.sslcommerz.com/EasyCheckOut/testA1B2C3", resp.GatewayPageURL)
	assert.Equal(t, "A1B2C3", resp.SessionKey)

	assert.Equal(t, "shopantiktest", received["store_id"])
	assert.Equal(t, "shopantiktest@ssl", received["store_passwd"])
	assert.Equal(t, "150.00", received["total_amount"])
	assert.Equal(t, "BDT", received["currency"])
	assert.Equal(t, "ORDER_55_1716822000000", received["tran_id"])
	assert.Equal(t, "55", received["value_a"])
	assert.Equal(t, "cod_partial", received["value_b"])
	assert.Equal(t, "0", received["emi_option"])
}

func TestInitiateSession_GatewayRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"FAILED","failedreason":"Store Credential Error Or Store is De-active"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.InitiateSession(context.Background(), SessionRequest{TranID: "ORDER_55_1"})
	assert.ErrorIs(t, err, errs.ErrGatewayResponse)
	assert.Contains(t, err.Error(), "Store Credential Error")
}

func TestInitiateSession_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.InitiateSession(context.Background(), SessionRequest{TranID: "ORDER_55_1"})
	assert.ErrorIs(t, err, errs.ErrGatewayResponse)
}

func TestValidatePayment(t *testing.T) {
	body := `{"status":"VALID","tran_id":"ORDER_55_1716822000000","val_id":"2405271212121ABCDEF","amount":"150.00","currency":"BDT","value_a":"55","value_b":"cod_partial"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, validatorPath, r.URL.Path)

		query := r.URL.Query()
		require.Equal(t, "2405271212121ABCDEF", query.Get("val_id"))
		require.Equal(t, "shopantiktest", query.Get("store_id"))
		require.Equal(t, "json", query.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.ValidatePayment(context.Background(), "2405271212121ABCDEF")
	require.NoError(t, err)

	assert.Equal(t, "VALID", resp.Status)
	assert.Equal(t, "ORDER_55_1716822000000", resp.TranID)
	assert.Equal(t, "cod_partial", resp.ValueB)
	assert.Equal(t, []byte(body), resp.Raw)
}

func TestValidatePayment_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ValidatePayment(context.Background(), "2405271212121ABCDEF")
	assert.ErrorIs(t, err, errs.ErrGatewayValidation)
}
