package paymentgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/shopantik/payment-service/config"
	"github.com/shopantik/payment-service/pkg/errs"
	"github.com/shopantik/payment-service/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	sessionPath   = "/gwprocess/v4/api.php"
	validatorPath = "/validator/api/validationserverAPI.php"
)

type SSLCommerzClient struct {
	storeID       string
	storePassword string
	baseURL       string
	cb            *gobreaker.CircuitBreaker[[]byte]
}

func CreateSSLCommerzClient(config *config.Config, cb *gobreaker.CircuitBreaker[[]byte]) *SSLCommerzClient {
	baseURL := sandboxBaseURL
	if config.SSLCommerzConfig.IsLive {
		baseURL = liveBaseURL
	}

	return &SSLCommerzClient{
		storeID:       config.SSLCommerzConfig.StoreID,
		storePassword: config.SSLCommerzConfig.StorePassword,
		baseURL:       baseURL,
		cb:            cb,
	}
}

func (c *SSLCommerzClient) InitiateSession(ctx context.Context, req SessionRequest) (SessionResponse, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePassword)
	form.Set("total_amount", strconv.FormatFloat(req.TotalAmount, 'f', 2, 64))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TranID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IPNURL)
	form.Set("shipping_method", req.ShippingMethod)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", req.ProductCategory)
	form.Set("product_profile", req.ProductProfile)
	form.Set("cus_name", req.CusName)
	form.Set("cus_email", req.CusEmail)
	form.Set("cus_add1", req.CusAdd1)
	form.Set("cus_city", req.CusCity)
	form.Set("cus_postcode", req.CusPostcode)
	form.Set("cus_country", req.CusCountry)
	form.Set("cus_phone", req.CusPhone)
	form.Set("ship_name", req.ShipName)
	form.Set("ship_add1", req.ShipAdd1)
	form.Set("ship_city", req.ShipCity)
	form.Set("ship_postcode", req.ShipPostcode)
	form.Set("ship_country", req.ShipCountry)
	form.Set("value_a", req.ValueA)
	form.Set("value_b", req.ValueB)
	form.Set("emi_option", "0")
	form.Set("emi_max_inst_option", "0")
	form.Set("emi_allow_only", "0")

	var response SessionResponse
	body, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    c.baseURL + sessionPath,
			Method: http.MethodPost,
			Body:   []byte(form.Encode()),
			Headers: map[string]string{
				"Content-Type": "application/x-www-form-urlencoded",
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("session endpoint returned non-OK status: %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "InitiateSession").Msg("")
		return response, fmt.Errorf("%w: %v", errs.ErrGatewayResponse, err)
	}

	if err := json.Unmarshal(body, &response); err != nil {
		log.Error().Err(err).Str("component", "InitiateSession").Msg("")
		return response, fmt.Errorf("%w: malformed session response", errs.ErrGatewayResponse)
	}

	if response.Status == "FAILED" {
		return response, fmt.Errorf("%w: %s", errs.ErrGatewayResponse, response.FailedReason)
	}

	return response, nil
}

func (c *SSLCommerzClient) ValidatePayment(ctx context.Context, valID string) (ValidationResponse, error) {
	query := url.Values{}
	query.Set("val_id", valID)
	query.Set("store_id", c.storeID)
	query.Set("store_passwd", c.storePassword)
	query.Set("format", "json")

	var response ValidationResponse
	body, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s%s?%s", c.baseURL, validatorPath, query.Encode()),
			Method: http.MethodGet,
		})
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("validator endpoint returned non-OK status: %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "ValidatePayment").Msg("")
		return response, fmt.Errorf("%w: %v", errs.ErrGatewayValidation, err)
	}

	if err := json.Unmarshal(body, &response); err != nil {
		log.Error().Err(err).Str("component", "ValidatePayment").Msg("")
		return response, fmt.Errorf("%w: malformed validator response", errs.ErrGatewayValidation)
	}

	response.Raw = body

	return response, nil
}
