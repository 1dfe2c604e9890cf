package utils

import (
	"fmt"
	"strconv"

	"lewagon/config"

	"github.com/go-resty/resty/v2"
)

// PayPalCaptureResult is what the capture workflow needs from the provider.
type PayPalCaptureResult struct {
	OrderID string
	Status  string
	Amount  float64
	Raw     []byte
}

// CapturePayPalOrder is a variable so the payment controller can be tested
// without reaching the PayPal sandbox.
var CapturePayPalOrder = capturePayPalOrder

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type paypalCaptureResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				Amount struct {
					CurrencyCode string `json:"currency_code"`
					Value        string `json:"value"`
				} `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func paypalAccessToken(client *resty.Client) (string, error) {
	var tokenRes paypalTokenResponse

	res, err := client.R().
		SetBasicAuth(config.AppConfig.PayPalClientID, config.AppConfig.PayPalSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody("grant_type=client_credentials").
		SetResult(&tokenRes).
		Post(config.AppConfig.PayPalBaseURL + "/v1/oauth2/token")
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("paypal token request failed with status %d", res.StatusCode())
	}
	if tokenRes.AccessToken == "" {
		return "", fmt.Errorf("paypal token response missing access_token")
	}

	return tokenRes.AccessToken, nil
}

// capturePayPalOrder captures an approved PayPal order and returns the
// captured amount. A COMPLETED status from the provider is required.
func capturePayPalOrder(orderID string) (*PayPalCaptureResult, error) {
	client := resty.New()

	token, err := paypalAccessToken(client)
	if err != nil {
		return nil, err
	}

	var captureRes paypalCaptureResponse

	res, err := client.R().
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody("{}").
		SetResult(&captureRes).
		Post(fmt.Sprintf("%s/v2/checkout/orders/%s/capture", config.AppConfig.PayPalBaseURL, orderID))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("paypal capture failed with status %d: %s", res.StatusCode(), res.String())
	}
	if captureRes.Status != "COMPLETED" {
		return nil, fmt.Errorf("paypal order %s not completed: %s", orderID, captureRes.Status)
	}

	amount := 0.0
	if len(captureRes.PurchaseUnits) > 0 && len(captureRes.PurchaseUnits[0].Payments.Captures) > 0 {
		value := captureRes.PurchaseUnits[0].Payments.Captures[0].Amount.Value
		amount, err = strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("paypal capture amount %q is not numeric", value)
		}
	}

	return &PayPalCaptureResult{
		OrderID: captureRes.ID,
		Status:  captureRes.Status,
		Amount:  amount,
		Raw:     res.Body(),
	}, nil
}
