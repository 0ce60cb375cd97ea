package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-calculator/internal/api"
	"github.com/stretchr/testify/require"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Message)
}

// TestClient wraps HTTP calls to the calculator
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Convert calls /convert
func (c *TestClient) Convert(t *testing.T, from, to string, amount float64) (*api.ConversionResponse, error) {
	var out api.ConversionResponse
	err := c.get(t, "/convert", url.Values{
		"from":   {from},
		"to":     {to},
		"amount": {formatNumber(amount)},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VAT calls /tva
func (c *TestClient) VAT(t *testing.T, net, rate float64) (*api.VATResponse, error) {
	var out api.VATResponse
	err := c.get(t, "/tva", url.Values{
		"ht":   {formatNumber(net)},
		"taux": {formatNumber(rate)},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Discount calls /remise
func (c *TestClient) Discount(t *testing.T, gross, percentage float64) (*api.DiscountResponse, error) {
	var out api.DiscountResponse
	err := c.get(t, "/remise", url.Values{
		"prix":        {formatNumber(gross)},
		"pourcentage": {formatNumber(percentage)},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Currencies calls /currencies
func (c *TestClient) Currencies(t *testing.T) ([]string, error) {
	var out api.CurrenciesResponse
	if err := c.get(t, "/currencies", nil, &out); err != nil {
		return nil, err
	}
	return out.Currencies, nil
}

// Health calls /health
func (c *TestClient) Health(t *testing.T) (*api.HealthResponse, error) {
	var out api.HealthResponse
	if err := c.get(t, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Raw issues a GET with a raw query string, for malformed inputs.
func (c *TestClient) Raw(t *testing.T, pathAndQuery string) (int, []byte) {
	resp, err := c.httpClient.Get(c.baseURL + pathAndQuery)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func (c *TestClient) get(t *testing.T, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	resp, err := c.httpClient.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		var errResp api.ErrorResponse
		_ = json.Unmarshal(bodyBytes, &errResp)
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	require.NoError(t, json.Unmarshal(bodyBytes, out))
	return nil
}
