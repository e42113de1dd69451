package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/common"
	"github.com/STORMGAMER0/Paygate/internal/logging"
)

// HTTPClient is the concrete REST gateway. Every network call the client
// makes funnels through its do method.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient constructs a gateway bound to baseURL. The timeout bounds
// every call; a call that would otherwise hang resolves into ErrUnavailable.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// do performs one request against path (relative to the base URL).
//
// Headers are merged over a JSON content-type default, last write wins per
// key. If the token source holds a token, the bearer authorization header
// is injected; otherwise the request goes out unauthenticated. Response
// bodies are parsed as JSON even for failure statuses so the server's
// detail message can be surfaced.
func (c *HTTPClient) do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "error", err)
		return newTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var er errorResponse
		_ = json.Unmarshal(data, &er)
		apiErr := newError(resp.StatusCode, er.Detail, causeForStatus(resp.StatusCode))
		c.log.Warn(ctx, "request failed", "method", method, "path", path,
			"status", resp.StatusCode, "detail", apiErr.Message)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// causeForStatus maps failure statuses to sentinel errors so callers can
// match with errors.Is.
func causeForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return nil
	}
}

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) error {
	req := registerRequest{Email: email, Password: password, FullName: fullName}
	return c.do(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	req := loginRequest{Email: email, Password: password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return "", nil, err
	}
	user := resp.User
	return resp.AccessToken, &user, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) InitializePayment(ctx context.Context, amount int64, currency, idempotencyKey string) (*models.PendingPayment, error) {
	req := initializePaymentRequest{Amount: amount, Currency: currency}
	headers := map[string]string{common.IdempotencyKeyHeaderName: idempotencyKey}

	var resp initializePaymentResponse
	if err := c.do(ctx, http.MethodPost, "/payments/initialize", headers, req, &resp); err != nil {
		return nil, err
	}
	return &models.PendingPayment{
		Reference:        resp.Reference,
		AuthorizationURL: resp.AuthorizationURL,
		AccessCode:       resp.AccessCode,
		Amount:           resp.Amount,
		Currency:         resp.Currency,
	}, nil
}

func (c *HTTPClient) VerifyPayment(ctx context.Context, reference string) (*models.VerificationResult, error) {
	var resp verifyPaymentResponse
	path := "/payments/verify/" + url.PathEscape(reference)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &models.VerificationResult{
		Reference:     resp.Reference,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
		Status:        models.PaymentStatus(strings.ToLower(resp.PaymentStatus)),
		PaidAt:        resp.PaidAt,
		CustomerEmail: resp.CustomerEmail,
	}, nil
}

func (c *HTTPClient) PaymentHistory(ctx context.Context, page, limit int) (*HistoryPage, error) {
	var resp HistoryPage
	path := fmt.Sprintf("/payments/history?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context, page, limit int) (*UsersPage, error) {
	var resp UsersPage
	path := fmt.Sprintf("/admin/users?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) AdminTransactions(ctx context.Context, page, limit int, status models.PaymentStatus) (*TransactionsPage, error) {
	var resp TransactionsPage
	path := fmt.Sprintf("/admin/transactions?page=%d&limit=%d", page, limit)
	if status != "" {
		path += "&status=" + url.QueryEscape(string(status))
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
