package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tipbot/config"
	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.LedgerClient against the wallet service's
// JSON API. Amounts are integers in atomic units on the wire.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a ledger API client.
func NewClient(cfg config.LedgerConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		log:        log,
	}
}

type accountResponse struct {
	ID              string `json:"id"`
	BalanceUnlocked int64  `json:"balance_unlocked"`
	BalanceLocked   int64  `json:"balance_locked"`
}

type transferRequest struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        int64  `json:"amount"`
}

type prepareWithdrawalRequest struct {
	Amount  int64  `json:"amount"`
	Address string `json:"address"`
}

type sendWithdrawalRequest struct {
	PreparedID string `json:"prepared_id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// CreateAccount provisions a new ledger account.
func (c *Client) CreateAccount(ctx context.Context) (*domain.Account, error) {
	var resp accountResponse
	if err := c.do(ctx, http.MethodPost, "/accounts", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.Account{
		ID:              resp.ID,
		BalanceUnlocked: resp.BalanceUnlocked,
		BalanceLocked:   resp.BalanceLocked,
	}, nil
}

// GetAccount fetches the current ledger state of an account.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	var resp accountResponse
	if err := c.do(ctx, http.MethodGet, "/accounts/"+accountID, nil, &resp); err != nil {
		return nil, err
	}
	return &domain.Account{
		ID:              resp.ID,
		BalanceUnlocked: resp.BalanceUnlocked,
		BalanceLocked:   resp.BalanceLocked,
	}, nil
}

// Transfer moves funds between two ledger accounts.
func (c *Client) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount int64) (*ports.Transfer, error) {
	req := transferRequest{FromAccountID: fromAccountID, ToAccountID: toAccountID, Amount: amount}

	var resp ports.Transfer
	if err := c.do(ctx, http.MethodPost, "/transfers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PrepareWithdrawal asks the ledger for a withdrawal preview.
func (c *Client) PrepareWithdrawal(ctx context.Context, accountID string, amount int64, address string) (*domain.PreparedWithdrawal, error) {
	req := prepareWithdrawalRequest{Amount: amount, Address: address}

	var resp domain.PreparedWithdrawal
	if err := c.do(ctx, http.MethodPost, "/accounts/"+accountID+"/withdrawals/prepare", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendWithdrawal executes a previously prepared withdrawal.
func (c *Client) SendWithdrawal(ctx context.Context, accountID, preparedID string) (*ports.Withdrawal, error) {
	req := sendWithdrawalRequest{PreparedID: preparedID}

	var resp ports.Withdrawal
	if err := c.do(ctx, http.MethodPost, "/accounts/"+accountID+"/withdrawals", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding ledger request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building ledger request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ServiceFailure("ledger request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.serviceError(resp, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding ledger response: %w", err)
		}
	}
	return nil
}

// serviceError converts a rejection into an error carrying the ledger's
// own human-readable message, so callers can surface it verbatim.
func (c *Client) serviceError(resp *http.Response, method, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body errorResponse
	msg := "ledger request rejected"
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		msg = body.Message
	}

	c.log.Warn().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Str("message", msg).
		Msg("ledger API rejection")

	return apperror.ServiceFailure(msg, fmt.Errorf("ledger returned %d", resp.StatusCode))
}
