// Package wallet implements a client for Alby-style lightning wallet APIs.
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

// Client queries the balance endpoint of a lightning wallet
type Client struct {
	client *http.Client
	url    string
	token  string
}

// New creates a wallet client for the given balance endpoint. The token is
// sent verbatim in the Authorization header.
func New(url, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
		url:    url,
		token:  token,
	}
}

// Balance returns the current wallet balance in satoshis
func (c *Client) Balance(ctx context.Context) (domain.WalletBalance, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return domain.WalletBalance{}, fmt.Errorf("create balance request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.WalletBalance{}, fmt.Errorf("request balance: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.WalletBalance{}, fmt.Errorf("balance request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var balance domain.WalletBalance
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return domain.WalletBalance{}, fmt.Errorf("decode balance response: %w", err)
	}
	if balance.Balance < 0 {
		return domain.WalletBalance{}, fmt.Errorf("wallet reported negative balance %d", balance.Balance)
	}
	return balance, nil
}
