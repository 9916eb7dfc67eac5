package observer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

// BalanceProvider reports the current balance of a lightning wallet
type BalanceProvider interface {
	Balance(ctx context.Context) (domain.WalletBalance, error)
}

// Wallet observes donations through the balance of a dedicated wallet.
// The wallet is assumed to receive boosts only, so the balance is the
// authoritative donation total.
type Wallet struct {
	provider BalanceProvider
	attempts int
	delay    time.Duration
}

// NewWallet creates a wallet-balance observer
func NewWallet(provider BalanceProvider, attempts int, delay time.Duration) *Wallet {
	if attempts < 1 {
		attempts = 1
	}
	return &Wallet{provider: provider, attempts: attempts, delay: delay}
}

// Observe queries the wallet and returns its balance as the donation total
func (w *Wallet) Observe(ctx context.Context) (domain.Observation, error) {
	var balance domain.WalletBalance
	err := repeater.NewFixed(w.attempts, w.delay).Do(ctx, func() error {
		var e error
		balance, e = w.provider.Balance(ctx)
		return e
	})
	if err != nil {
		return domain.Observation{}, fmt.Errorf("fetch wallet balance: %w", err)
	}
	return domain.Observation{Amount: balance.Balance, Source: domain.SourceWalletBalance}, nil
}
