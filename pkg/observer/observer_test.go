package observer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

type fakeSnapshotter struct {
	snapshots []string
	errs      []error
	calls     int
	gotURL    string
}

func (f *fakeSnapshotter) Snapshot(_ context.Context, pageURL string) (string, error) {
	f.gotURL = pageURL
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.snapshots) {
		return f.snapshots[i], nil
	}
	return f.snapshots[len(f.snapshots)-1], nil
}

type fakeBalancer struct {
	balance domain.WalletBalance
	errs    []error
	calls   int
}

func (f *fakeBalancer) Balance(context.Context) (domain.WalletBalance, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return domain.WalletBalance{}, f.errs[i]
	}
	return f.balance, nil
}

func TestScrape_Observe(t *testing.T) {
	snap := &fakeSnapshotter{snapshots: []string{"Goal: 100,000\nCurrent: 21,000"}}
	obs := NewScrape(snap, "https://example.com/campaign", 3, time.Millisecond)

	got, err := obs.Observe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceScrapedText, got.Source)
	assert.Equal(t, "Goal: 100,000\nCurrent: 21,000", got.Snapshot)
	assert.Equal(t, "https://example.com/campaign", snap.gotURL)
	assert.Equal(t, 1, snap.calls)
}

func TestScrape_Observe_RetriesTransientFailure(t *testing.T) {
	snap := &fakeSnapshotter{
		snapshots: []string{"", "", "recovered"},
		errs:      []error{errors.New("timeout"), errors.New("timeout"), nil},
	}
	obs := NewScrape(snap, "https://example.com/campaign", 3, time.Millisecond)

	got, err := obs.Observe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "recovered", got.Snapshot)
	assert.Equal(t, 3, snap.calls)
}

func TestScrape_Observe_ExhaustsRetries(t *testing.T) {
	snap := &fakeSnapshotter{
		errs: []error{errors.New("down"), errors.New("down"), errors.New("down")},
	}
	obs := NewScrape(snap, "https://example.com/campaign", 3, time.Millisecond)

	_, err := obs.Observe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch funding page")
	assert.Equal(t, 3, snap.calls)
}

func TestWallet_Observe(t *testing.T) {
	provider := &fakeBalancer{balance: domain.WalletBalance{Balance: 42000, Unit: "sat", Currency: "BTC"}}
	obs := NewWallet(provider, 3, time.Millisecond)

	got, err := obs.Observe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceWalletBalance, got.Source)
	assert.Equal(t, int64(42000), got.Amount)
	assert.Empty(t, got.Snapshot)
}

func TestWallet_Observe_Retries(t *testing.T) {
	provider := &fakeBalancer{
		balance: domain.WalletBalance{Balance: 42000},
		errs:    []error{errors.New("flaky"), nil},
	}
	obs := NewWallet(provider, 3, time.Millisecond)

	got, err := obs.Observe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42000), got.Amount)
	assert.Equal(t, 2, provider.calls)
}

func TestWallet_Observe_Failure(t *testing.T) {
	provider := &fakeBalancer{
		errs: []error{errors.New("unauthorized"), errors.New("unauthorized")},
	}
	obs := NewWallet(provider, 2, time.Millisecond)

	_, err := obs.Observe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch wallet balance")
}
