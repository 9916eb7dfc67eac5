package wallet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Balance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"balance": 42000, "unit": "sat", "currency": "BTC"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-token", time.Second)
	balance, err := client.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42000), balance.Balance)
	assert.Equal(t, "sat", balance.Unit)
	assert.Equal(t, "BTC", balance.Currency)
}

func TestClient_Balance_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := New(srv.URL, "bad-token", time.Second)
		_, err := client.Balance(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := New(srv.URL, "test-token", time.Second)
		_, err := client.Balance(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode balance response")
	})

	t.Run("negative balance", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"balance": -5, "unit": "sat", "currency": "BTC"}`))
		}))
		defer srv.Close()

		client := New(srv.URL, "test-token", time.Second)
		_, err := client.Balance(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative balance")
	})

	t.Run("connection refused", func(t *testing.T) {
		client := New("http://127.0.0.1:1", "test-token", time.Second)
		_, err := client.Balance(context.Background())
		require.Error(t, err)
	})
}
