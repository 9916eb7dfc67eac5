package domain

// Source identifies where a donation observation came from
type Source string

// observation sources
const (
	SourceScrapedText   Source = "scraped-text"
	SourceWalletBalance Source = "wallet-balance"
)

// Observation is a point-in-time read of the donation total. For the scrape
// source Snapshot carries the cleaned funding-page text and Amount may be
// zero until extraction runs; for the wallet source Snapshot is empty and
// Amount is the balance.
type Observation struct {
	Amount   int64 // satoshis, non-negative
	Snapshot string
	Source   Source
}

// WalletBalance is the wallet endpoint response
type WalletBalance struct {
	Balance  int64  `json:"balance"`
	Unit     string `json:"unit"`
	Currency string `json:"currency"`
}
