package models

import "time"

// QuoteSource tells where a spot price came from.
type QuoteSource string

const (
	// SourceLive marks a price fetched from the metals API.
	SourceLive QuoteSource = "live"
	// SourceFallback marks the configured substitute used when no live
	// quote could be obtained.
	SourceFallback QuoteSource = "fallback"
)

// PriceQuote is one resolved spot price in USD per troy ounce. Quotes are
// immutable; a later fetch supersedes a quote rather than mutating it.
type PriceQuote struct {
	Value     float64     `json:"value"`
	FetchedAt time.Time   `json:"fetched_at"`
	Source    QuoteSource `json:"source"`
}

// Live reports whether the quote came from the metals API.
func (q PriceQuote) Live() bool {
	return q.Source == SourceLive
}
