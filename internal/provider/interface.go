package provider

import (
	"context"
	"time"

	"mt5-history/internal/model"
	"mt5-history/internal/timeframe"
)

// Provider is the abstraction over a price-history source. The application
// selects one implementation at startup (live terminal bridge or mock);
// there is no runtime fallback between them.
//
// Connect acquires the terminal session and Close releases it; Close must be
// called on every exit path. Bars returned by Fetch* are ordered by
// non-decreasing time within one response.
type Provider interface {
	// Connect establishes the terminal session.
	Connect(ctx context.Context) error

	// FetchRange returns all bars with open time inside [start, end].
	FetchRange(ctx context.Context, symbol string, tf timeframe.Spec, start, end time.Time) ([]model.RawBar, error)

	// FetchBatch returns up to max bars at or before anchor, walking
	// backward in history. Used by the backfill paging loop.
	FetchBatch(ctx context.Context, symbol string, tf timeframe.Spec, anchor time.Time, max int) ([]model.RawBar, error)

	// Name identifies the provider in logs.
	Name() string

	// Close releases the terminal session.
	Close() error
}
