// Package backfill assembles a symbol's full bar history by paging backward
// from the present against a provider with a bounded per-request batch size.
package backfill

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"mt5-history/internal/apperr"
	"mt5-history/internal/model"
	"mt5-history/internal/provider"
	"mt5-history/internal/timeframe"
)

// DefaultBatchSize is the terminal's usual per-request bar limit.
const DefaultBatchSize = 10000

// Backfiller pages backward through history. Batches are strictly
// sequential: each request's anchor is the earliest timestamp of the
// previous response.
type Backfiller struct {
	provider  provider.Provider
	batchSize int
	now       func() time.Time // injectable clock for tests
}

func New(p provider.Provider, batchSize int) *Backfiller {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Backfiller{provider: p, batchSize: batchSize, now: time.Now}
}

// Run fetches every available bar for symbol/tf, merged ascending with
// boundary duplicates collapsed. A failed page discards the partial
// accumulation: the caller never sees a silently truncated history.
func (b *Backfiller) Run(ctx context.Context, symbol string, tf timeframe.Spec) ([]model.RawBar, error) {
	cursor := b.now()
	var all []model.RawBar

	for page := 1; ; page++ {
		batch, err := b.provider.FetchBatch(ctx, symbol, tf, cursor, b.batchSize)
		if err != nil {
			return nil, apperr.Errorf(apperr.KindFetch,
				"backfill %s %s page %d (anchor %s): %w", symbol, tf.Label, page, cursor.Format(time.RFC3339), err)
		}
		if len(batch) == 0 {
			break // no more history
		}
		all = append(all, batch...)

		earliest := earliestTime(batch)
		slog.Debug("backfill page", "symbol", symbol, "page", page, "bars", len(batch), "earliest", earliest)

		if len(batch) < b.batchSize {
			break // provider exhausted its history
		}
		if !earliest.Before(cursor) {
			// Anchor did not move backward; stop rather than loop forever.
			break
		}
		cursor = earliest
	}

	return merge(all), nil
}

func earliestTime(batch []model.RawBar) time.Time {
	min := batch[0].Time
	for _, bar := range batch[1:] {
		if bar.Time < min {
			min = bar.Time
		}
	}
	return time.Unix(min, 0)
}

// merge sorts ascending by time and collapses exact-timestamp duplicates
// from overlapping batch boundaries, keeping the first occurrence.
func merge(bars []model.RawBar) []model.RawBar {
	if len(bars) == 0 {
		return []model.RawBar{}
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time < bars[j].Time })

	out := bars[:1]
	for _, bar := range bars[1:] {
		if bar.Time != out[len(out)-1].Time {
			out = append(out, bar)
		}
	}
	return out
}
