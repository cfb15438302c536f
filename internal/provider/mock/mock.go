// Package mock generates synthetic but internally consistent OHLCV history.
// It stands in for the terminal bridge in development and tests, selected as
// an explicit mode at startup, never as a silent fallback.
package mock

import (
	"context"
	"math"
	"math/rand"
	"time"

	"mt5-history/internal/model"
	"mt5-history/internal/timeframe"
)

const (
	basePrice = 1.1000 // first bar seed
	maxStep   = 0.0020 // bounded random-walk step between bars
	maxWick   = 0.0010 // extra widening of high/low beyond the body
	maxVolume = 500
)

// Provider serves generated bars through the same interface the live bridge
// implements. History is bounded below by Earliest so backfill terminates.
type Provider struct {
	rng      *rand.Rand
	last     float64 // previous close carried across generated bars
	Earliest time.Time
}

// New creates a mock provider. The same seed yields the same history;
// pass 0 to seed from the clock.
func New(seed int64) *Provider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Provider{
		rng:      rand.New(rand.NewSource(seed)),
		last:     basePrice,
		Earliest: time.Now().AddDate(0, -3, 0),
	}
}

func (p *Provider) Connect(context.Context) error { return nil }
func (p *Provider) Name() string                  { return "mock" }
func (p *Provider) Close() error                  { return nil }

// FetchRange generates evenly spaced bars covering [start, end].
func (p *Provider) FetchRange(_ context.Context, _ string, tf timeframe.Spec, start, end time.Time) ([]model.RawBar, error) {
	return p.Generate(start, end, tf.Duration(), math.MaxInt), nil
}

// Generate produces exactly min(count, bars derivable from [start, end])
// bars spaced by step starting at start.
func (p *Provider) Generate(start, end time.Time, step time.Duration, count int) []model.RawBar {
	if end.Before(start) || count <= 0 {
		return []model.RawBar{}
	}
	if derivable := int(end.Sub(start)/step) + 1; derivable < count {
		count = derivable
	}
	return p.series(start, step, count)
}

// FetchBatch generates up to max bars at or before anchor, stopping at the
// provider's earliest available history.
func (p *Provider) FetchBatch(_ context.Context, _ string, tf timeframe.Spec, anchor time.Time, max int) ([]model.RawBar, error) {
	step := tf.Duration()
	anchor = anchor.Truncate(step)
	if anchor.Before(p.Earliest) {
		return []model.RawBar{}, nil
	}
	available := int(anchor.Sub(p.Earliest)/step) + 1
	count := max
	if available < count {
		count = available
	}
	start := anchor.Add(-time.Duration(count-1) * step)
	return p.series(start, step, count), nil
}

// series emits count bars spaced by step starting at start. Each open is a
// bounded random walk from the previous close; high and low are widened so
// high >= max(open, close) and low <= min(open, close).
func (p *Provider) series(start time.Time, step time.Duration, count int) []model.RawBar {
	bars := make([]model.RawBar, 0, count)
	for i := 0; i < count; i++ {
		open := p.last
		close := open + (p.rng.Float64()*2-1)*maxStep
		high := math.Max(open, close) + p.rng.Float64()*maxWick
		low := math.Min(open, close) - p.rng.Float64()*maxWick
		bars = append(bars, model.RawBar{
			Time:       start.Add(time.Duration(i) * step).Unix(),
			Open:       open,
			High:       high,
			Low:        low,
			Close:      close,
			TickVolume: int64(p.rng.Intn(maxVolume)),
			Spread:     int64(p.rng.Intn(5)),
		})
		p.last = close
	}
	return bars
}
