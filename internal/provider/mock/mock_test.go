package mock

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mt5-history/internal/timeframe"
)

func m5(t *testing.T) timeframe.Spec {
	tf, err := timeframe.Resolve("M5")
	require.NoError(t, err)
	return tf
}

func TestGenerateContainmentInvariant(t *testing.T) {
	p := New(1)
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)
	bars := p.Generate(start, start.Add(24*time.Hour), time.Minute, 500)

	require.Len(t, bars, 500)
	for i, b := range bars {
		assert.GreaterOrEqual(t, b.High, math.Max(b.Open, b.Close), "bar %d high", i)
		assert.LessOrEqual(t, b.Low, math.Min(b.Open, b.Close), "bar %d low", i)
		assert.GreaterOrEqual(t, b.TickVolume, int64(0), "bar %d volume", i)
	}
}

func TestGenerateCountCappedByRange(t *testing.T) {
	p := New(1)
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)

	// One hour of M5 derives 13 bars inclusive; count caps below that.
	bars := p.Generate(start, start.Add(time.Hour), 5*time.Minute, 1000)
	assert.Len(t, bars, 13)

	bars = p.Generate(start, start.Add(time.Hour), 5*time.Minute, 4)
	assert.Len(t, bars, 4)

	assert.Empty(t, p.Generate(start, start.Add(-time.Hour), 5*time.Minute, 4))
}

func TestGenerateEvenSpacingAndWalkContinuity(t *testing.T) {
	p := New(7)
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)
	bars := p.Generate(start, start.Add(time.Hour), 5*time.Minute, 1000)

	for i := 1; i < len(bars); i++ {
		assert.Equal(t, int64(300), bars[i].Time-bars[i-1].Time, "spacing at %d", i)
		assert.Equal(t, bars[i-1].Close, bars[i].Open, "walk continuity at %d", i)
		assert.LessOrEqual(t, math.Abs(bars[i].Close-bars[i].Open), maxStep, "bounded step at %d", i)
	}
}

func TestSeededDeterminism(t *testing.T) {
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)
	a := New(42).Generate(start, start.Add(time.Hour), time.Minute, 100)
	b := New(42).Generate(start, start.Add(time.Hour), time.Minute, 100)
	assert.Equal(t, a, b)
}

func TestFetchRangeTwelveBars(t *testing.T) {
	p := New(3)
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)
	end := start.Add(55 * time.Minute)

	bars, err := p.FetchRange(context.Background(), "EURUSD", m5(t), start, end)
	require.NoError(t, err)
	assert.Len(t, bars, 12)
	assert.Equal(t, start.Unix(), bars[0].Time)
	assert.Equal(t, end.Unix(), bars[len(bars)-1].Time)
}

func TestFetchBatchBoundedByEarliest(t *testing.T) {
	p := New(3)
	tf := m5(t)
	p.Earliest = time.Date(2023, 7, 1, 0, 0, 0, 0, time.Local)
	anchor := p.Earliest.Add(10 * tf.Duration())

	bars, err := p.FetchBatch(context.Background(), "EURUSD", tf, anchor, 100)
	require.NoError(t, err)
	assert.Len(t, bars, 11) // earliest..anchor inclusive

	bars, err = p.FetchBatch(context.Background(), "EURUSD", tf, p.Earliest.Add(-tf.Duration()), 100)
	require.NoError(t, err)
	assert.Empty(t, bars)
}
