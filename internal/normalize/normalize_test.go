package normalize

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mt5-history/internal/apperr"
	"mt5-history/internal/model"
)

func rawBar(ts int64) model.RawBar {
	return model.RawBar{Time: ts, Open: 1.1, High: 1.2, Low: 1.0, Close: 1.15, TickVolume: 42}
}

func TestLiveBarsConvertsFields(t *testing.T) {
	ts := time.Date(2023, 7, 1, 12, 30, 0, 0, time.Local)
	bars, err := LiveBars([]model.RawBar{rawBar(ts.Unix())})
	require.NoError(t, err)
	require.Len(t, bars, 1)

	assert.Equal(t, "2023-07-01 12:30:00", bars[0].Time)
	assert.Equal(t, 1.1, bars[0].Open)
	assert.Equal(t, 1.2, bars[0].High)
	assert.Equal(t, 1.0, bars[0].Low)
	assert.Equal(t, 1.15, bars[0].Close)
	assert.Equal(t, int64(42), bars[0].Volume)
}

func TestLiveBarsRejectsNonFinitePrices(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		r := rawBar(100)
		r.Close = bad
		_, err := LiveBars([]model.RawBar{rawBar(50), r})
		require.Error(t, err)
		assert.Equal(t, apperr.KindMalformedBar, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "close")
	}
}

func TestLiveBarsRejectsNegativeVolume(t *testing.T) {
	r := rawBar(100)
	r.TickVolume = -1
	_, err := LiveBars([]model.RawBar{r})
	require.Error(t, err)
	assert.Equal(t, apperr.KindMalformedBar, apperr.KindOf(err))
}

// Live data is never "fixed": an inverted high/low pair from the terminal
// must survive conversion untouched.
func TestLiveBarsPreservesInvertedHighLow(t *testing.T) {
	r := model.RawBar{Time: 100, Open: 2.0, High: 1.5, Low: 2.5, Close: 2.1, TickVolume: 1}
	bars, err := LiveBars([]model.RawBar{r})
	require.NoError(t, err)
	assert.Equal(t, 1.5, bars[0].High)
	assert.Equal(t, 2.5, bars[0].Low)
}

func TestLiveBarsEmpty(t *testing.T) {
	bars, err := LiveBars(nil)
	require.NoError(t, err)
	assert.Empty(t, bars)
}
