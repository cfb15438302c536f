// Package normalize converts raw terminal records into canonical bars.
//
// Live data passes through unchanged apart from type/unit conversion: a bar
// whose high sits below its close is reported exactly as the terminal sent
// it. Only the mock generator (internal/provider/mock) is allowed to widen
// high/low to restore containment, at generation time.
package normalize

import (
	"math"
	"time"

	"mt5-history/internal/apperr"
	"mt5-history/internal/model"
)

// TimeLayout is the canonical bar timestamp rendering, local time.
const TimeLayout = "2006-01-02 15:04:05"

// LiveBars converts every raw record. A single malformed record fails the
// whole batch; skipping it would silently break time-series continuity.
func LiveBars(raw []model.RawBar) ([]model.Bar, error) {
	bars := make([]model.Bar, len(raw))
	for i, r := range raw {
		b, err := liveBar(r)
		if err != nil {
			return nil, apperr.Errorf(apperr.KindMalformedBar, "bar %d (time=%d): %w", i, r.Time, err)
		}
		bars[i] = b
	}
	return bars, nil
}

func liveBar(r model.RawBar) (model.Bar, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"open", r.Open}, {"high", r.High}, {"low", r.Low}, {"close", r.Close},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return model.Bar{}, apperr.Errorf(apperr.KindMalformedBar, "non-finite %s %v", f.name, f.value)
		}
	}
	if r.TickVolume < 0 {
		return model.Bar{}, apperr.Errorf(apperr.KindMalformedBar, "negative volume %d", r.TickVolume)
	}
	return model.Bar{
		Time:   time.Unix(r.Time, 0).Format(TimeLayout),
		Open:   r.Open,
		High:   r.High,
		Low:    r.Low,
		Close:  r.Close,
		Volume: r.TickVolume,
	}, nil
}
