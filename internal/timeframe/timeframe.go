// Package timeframe maps human timeframe labels (M1, H4, D1, ...) to bar
// resolutions and to the MetaTrader native timeframe codes.
package timeframe

import (
	"sort"
	"strings"
	"time"

	"mt5-history/internal/apperr"
)

// Code is the terminal's native timeframe identifier. Minute frames use the
// minute count directly; hour/day frames set 0x4000 over the hour count,
// weeks are 0x8001 and months 0xC001.
type Code uint32

// Spec pairs a timeframe label with its resolution and native code.
type Spec struct {
	Label   string
	Minutes int
	Code    Code
}

// Duration returns the length of one bar.
func (s Spec) Duration() time.Duration {
	return time.Duration(s.Minutes) * time.Minute
}

// minutesByLabel is the single source of truth for supported labels.
// Native codes are derived from the minute count, never tabulated twice.
var minutesByLabel = map[string]int{
	"M1": 1, "M2": 2, "M3": 3, "M4": 4, "M5": 5,
	"M10": 10, "M15": 15, "M30": 30,
	"H1": 60, "H2": 120, "H3": 180, "H4": 240,
	"H6": 360, "H8": 480, "H12": 720,
	"D1": 1440, "W1": 10080, "MN1": 43200,
}

const (
	hourFlag  = 0x4000
	weekCode  = 0x8001
	monthCode = 0xC001
)

func codeForMinutes(minutes int) Code {
	switch {
	case minutes < 60:
		return Code(minutes)
	case minutes == 10080:
		return weekCode
	case minutes == 43200:
		return monthCode
	default:
		return Code(hourFlag | minutes/60)
	}
}

// Resolve maps a label to its Spec, case-insensitively. Unknown labels fail
// with an error naming every accepted label.
func Resolve(label string) (Spec, error) {
	key := strings.ToUpper(strings.TrimSpace(label))
	minutes, ok := minutesByLabel[key]
	if !ok {
		return Spec{}, apperr.Errorf(apperr.KindTimeframe,
			"unknown timeframe %q, accepted: %s", label, strings.Join(Labels(), ", "))
	}
	return Spec{Label: key, Minutes: minutes, Code: codeForMinutes(minutes)}, nil
}

// Labels returns every supported label ordered by resolution.
func Labels() []string {
	labels := make([]string, 0, len(minutesByLabel))
	for l := range minutesByLabel {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		return minutesByLabel[labels[i]] < minutesByLabel[labels[j]]
	})
	return labels
}
