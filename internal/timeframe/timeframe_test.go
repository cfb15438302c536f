package timeframe

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mt5-history/internal/apperr"
)

func TestResolveTotalAndCaseInsensitive(t *testing.T) {
	for _, label := range Labels() {
		upper, err := Resolve(label)
		require.NoError(t, err, label)

		lower, err := Resolve("  " + strings.ToLower(label) + " ")
		require.NoError(t, err, label)
		assert.Equal(t, upper, lower, label)
		assert.Equal(t, label, upper.Label)
	}
	assert.Len(t, Labels(), 18)
}

func TestResolveNativeCodes(t *testing.T) {
	cases := map[string]Code{
		"M1":  1,
		"M5":  5,
		"M30": 30,
		"H1":  16385,
		"H4":  16388,
		"H12": 16396,
		"D1":  16408,
		"W1":  32769,
		"MN1": 49153,
	}
	for label, want := range cases {
		tf, err := Resolve(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, tf.Code, label)
	}
}

func TestResolveUnknownListsAllLabels(t *testing.T) {
	_, err := Resolve("X1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindTimeframe, apperr.KindOf(err))
	for _, label := range Labels() {
		assert.Contains(t, err.Error(), label)
	}
}

func TestDuration(t *testing.T) {
	tf, err := Resolve("H4")
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, tf.Duration())
}
