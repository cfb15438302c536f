package model

// RawBar is one price record exactly as the terminal reports it.
// Time is epoch seconds; Spread and RealVolume are terminal extras that the
// canonical output does not carry.
type RawBar struct {
	Time       int64   `json:"time"`
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Close      float64 `json:"close"`
	TickVolume int64   `json:"tick_volume"`
	Spread     int64   `json:"spread,omitempty"`
	RealVolume int64   `json:"real_volume,omitempty"`
}

// Bar is the canonical OHLCV record written to output files.
// Shared by normalize and saver for both json and parquet serialization;
// field order here fixes the JSON key order and the parquet column order.
type Bar struct {
	Time   string  `json:"time" parquet:"time"` // local time, 2006-01-02 15:04:05
	Open   float64 `json:"open" parquet:"open"`
	High   float64 `json:"high" parquet:"high"`
	Low    float64 `json:"low" parquet:"low"`
	Close  float64 `json:"close" parquet:"close"`
	Volume int64   `json:"volume" parquet:"volume"`
}
