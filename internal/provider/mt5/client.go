// Package mt5 talks to a MetaTrader 5 terminal through its local REST
// bridge. The terminal itself exposes no native Go API; the bridge mirrors
// the terminal calls (initialize, copy_rates_range, copy_rates_from,
// shutdown) over HTTP on the loopback interface.
package mt5

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"mt5-history/internal/apperr"
	"mt5-history/internal/model"
	"mt5-history/internal/timeframe"
)

const (
	requestTimeout = 30 * time.Second
	retryCount     = 2
	retryWait      = 500 * time.Millisecond
)

// Client is the live provider. One Connect/Close pair per run; the terminal
// session is a scoped resource released on every exit path.
type Client struct {
	http      *resty.Client
	connected bool
}

// New creates a client against the bridge base URL, e.g. http://127.0.0.1:6542.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(requestTimeout).
			SetRetryCount(retryCount).
			SetRetryWaitTime(retryWait),
	}
}

func (c *Client) Name() string { return "mt5" }

// Connect initializes the terminal session.
func (c *Client) Connect(ctx context.Context) error {
	var status struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/initialize")
	if err != nil {
		return apperr.Errorf(apperr.KindConnection, "terminal bridge unreachable: %w", err)
	}
	if resp.StatusCode() != http.StatusOK || !status.OK {
		return apperr.Errorf(apperr.KindConnection, "terminal init failed: status %d: %s", resp.StatusCode(), status.Error)
	}
	c.connected = true
	return nil
}

// FetchRange requests all bars with open time inside [start, end].
func (c *Client) FetchRange(ctx context.Context, symbol string, tf timeframe.Spec, start, end time.Time) ([]model.RawBar, error) {
	return c.rates(ctx, "/copy_rates_range", symbol, tf, map[string]string{
		"date_from": strconv.FormatInt(start.Unix(), 10),
		"date_to":   strconv.FormatInt(end.Unix(), 10),
	})
}

// FetchBatch requests up to max bars at or before anchor, walking backward.
func (c *Client) FetchBatch(ctx context.Context, symbol string, tf timeframe.Spec, anchor time.Time, max int) ([]model.RawBar, error) {
	return c.rates(ctx, "/copy_rates_from", symbol, tf, map[string]string{
		"date_from": strconv.FormatInt(anchor.Unix(), 10),
		"count":     strconv.Itoa(max),
	})
}

func (c *Client) rates(ctx context.Context, path, symbol string, tf timeframe.Spec, params map[string]string) ([]model.RawBar, error) {
	if !c.connected {
		return nil, fmt.Errorf("not connected")
	}
	var bars []model.RawBar
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		SetQueryParam("timeframe", strconv.FormatUint(uint64(tf.Code), 10)).
		SetQueryParams(params).
		SetResult(&bars).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s %s: %w", path, symbol, tf.Label, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%s %s %s: status %d: %s", path, symbol, tf.Label, resp.StatusCode(), resp.String())
	}
	if bars == nil {
		bars = []model.RawBar{}
	}
	return bars, nil
}

// Close shuts the terminal session down. Safe to call when Connect failed.
func (c *Client) Close() error {
	if !c.connected {
		return nil
	}
	c.connected = false
	_, err := c.http.R().Get("/shutdown")
	return err
}
