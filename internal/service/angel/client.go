package angel

import (
	"context"
	"fmt"
	"time"

	"SentiPulse/internal/domain/models"
	drepo "SentiPulse/internal/domain/repository"
	"SentiPulse/internal/refdata"
	"SentiPulse/internal/service/ratelimit"
	"SentiPulse/pkg/cache"
	xhttp "SentiPulse/pkg/http"
	"SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"
)

const (
	quotePath = "/rest/secure/angelbroking/market/v1/quote/"
	oiPath    = "/rest/secure/angelbroking/historical/v1/getOIData"
	pcrPath   = "/rest/secure/angelbroking/marketData/v1/putCallRatio"

	quoteLimitKey = "angel.quote"
	oiLimitKey    = "angel.oi"
)

// Config holds broker client tuning.
type Config struct {
	BaseURL           string
	BatchSize         int
	BatchDelay        time.Duration
	MaxRequestsPerSec float64
}

// Client fetches quote snapshots from the broker. It implements
// repository.QuoteSource.
type Client struct {
	cfg     Config
	session *Session
	http    *xhttp.Client
	cache   cache.Service
	limiter *ratelimit.Limiter
	metrics drepo.Metrics
	log     *logger.Logger
}

// NewClient creates a broker quote source. The cache holds previous-day
// open interest per token so the historical endpoint is hit at most once
// per token per day.
func NewClient(cfg Config, session *Session, httpClient *xhttp.Client, c cache.Service, metrics drepo.Metrics, log *logger.Logger) *Client {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRequestsPerSec <= 0 {
		cfg.MaxRequestsPerSec = 2
	}
	return &Client{
		cfg:     cfg,
		session: session,
		http:    httpClient,
		cache:   c,
		limiter: ratelimit.New(),
		metrics: metrics,
		log:     log,
	}
}

// FetchSnapshot retrieves quotes for every tracked universe plus the
// broker's put/call ratio table.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.MarketSnapshot, error) {
	start := time.Now()
	snapshot := &models.MarketSnapshot{
		FetchedAt: util.NowIST(),
		Data:      make(map[models.Index]*models.IndexData),
	}

	for _, u := range refdata.Universes() {
		stocks, err := c.fetchQuotes(ctx, models.ExchangeNSE, u.Stocks)
		if err != nil {
			return nil, fmt.Errorf("fetch %s stocks: %w", u.Index, err)
		}
		futures, err := c.fetchQuotes(ctx, models.ExchangeNFO, u.Futures)
		if err != nil {
			return nil, fmt.Errorf("fetch %s futures: %w", u.Index, err)
		}
		snapshot.Data[u.Index] = &models.IndexData{Stocks: stocks, Futures: futures}
	}

	pcr, err := c.fetchPCR(ctx)
	if err != nil {
		// PCR is informational; the scores degrade to their proxy.
		c.log.Warn("pcr fetch failed", logger.Error(err))
		c.metrics.RecordError("pcr_fetch")
		pcr = map[string]float64{}
	}
	snapshot.PCRData = pcr

	c.metrics.RecordLatency("fetch_snapshot", time.Since(start).Seconds())
	return snapshot, nil
}

type quoteRequest struct {
	Mode           string              `json:"mode"`
	ExchangeTokens map[string][]string `json:"exchangeTokens"`
}

type quoteItem struct {
	Exchange      string  `json:"exchange"`
	TradingSymbol string  `json:"tradingSymbol"`
	SymbolToken   string  `json:"symbolToken"`
	LTP           float64 `json:"ltp"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	NetChange     float64 `json:"netChange"`
	PercentChange float64 `json:"percentChange"`
	TradeVolume   int64   `json:"tradeVolume"`
	OpnInterest   int64   `json:"opnInterest"`
}

type quoteResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Fetched []quoteItem `json:"fetched"`
	} `json:"data"`
}

func (c *Client) fetchQuotes(ctx context.Context, exchange models.Exchange, instruments []refdata.Instrument) (map[string]models.Quote, error) {
	byToken := make(map[string]refdata.Instrument, len(instruments))
	tokens := make([]string, 0, len(instruments))
	for _, in := range instruments {
		byToken[in.Token] = in
		tokens = append(tokens, in.Token)
	}

	quotes := make(map[string]models.Quote, len(instruments))
	for start := 0; start < len(tokens); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		if start > 0 && c.cfg.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.BatchDelay):
			}
		}
		if err := c.limiter.Wait(ctx, quoteLimitKey, 1, c.cfg.MaxRequestsPerSec); err != nil {
			return nil, err
		}

		var resp quoteResponse
		err := c.sendAuthorized(ctx, xhttp.MethodPost, c.cfg.BaseURL+quotePath, quoteRequest{
			Mode:           "FULL",
			ExchangeTokens: map[string][]string{string(exchange): batch},
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("quote batch: %w", err)
		}
		if !resp.Status {
			return nil, fmt.Errorf("quote batch rejected: %s", resp.Message)
		}

		for _, item := range resp.Data.Fetched {
			info, ok := byToken[item.SymbolToken]
			if !ok {
				continue
			}

			q := models.Quote{
				Token:         item.SymbolToken,
				Symbol:        info.Symbol,
				Exchange:      exchange,
				LTP:           item.LTP,
				Open:          item.Open,
				High:          item.High,
				Low:           item.Low,
				Close:         item.Close,
				PercentChange: item.PercentChange,
				Volume:        item.TradeVolume,
				OpenInterest:  item.OpnInterest,
				Weight:        info.Weight,
			}

			if exchange == models.ExchangeNFO && q.OpenInterest > 0 {
				prev, err := c.previousDayOI(ctx, item.SymbolToken)
				if err != nil {
					c.log.Warn("previous-day oi lookup failed",
						logger.String("symbol", info.Symbol), logger.Error(err))
					c.metrics.RecordError("oi_lookup")
				} else if prev > 0 {
					q.OIChange = q.OpenInterest - prev
				}
			}

			quotes[info.Symbol] = q
		}
	}

	c.metrics.RecordInstrumentCount(string(exchange), len(quotes))
	return quotes, nil
}

type oiRequest struct {
	Exchange    string `json:"exchange"`
	SymbolToken string `json:"symboltoken"`
	Interval    string `json:"interval"`
	FromDate    string `json:"fromdate"`
	ToDate      string `json:"todate"`
}

type oiResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    []struct {
		Time string `json:"time"`
		OI   int64  `json:"oi"`
	} `json:"data"`
}

// previousDayOI returns the last open interest reading of the previous
// trading day for a token, cached per (token, day).
func (c *Client) previousDayOI(ctx context.Context, token string) (int64, error) {
	today := util.NowIST().Format("2006-01-02")
	key := cache.Key("oi", token, today)

	var cached int64
	if err := c.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	if err := c.limiter.Wait(ctx, oiLimitKey, 1, c.cfg.MaxRequestsPerSec); err != nil {
		return 0, err
	}

	// Last ten minutes of the previous session carry the closing OI.
	prevDay := util.PreviousTradingDay(util.NowIST())
	var resp oiResponse
	err := c.sendAuthorized(ctx, xhttp.MethodPost, c.cfg.BaseURL+oiPath, oiRequest{
		Exchange:    string(models.ExchangeNFO),
		SymbolToken: token,
		Interval:    "THREE_MINUTE",
		FromDate:    prevDay.Format("2006-01-02") + " 15:20",
		ToDate:      prevDay.Format("2006-01-02") + " 15:30",
	}, &resp)
	if err != nil {
		return 0, err
	}
	if !resp.Status || len(resp.Data) == 0 {
		// Cache the miss so the endpoint is not hammered all day.
		_ = c.cache.Set(ctx, key, int64(0), 24*time.Hour)
		return 0, nil
	}

	prev := resp.Data[len(resp.Data)-1].OI
	_ = c.cache.Set(ctx, key, prev, 24*time.Hour)
	return prev, nil
}

type pcrResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    []struct {
		PCR           float64 `json:"pcr"`
		TradingSymbol string  `json:"tradingSymbol"`
	} `json:"data"`
}

func (c *Client) fetchPCR(ctx context.Context) (map[string]float64, error) {
	if err := c.limiter.Wait(ctx, quoteLimitKey, 1, c.cfg.MaxRequestsPerSec); err != nil {
		return nil, err
	}

	var resp pcrResponse
	if err := c.sendAuthorized(ctx, xhttp.MethodGet, c.cfg.BaseURL+pcrPath, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, fmt.Errorf("pcr rejected: %s", resp.Message)
	}

	out := make(map[string]float64, len(resp.Data))
	for _, item := range resp.Data {
		out[item.TradingSymbol] = item.PCR
	}
	return out, nil
}

// sendAuthorized sends a request with the session token, refreshing the
// session and retrying once when the broker rejects it.
func (c *Client) sendAuthorized(ctx context.Context, method, url string, body, dest interface{}) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	err = c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  method,
		URL:     url,
		Headers: c.session.authHeaders(token),
		Body:    body,
	}, dest)
	if err == nil {
		return nil
	}

	token, refreshErr := c.session.Refresh(ctx)
	if refreshErr != nil {
		return fmt.Errorf("%v (refresh failed: %w)", err, refreshErr)
	}

	return c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  method,
		URL:     url,
		Headers: c.session.authHeaders(token),
		Body:    body,
	}, dest)
}
