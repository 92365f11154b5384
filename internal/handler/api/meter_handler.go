package api

import (
	models "SentiPulse/internal/domain/models"
	drepo "SentiPulse/internal/domain/repository"
	"SentiPulse/internal/usecase"
	xhttp "SentiPulse/pkg/http"
	xlogger "SentiPulse/pkg/logger"
	"SentiPulse/pkg/util"

	"github.com/labstack/echo/v4"
)

// Broadcaster pushes refresh results to live subscribers. It is
// optional; a nil Broadcaster disables streaming.
type Broadcaster interface {
	Broadcast(v interface{})
}

// MeterHandler exposes the sentiment meter over HTTP.
type MeterHandler struct {
	logger    *xlogger.Logger
	refresher *usecase.Refresher
	reader    *usecase.HistoryReader
	meter     *usecase.CompositeMeter
	cache     *usecase.SnapshotCache
	store     drepo.HistoryStore
	broadcast Broadcaster
}

func NewMeterHandler(logger *xlogger.Logger, refresher *usecase.Refresher, reader *usecase.HistoryReader,
	meter *usecase.CompositeMeter, cache *usecase.SnapshotCache, store drepo.HistoryStore,
	broadcast Broadcaster) *MeterHandler {
	return &MeterHandler{
		logger:    logger,
		refresher: refresher,
		reader:    reader,
		meter:     meter,
		cache:     cache,
		store:     store,
		broadcast: broadcast,
	}
}

func (h *MeterHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.GET("/keepalive", h.Keepalive)
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.GET("/refresh-data", h.RefreshData)
	g.GET("/data/:type", h.Data)
	g.GET("/meters", h.Meters)
	g.GET("/chart-data", h.ChartData)
	g.GET("/price-action", h.PriceAction)
	g.GET("/price-action-history", h.PriceActionHistory)
	g.GET("/composite-meter", h.CompositeMeter)
}

func (h *MeterHandler) Ping(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":    "ok",
		"timestamp": util.NowIST().Format(util.HistoryTimeLayout),
	})
}

func (h *MeterHandler) Keepalive(c echo.Context) error {
	resp := map[string]interface{}{
		"status":        "healthy",
		"timestamp":     util.NowIST().Format(util.HistoryTimeLayout),
		"hasMarketData": h.cache.HasData(),
	}
	if t := h.cache.LastUpdate(); !t.IsZero() {
		resp["lastUpdate"] = t.In(util.IST).Format(util.HistoryTimeLayout)
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *MeterHandler) Health(c echo.Context) error {
	if err := h.store.Health(c.Request().Context()); err != nil {
		h.logger.Error("history store unhealthy", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("history store unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":        "healthy",
		"hasMarketData": h.cache.HasData(),
	})
}

func (h *MeterHandler) RefreshData(c echo.Context) error {
	result, err := h.refresher.Refresh(c.Request().Context())
	if err != nil {
		h.logger.Error("refresh failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("refresh failed").WithError(err))
	}
	if h.broadcast != nil {
		h.broadcast.Broadcast(result)
	}
	return xhttp.SuccessResponse(c, result)
}

func (h *MeterHandler) Data(c echo.Context) error {
	snapshot := h.cache.Snapshot()
	if snapshot == nil {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError("no market data yet, call /api/refresh-data first"))
	}

	kind := c.Param("type")
	switch kind {
	case "pcr":
		return xhttp.SuccessResponse(c, map[string]interface{}{
			"pcrData":    snapshot.PCRData,
			"lastUpdate": lastUpdateLabel(h.cache),
		})
	case "nifty50":
		return h.quoteData(c, snapshot.ForIndex(models.IndexNifty).Stocks, nil)
	case "banknifty":
		return h.quoteData(c, snapshot.ForIndex(models.IndexBankNifty).Stocks, nil)
	case "niftyfut":
		return h.quoteData(c, snapshot.ForIndex(models.IndexNifty).Futures, h.cache.Scores(models.IndexNifty))
	case "bankfut":
		return h.quoteData(c, snapshot.ForIndex(models.IndexBankNifty).Futures, h.cache.Scores(models.IndexBankNifty))
	default:
		return xhttp.BadRequestResponse(c, xhttp.BadRequestErrorf("invalid data type %q", kind))
	}
}

// quoteData lists quotes for one segment; futures segments also carry
// the live meter reading computed from them.
func (h *MeterHandler) quoteData(c echo.Context, quotes map[string]models.Quote, scores *models.IndexScores) error {
	resp := map[string]interface{}{
		"data":       quoteViews(quotes),
		"lastUpdate": lastUpdateLabel(h.cache),
	}
	if scores != nil {
		resp["meter"] = map[string]interface{}{
			"value":  scores.ISS,
			"status": scores.ISSStatus,
		}
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *MeterHandler) Meters(c echo.Context) error {
	if !h.cache.HasData() {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError("no market data yet, call /api/refresh-data first"))
	}
	meters := make(map[string]*models.IndexScores, len(models.Indexes()))
	for _, idx := range models.Indexes() {
		meters[idx.String()] = h.cache.Scores(idx)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"meters":     meters,
		"lastUpdate": lastUpdateLabel(h.cache),
	})
}

// historyRangeRequest narrows the optional lookback window. Zero means
// the endpoint's default window.
type historyRangeRequest struct {
	Hours int `query:"hours" validate:"gte=0,lte=168"`
}

func (h *MeterHandler) ChartData(c echo.Context) error {
	req := &historyRangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	data, err := h.reader.ChartData(c.Request().Context(), req.Hours)
	if err != nil {
		h.logger.Error("chart data query failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("history query failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, data)
}

// PriceAction reports the live price action reading per index. Absent
// readings are an explicit client error, never a neutral number.
func (h *MeterHandler) PriceAction(c echo.Context) error {
	nifty := h.cache.Scores(models.IndexNifty)
	bank := h.cache.Scores(models.IndexBankNifty)
	if nifty == nil || bank == nil || nifty.PriceAction == nil || bank.PriceAction == nil {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError("unable to calculate price action, insufficient valid data"))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"timestamp": util.NowIST().Format("15:04"),
		"nifty50": map[string]interface{}{
			"priceScore": *nifty.PriceAction,
			"zone":       nifty.PAZone,
		},
		"bankNifty": map[string]interface{}{
			"priceScore": *bank.PriceAction,
			"zone":       bank.PAZone,
		},
		"lastUpdate": lastUpdateLabel(h.cache),
	})
}

func (h *MeterHandler) PriceActionHistory(c echo.Context) error {
	req := &historyRangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	data, err := h.reader.PriceActionHistory(c.Request().Context(), req.Hours)
	if err != nil {
		h.logger.Error("price action history query failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("history query failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, data)
}

func (h *MeterHandler) CompositeMeter(c echo.Context) error {
	req := &historyRangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	data, ok, err := h.meter.Compute(c.Request().Context(), req.Hours)
	if err != nil {
		h.logger.Error("composite meter failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("composite meter failed").WithError(err))
	}
	if !ok {
		return xhttp.BadRequestResponse(c, xhttp.BadRequestError("insufficient history for composite meter"))
	}
	return xhttp.SuccessResponse(c, data)
}

func lastUpdateLabel(cache *usecase.SnapshotCache) string {
	t := cache.LastUpdate()
	if t.IsZero() {
		return ""
	}
	return t.In(util.IST).Format(util.HistoryTimeLayout)
}
