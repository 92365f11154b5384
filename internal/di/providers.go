package di

import (
	"context"
	"fmt"
	"time"

	drepo "SentiPulse/internal/domain/repository"
	"SentiPulse/internal/handler/api"
	"SentiPulse/internal/handler/ws"
	internalrepo "SentiPulse/internal/repository"
	"SentiPulse/internal/service/angel"
	"SentiPulse/internal/service/sheets"
	"SentiPulse/internal/services/composite"
	"SentiPulse/internal/services/scoring"
	"SentiPulse/internal/usecase"
	pkgcache "SentiPulse/pkg/cache"
	pkgch "SentiPulse/pkg/clickhouse"
	"SentiPulse/pkg/config"
	xhttp "SentiPulse/pkg/http"
	pkgkafka "SentiPulse/pkg/kafka"
	"SentiPulse/pkg/logger"
	"SentiPulse/pkg/metrics"
	"SentiPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	return logger.New(&logger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the quote cache backend selected by config.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		return pkgcache.NewRedisCache(
			pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
			pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		)
	}
	return pkgcache.NewMemoryCache(), nil
}

// ProvideHTTPClient creates the outbound HTTP client for broker calls.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Angel.Timeout))
}

// ProvideAngelSession creates the broker auth session.
func ProvideAngelSession(cfg *config.Config, client *xhttp.Client, log *logger.Logger) *angel.Session {
	creds := angel.Credentials{
		APIKey:     cfg.Angel.APIKey,
		ClientCode: cfg.Angel.ClientCode,
		PIN:        cfg.Angel.PIN,
		TOTPSecret: cfg.Angel.TOTPSecret,
		LocalIP:    cfg.Angel.LocalIP,
		PublicIP:   cfg.Angel.PublicIP,
		MACAddress: cfg.Angel.MACAddress,
	}
	return angel.NewSession(creds, cfg.Angel.BaseURL, client, log)
}

// ProvideQuoteSource creates the broker quote client.
func ProvideQuoteSource(cfg *config.Config, session *angel.Session, client *xhttp.Client,
	cache pkgcache.Service, m drepo.Metrics, log *logger.Logger) drepo.QuoteSource {
	return angel.NewClient(angel.Config{
		BaseURL:           cfg.Angel.BaseURL,
		BatchSize:         cfg.Angel.BatchSize,
		BatchDelay:        cfg.Angel.BatchDelay,
		MaxRequestsPerSec: cfg.Angel.MaxRequests,
	}, session, client, cache, m, log)
}

// ProvideHistoryStore creates the history backend selected by config.
func ProvideHistoryStore(cfg *config.Config, log *logger.Logger) (drepo.HistoryStore, error) {
	if cfg.History.Backend == "clickhouse" {
		return provideClickHouseHistory(cfg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	store, err := sheets.NewStore(ctx, cfg.History.Sheets, log)
	if err != nil {
		return nil, fmt.Errorf("sheets store: %w", err)
	}
	return store, nil
}

func provideClickHouseHistory(cfg *config.Config) (drepo.HistoryStore, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	table := cfg.ClickHouse.Database + ".sentiment_history"
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.HistorySchema(table)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return internalrepo.NewClickHouseHistory(client.DB(), table), nil
}

// ProvidePublisher creates the Kafka publisher, or nil when streaming
// is disabled.
func ProvidePublisher(cfg *config.Config) (drepo.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideSnapshotCache creates the in-process serving cache.
func ProvideSnapshotCache() *usecase.SnapshotCache {
	return usecase.NewSnapshotCache()
}

// ProvideScoringConfig maps config onto the ISS scoring constants.
func ProvideScoringConfig(cfg *config.Config) scoring.Config {
	return scoring.Config{
		VolumeNormalizer: cfg.Scoring.VolumeNormalizer,
		PCRBullishBase:   cfg.Scoring.PCRBullishBase,
		PCRBearishBase:   cfg.Scoring.PCRBearishBase,
	}
}

// ProvideCompositeEngine creates the composite meter engine.
func ProvideCompositeEngine(cfg *config.Config) *composite.Engine {
	return composite.NewEngine(composite.Config{
		MinPoints:         cfg.Composite.MinPoints,
		SmoothWindow:      cfg.Composite.SmoothWindow,
		NormWindow:        cfg.Composite.NormWindow,
		BuyThreshold:      cfg.Composite.BuyThreshold,
		SellThreshold:     cfg.Composite.SellThreshold,
		MomentumThreshold: cfg.Composite.MomentumThreshold,
	})
}

// ProvideRefresher creates the refresh usecase.
func ProvideRefresher(cfg *config.Config, source drepo.QuoteSource, store drepo.HistoryStore,
	pub drepo.Publisher, cache *usecase.SnapshotCache, m drepo.Metrics,
	iss scoring.Config, log *logger.Logger) *usecase.Refresher {
	return usecase.NewRefresher(source, store, pub, cache, m, iss, cfg.History.Backend, log)
}

// ProvideHistoryReader creates the chart query usecase.
func ProvideHistoryReader(store drepo.HistoryStore, cache *usecase.SnapshotCache, log *logger.Logger) *usecase.HistoryReader {
	return usecase.NewHistoryReader(store, cache, log)
}

// ProvideCompositeMeter creates the composite meter usecase.
func ProvideCompositeMeter(cfg *config.Config, store drepo.HistoryStore, engine *composite.Engine,
	log *logger.Logger) *usecase.CompositeMeter {
	return usecase.NewCompositeMeter(store, engine, cfg.Composite.NormWindow, log)
}

// ProvideHub creates the websocket broadcast hub.
func ProvideHub(log *logger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

// ProvideMeterHandler creates the HTTP API handler.
func ProvideMeterHandler(log *logger.Logger, refresher *usecase.Refresher, reader *usecase.HistoryReader,
	meter *usecase.CompositeMeter, cache *usecase.SnapshotCache, store drepo.HistoryStore,
	hub *ws.Hub) *api.MeterHandler {
	return api.NewMeterHandler(log, refresher, reader, meter, cache, store, hub)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler *api.MeterHandler, hub *ws.Hub,
	refresher *usecase.Refresher, store drepo.HistoryStore, pub drepo.Publisher,
	log *logger.Logger) *server.App {
	return server.New(cfg, handler, hub, refresher, store, pub, log)
}
