//go:build wireinject
// +build wireinject

package di

import (
	"SentiPulse/pkg/config"
	"SentiPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideCache,
		ProvideHTTPClient,
		ProvideAngelSession,
		ProvideQuoteSource,
		ProvideHistoryStore,
		ProvidePublisher,

		// Scoring and composite engines
		ProvideScoringConfig,
		ProvideCompositeEngine,

		// Use cases
		ProvideSnapshotCache,
		ProvideRefresher,
		ProvideHistoryReader,
		ProvideCompositeMeter,

		// Transport
		ProvideHub,
		ProvideMeterHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
