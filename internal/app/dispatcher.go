package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vokinneberg/ocean-query/internal/config"
	"github.com/vokinneberg/ocean-query/internal/dispatch"
	"github.com/vokinneberg/ocean-query/internal/fallback"
	"github.com/vokinneberg/ocean-query/internal/llm"
	"github.com/vokinneberg/ocean-query/internal/remote"
)

// NewDispatcher builds the dispatcher selected by cfg.RemoteMode
func NewDispatcher(cfg *config.Config, logger *zap.Logger) (*dispatch.Dispatcher, error) {
	delay := fallback.NoDelay()
	if cfg.SimulateLatency {
		delay = fallback.RandomDelay(cfg.LatencyMin, cfg.LatencyMax)
	}
	local := fallback.NewResolver(delay, logger.Named("fallback"))

	var remoteResolver dispatch.RemoteResolver
	switch cfg.RemoteMode {
	case config.RemoteModeHTTP:
		client := remote.NewClient(cfg.BackendURL, cfg.RemoteTimeout)
		logger.Info("Using HTTP remote backend", zap.String("endpoint", client.Endpoint()), zap.Duration("timeout", cfg.RemoteTimeout))
		remoteResolver = client
	case config.RemoteModeOpenAI:
		logger.Info("Using OpenAI remote backend", zap.String("model", cfg.OpenAIModel), zap.Duration("timeout", cfg.RemoteTimeout))
		remoteResolver = llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.RemoteTimeout)
	case config.RemoteModeNone:
		logger.Info("No remote backend, answering from fallback rules only")
	default:
		return nil, fmt.Errorf("unknown remote mode %q", cfg.RemoteMode)
	}

	return dispatch.NewDispatcher(remoteResolver, local, logger.Named("dispatch")), nil
}
