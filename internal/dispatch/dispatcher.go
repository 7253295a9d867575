package dispatch

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/vokinneberg/ocean-query/internal/remote"
	"github.com/vokinneberg/ocean-query/internal/types"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=dispatch

// RemoteResolver answers a query through an external backend
type RemoteResolver interface {
	Resolve(ctx context.Context, query string) (types.QueryResult, error)
}

// LocalResolver answers a query without leaving the process
type LocalResolver interface {
	ResolveLocally(ctx context.Context, query string) types.QueryResult
}

// Dispatcher tries the remote backend once and falls back to the local resolver
type Dispatcher struct {
	remote RemoteResolver
	local  LocalResolver
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher. A nil remote always resolves locally.
func NewDispatcher(remoteResolver RemoteResolver, local LocalResolver, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		remote: remoteResolver,
		local:  local,
		logger: logger,
	}
}

// Resolve always returns a well-formed result; remote errors are not surfaced.
// The query must be non-empty after trimming.
func (d *Dispatcher) Resolve(ctx context.Context, query string) types.QueryResult {
	if d.remote != nil {
		result, err := d.remote.Resolve(ctx, query)
		if err == nil {
			d.logger.Debug("Resolved query remotely", zap.String("data_source", string(result.DataSource)))
			return result
		}
		d.logger.Warn("Remote query failed, using fallback",
			zap.String("kind", errorKind(err)),
			zap.Error(err),
		)
	}

	result := d.local.ResolveLocally(ctx, query)
	if err := result.Validate(); err != nil {
		d.logger.Error("Fallback produced invalid result", zap.Error(err))
		return types.ErrorResult(query)
	}
	return result
}

func errorKind(err error) string {
	var (
		netErr   *remote.NetworkError
		protoErr *remote.ProtocolError
		parseErr *remote.ParseError
	)
	switch {
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &protoErr):
		return "protocol"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "unknown"
	}
}
