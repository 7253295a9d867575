package fallback

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vokinneberg/ocean-query/internal/types"
)

// Resolver answers queries locally from canned rules
type Resolver struct {
	rules  []Rule
	delay  Delay
	logger *zap.Logger
}

// NewResolver creates a resolver with the default rule set
func NewResolver(delay Delay, logger *zap.Logger) *Resolver {
	return NewResolverWithRules(DefaultRules(), delay, logger)
}

// NewResolverWithRules creates a resolver evaluating rules in the given order.
// The generic guidance rule is appended as the final catch-all.
func NewResolverWithRules(rules []Rule, delay Delay, logger *zap.Logger) *Resolver {
	if delay == nil {
		delay = NoDelay()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ordered := make([]Rule, 0, len(rules)+1)
	ordered = append(ordered, rules...)
	ordered = append(ordered, genericRule)

	return &Resolver{
		rules:  ordered,
		delay:  delay,
		logger: logger,
	}
}

// ResolveLocally returns the first matching canned answer for query
func (r *Resolver) ResolveLocally(ctx context.Context, query string) types.QueryResult {
	r.delay(ctx)

	lowered := strings.ToLower(query)
	for _, rule := range r.rules {
		if rule.Match(lowered) {
			r.logger.Debug("Fallback rule matched", zap.String("rule", rule.Name))
			return rule.Build(query)
		}
	}

	// Unreachable while genericRule terminates the list
	return genericResult(query)
}
