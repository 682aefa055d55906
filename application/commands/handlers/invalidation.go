// Package handlers implements the write-side command handlers. Every
// mutation ends with cache invalidation over the namespaces whose
// cached results could now be stale; skipping it would leave stale
// reads for a full TTL window.
package handlers

import (
	"context"

	"clubgraph/application/ports"
	"clubgraph/infrastructure/cache"

	"go.uber.org/zap"
)

// clubMutationNamespaces lists every cache namespace a club mutation
// can stale: club lists, per-club connection lists (the club's name is
// embedded in shaped payloads), the graph, and the dashboard.
var clubMutationNamespaces = []string{
	cache.NamespaceClubs,
	cache.NamespaceClubConnections,
	cache.NamespaceGraphData,
	cache.NamespaceDashboardStats,
}

// connectionMutationNamespaces excludes club lists, which do not embed
// connection data.
var connectionMutationNamespaces = []string{
	cache.NamespaceClubConnections,
	cache.NamespaceGraphData,
	cache.NamespaceDashboardStats,
}

// invalidateNamespaces evicts every key in the given namespaces. The
// mutation is already committed, so failures are logged rather than
// returned; a missed eviction self-heals when the TTL lapses.
func invalidateNamespaces(ctx context.Context, inv ports.CacheInvalidator, logger *zap.Logger, namespaces []string) {
	for _, ns := range namespaces {
		if _, err := inv.RemoveByPattern(ctx, cache.PatternFor(ns)); err != nil {
			logger.Error("Cache invalidation failed",
				zap.String("namespace", ns),
				zap.Error(err),
			)
		}
	}
}
