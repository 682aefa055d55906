package handlers

import (
	"clubgraph/application/queries"
	"clubgraph/infrastructure/cache"
)

// Cache key derivation for every cached query shape. Keys are a pure
// function of the normalized filter fields: fixed field order, absent
// fields contribute no token, free-text fields lowercased. The layout
// per namespace is:
//
//	clubs:search=..:league=..:city=..:country=..:active=..:verified=..:
//	      featured=..:founded_after=..:founded_before=..:sort=..:order=..:
//	      page=..:size=..
//	club-connections:club=..:type=..:page=..:size=..
//	graph-data:league=..:type=..:min_strength=..:isolated=..
//	dashboard-stats
//
// Operators target a whole namespace with cache.PatternFor.

func listClubsKey(q queries.ListClubsQuery) string {
	return cache.NewKey(cache.NamespaceClubs).
		StrFold("search", q.Search).
		Str("league", q.League).
		StrFold("city", q.City).
		StrFold("country", q.Country).
		Bool("active", q.IsActive).
		Bool("verified", q.IsVerified).
		Bool("featured", q.IsFeatured).
		IntIf("founded_after", q.FoundedAfter).
		IntIf("founded_before", q.FoundedBefore).
		Str("sort", q.SortBy).
		Str("order", q.SortOrder).
		Int("page", q.Page).
		Int("size", q.PageSize).
		Build()
}

func listClubConnectionsKey(q queries.ListClubConnectionsQuery) string {
	return cache.NewKey(cache.NamespaceClubConnections).
		StrFold("club", q.ClubID).
		Str("type", q.Type).
		Int("page", q.Page).
		Int("size", q.PageSize).
		Build()
}

func graphDataKey(q queries.GetGraphDataQuery) string {
	return cache.NewKey(cache.NamespaceGraphData).
		Str("league", q.League).
		Str("type", q.ConnectionType).
		IntIf("min_strength", q.MinStrength).
		Flag("isolated", q.IncludeIsolated).
		Build()
}

func dashboardStatsKey() string {
	return cache.NewKey(cache.NamespaceDashboardStats).Build()
}
