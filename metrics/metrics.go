package metrics

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	KeyFunction, _ = tag.NewKey("function")
	KeyOutcome, _  = tag.NewKey("outcome")
)

var (
	JobsDispatched  = stats.Int64("playback/prefetch_jobs_dispatched", "Prefetch jobs handed to the evaluation pool", stats.UnitDimensionless)
	JobsSkipped     = stats.Int64("playback/prefetch_jobs_skipped", "Prefetch jobs not dispatched because the schedule was cancelled", stats.UnitDimensionless)
	JobsEvaluated   = stats.Int64("playback/prefetch_jobs_evaluated", "Prefetch jobs evaluated by workers", stats.UnitDimensionless)
	CacheLookups    = stats.Int64("playback/prefetch_cache_lookups", "Prefetched results consulted by the orchestrator", stats.UnitDimensionless)
	EarlyAgreements = stats.Int64("playback/early_result_agreements", "Comparisons of latest and final prefetched results", stats.UnitDimensionless)
	ActionLatency   = stats.Float64("playback/action_latency", "Time spent executing one action", stats.UnitMilliseconds)
)

var Views = []*view.View{
	{Name: "playback/prefetch_jobs_dispatched", Measure: JobsDispatched, Aggregation: view.Count(), TagKeys: []tag.Key{KeyFunction}},
	{Name: "playback/prefetch_jobs_skipped", Measure: JobsSkipped, Aggregation: view.Count(), TagKeys: []tag.Key{KeyFunction}},
	{Name: "playback/prefetch_jobs_evaluated", Measure: JobsEvaluated, Aggregation: view.Count(), TagKeys: []tag.Key{KeyOutcome}},
	{Name: "playback/prefetch_cache_lookups", Measure: CacheLookups, Aggregation: view.Count(), TagKeys: []tag.Key{KeyOutcome}},
	{Name: "playback/early_result_agreements", Measure: EarlyAgreements, Aggregation: view.Count(), TagKeys: []tag.Key{KeyOutcome}},
	{Name: "playback/action_latency", Measure: ActionLatency, Aggregation: view.Distribution(1, 10, 50, 100, 250, 500, 1000, 5000), TagKeys: []tag.Key{KeyFunction}},
}

func Register() error {
	return view.Register(Views...)
}

func Unregister() {
	view.Unregister(Views...)
}

// Count records one occurrence of m tagged with key=value.
func Count(ctx context.Context, m *stats.Int64Measure, key tag.Key, value string) {
	_ = stats.RecordWithTags(ctx, []tag.Mutator{tag.Upsert(key, value)}, m.M(1))
}

func Latency(ctx context.Context, function string, ms float64) {
	_ = stats.RecordWithTags(ctx, []tag.Mutator{tag.Upsert(KeyFunction, function)}, ActionLatency.M(ms))
}
