package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics publishes application metrics to CloudWatch. A nil client
// disables publishing, which keeps local development quiet.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
	logger    *zap.Logger
}

// NewMetrics creates a new metrics instance
func NewMetrics(namespace string, client *cloudwatch.Client, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordRequest records latency and count for an HTTP request.
func (m *Metrics) RecordRequest(ctx context.Context, route string, status int, duration time.Duration) {
	if m.client == nil {
		return
	}

	outcome := "success"
	if status >= 500 {
		outcome = "failure"
	}

	dimensions := []types.Dimension{
		{
			Name:  aws.String("Route"),
			Value: aws.String(route),
		},
		{
			Name:  aws.String("Outcome"),
			Value: aws.String(outcome),
		},
	}

	metricData := []types.MetricDatum{
		{
			MetricName: aws.String("RequestLatency"),
			Dimensions: dimensions,
			Value:      aws.Float64(float64(duration.Milliseconds())),
			Unit:       types.StandardUnitMilliseconds,
			Timestamp:  aws.Time(time.Now()),
		},
		{
			MetricName: aws.String("RequestCount"),
			Dimensions: dimensions,
			Value:      aws.Float64(1),
			Unit:       types.StandardUnitCount,
			Timestamp:  aws.Time(time.Now()),
		},
	}

	m.put(ctx, metricData)
}

// CacheStats is a snapshot of cache counters for publishing.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

// RecordCacheStats publishes a cache counter snapshot.
func (m *Metrics) RecordCacheStats(ctx context.Context, stats CacheStats) {
	if m.client == nil {
		return
	}

	now := aws.Time(time.Now())
	metricData := []types.MetricDatum{
		{
			MetricName: aws.String("CacheHits"),
			Value:      aws.Float64(float64(stats.Hits)),
			Unit:       types.StandardUnitCount,
			Timestamp:  now,
		},
		{
			MetricName: aws.String("CacheMisses"),
			Value:      aws.Float64(float64(stats.Misses)),
			Unit:       types.StandardUnitCount,
			Timestamp:  now,
		},
		{
			MetricName: aws.String("CacheEvictions"),
			Value:      aws.Float64(float64(stats.Evictions)),
			Unit:       types.StandardUnitCount,
			Timestamp:  now,
		},
		{
			MetricName: aws.String("CacheSize"),
			Value:      aws.Float64(float64(stats.Size)),
			Unit:       types.StandardUnitCount,
			Timestamp:  now,
		},
	}

	m.put(ctx, metricData)
}

func (m *Metrics) put(ctx context.Context, data []types.MetricDatum) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	}

	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to publish metrics", zap.Error(err))
	}
}

// CacheStatsReporter periodically snapshots cache counters and pushes
// them to CloudWatch. Snapshot reads the live counters; the reporter
// never touches cached entries.
type CacheStatsReporter struct {
	metrics  *Metrics
	snapshot func() CacheStats
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewCacheStatsReporter builds a reporter but does not start it.
func NewCacheStatsReporter(metrics *Metrics, snapshot func() CacheStats, interval time.Duration) *CacheStatsReporter {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheStatsReporter{
		metrics:  metrics,
		snapshot: snapshot,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the reporting loop in its own goroutine.
func (r *CacheStatsReporter) Start(ctx context.Context) {
	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.metrics.RecordCacheStats(ctx, r.snapshot())
			case <-r.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the reporting loop and waits for it to finish.
func (r *CacheStatsReporter) Stop() {
	close(r.stop)
	<-r.done
}
