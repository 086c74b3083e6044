package observability

import (
	"context"
	"errors"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/xchain/lib/list"
)

const (
	ChainStatsName = "xchain/list"

	chainConvertedNodesMetric   = "xchain.list.converted.nodes"
	chainConvertedLengthMetric  = "xchain.list.converted.length"
	chainHeadInsertionsMetric   = "xchain.list.head.insertions"
	chainConvertFailuresMetric  = "xchain.list.convert.failures"
	chainListAttributeKey       = "xchain.list"
	chainFailureReasonAttribute = "xchain.list.failure.reason"
)

// ChainStats records the chain operations. A nil *ChainStats
// records nothing.
type ChainStats struct {
	convertedNodes  metric.Int64Counter
	convertedLength metric.Int64Histogram
	headInsertions  metric.Int64Counter
	convertFailures metric.Int64Counter
}

type chainStatsOption struct {
	mp metric.MeterProvider
}

type ChainStatsOption func(opt *chainStatsOption)

// WithChainStatsMeterProvider replaces the global meter provider.
func WithChainStatsMeterProvider(mp metric.MeterProvider) ChainStatsOption {
	return func(opt *chainStatsOption) {
		if mp != nil {
			opt.mp = mp
		}
	}
}

func NewChainStats(opts ...ChainStatsOption) *ChainStats {
	opt := &chainStatsOption{}
	for _, o := range opts {
		if o != nil {
			o(opt)
		}
	}
	if opt.mp == nil {
		opt.mp = otel.GetMeterProvider()
	}
	meter := opt.mp.Meter(
		ChainStatsName,
		metric.WithInstrumentationVersion(otelruntime.Version()),
	)
	return &ChainStats{
		convertedNodes: lo.Must[metric.Int64Counter](meter.Int64Counter(
			chainConvertedNodesMetric,
			metric.WithDescription(`The number of nodes allocated by converting sequences.`),
		)),
		convertedLength: lo.Must[metric.Int64Histogram](meter.Int64Histogram(
			chainConvertedLengthMetric,
			metric.WithDescription(`The length of the converted chains.`),
		)),
		headInsertions: lo.Must[metric.Int64Counter](meter.Int64Counter(
			chainHeadInsertionsMetric,
			metric.WithDescription(`The number of nodes inserted at the head.`),
		)),
		convertFailures: lo.Must[metric.Int64Counter](meter.Int64Counter(
			chainConvertFailuresMetric,
			metric.WithDescription(`The number of rejected conversions.`),
		)),
	}
}

func (stats *ChainStats) RecordConverted(ctx context.Context, listName string, length int64) {
	if stats == nil {
		return
	}
	as := metric.WithAttributeSet(attribute.NewSet(attribute.String(chainListAttributeKey, listName)))
	stats.convertedNodes.Add(ctx, length, as)
	stats.convertedLength.Record(ctx, length, as)
}

func (stats *ChainStats) IncreaseHeadInsertions(ctx context.Context) {
	if stats == nil {
		return
	}
	stats.headInsertions.Add(ctx, 1)
}

func (stats *ChainStats) RecordConvertFailure(ctx context.Context, listName string, err error) {
	if stats == nil || err == nil {
		return
	}
	stats.convertFailures.Add(ctx, 1, metric.WithAttributeSet(attribute.NewSet(
		attribute.String(chainListAttributeKey, listName),
		attribute.String(chainFailureReasonAttribute, failureReason(err)),
	)))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, list.ErrNullInput):
		return "null"
	case errors.Is(err, list.ErrEmptyInput):
		return "empty"
	default:
	}
	return "unknown"
}

// StartRuntimeStats collects the go runtime metrics by the global
// meter provider.
func StartRuntimeStats() error {
	return otelruntime.Start(otelruntime.WithMeterProvider(otel.GetMeterProvider()))
}
