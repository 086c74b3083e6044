package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xchain/lib/infra"
	"github.com/benz9527/xchain/lib/list"
	"github.com/benz9527/xchain/observability"
	"github.com/benz9527/xchain/xlog"
)

const (
	envLogEncoder      = "XCHAIN_LOG_ENCODER"
	envMetricsExporter = "XCHAIN_METRICS_EXPORTER"

	defaultMetricsInterval = 10 * time.Second
	defaultMetricsTimeout  = 5 * time.Second
)

type config struct {
	values          []int
	insertValue     int
	logEncoder      string
	metricsExporter observability.MetricsExporterType
	metricsInterval time.Duration
	metricsTimeout  time.Duration
}

func loadConfig() *config {
	return &config{
		values:          []int{12, 5, 6, 8},
		insertValue:     10,
		logEncoder:      strings.ToLower(strings.TrimSpace(os.Getenv(envLogEncoder))),
		metricsExporter: observability.ParseMetricsExporterType(os.Getenv(envMetricsExporter)),
		metricsInterval: defaultMetricsInterval,
		metricsTimeout:  defaultMetricsTimeout,
	}
}

type banner struct{}

func (banner) JSON() string {
	return `{"app":"xchain","desc":"singly and doubly linked chains"}`
}

func (banner) PlainText() string {
	return "xchain: singly and doubly linked chains"
}

func newLogger(lc fx.Lifecycle, cfg *config) xlog.XLogger {
	enc := xlog.JSON
	if cfg.logEncoder == "text" {
		enc = xlog.PlainText
	}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerEncoder(enc),
		xlog.WithXLoggerContextFieldExtract(listContextKey),
	)
	logger.Banner(banner{})
	// Stopped last, flushes the logs of the other stop hooks.
	lc.Append(fx.StopHook(func() {
		// Syncing the stdout may fail on some terminals.
		_ = logger.Sync()
	}))
	return logger
}

func newChainStats(lc fx.Lifecycle, cfg *config, logger xlog.XLogger) (*observability.ChainStats, error) {
	shutdown, err := observability.InitMetricsExporter(cfg.metricsExporter, cfg.metricsInterval, cfg.metricsTimeout)
	if err != nil {
		return nil, err
	}
	if cfg.metricsExporter != observability.NoneMetricsExporter {
		if err = observability.StartRuntimeStats(); err != nil {
			return nil, infra.AppendErrorStack(err, shutdown(context.Background()))
		}
	}
	lc.Append(fx.StopHook(func(ctx context.Context) error {
		logger.Debug("metrics exporter shutdown", zap.String("exporter", string(cfg.metricsExporter)))
		return multierr.Combine(shutdown(ctx), ctx.Err())
	}))
	return observability.NewChainStats(), nil
}

func newApp(cfg *config, out io.Writer) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			newChainStats,
			func(logger xlog.XLogger, stats *observability.ChainStats) *demo {
				return newDemo(out, logger, stats)
			},
		),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(func(lc fx.Lifecycle, d *demo) {
			lc.Append(fx.StartHook(func(ctx context.Context) error {
				return d.run(ctx, cfg.values, cfg.insertValue)
			}))
		}),
	)
}

const listContextKey = "list"

// demo converts the values into the chains and prints them.
type demo struct {
	out    io.Writer
	logger xlog.XLogger
	stats  *observability.ChainStats
}

func newDemo(out io.Writer, logger xlog.XLogger, stats *observability.ChainStats) *demo {
	return &demo{out: out, logger: logger, stats: stats}
}

func (d *demo) run(ctx context.Context, values []int, insertValue int) error {
	singlyCtx := xlog.ContextWithField(ctx, listContextKey, "singly")
	singly, err := list.ConvertToSinglyLinkedList(values)
	if err != nil {
		d.stats.RecordConvertFailure(singlyCtx, "singly", err)
		d.logger.ErrorStackContext(singlyCtx, err, "convert failed")
		return err
	}
	d.stats.RecordConverted(singlyCtx, "singly", singly.Len())
	d.logger.InfoContext(singlyCtx, "converted", zap.Int64("length", singly.Len()))
	if err = list.Print[int](d.out, singly); err != nil {
		return err
	}

	singly = list.InsertAtHead(singly, insertValue)
	d.stats.IncreaseHeadInsertions(singlyCtx)
	d.logger.InfoContext(singlyCtx, "inserted at head",
		zap.Int("value", insertValue),
		zap.Int64("length", list.LengthOf[int](singly)),
	)
	if err = list.Print[int](d.out, singly); err != nil {
		return err
	}

	doublyCtx := xlog.ContextWithField(ctx, listContextKey, "doubly")
	doubly, err := list.ConvertToDoublyLinkedList(values)
	if err != nil {
		d.stats.RecordConvertFailure(doublyCtx, "doubly", err)
		d.logger.ErrorStackContext(doublyCtx, err, "convert failed")
		return err
	}
	d.stats.RecordConverted(doublyCtx, "doubly", doubly.Len())
	d.logger.InfoContext(doublyCtx, "converted", zap.Int64("length", doubly.Len()))
	return list.Print[int](d.out, doubly)
}
