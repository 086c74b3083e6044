package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xchain/lib/list"
	"github.com/benz9527/xchain/observability"
	"github.com/benz9527/xchain/xlog"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv(envLogEncoder, " TEXT ")
	t.Setenv(envMetricsExporter, "console")
	cfg := loadConfig()
	require.Equal(t, []int{12, 5, 6, 8}, cfg.values)
	require.Equal(t, 10, cfg.insertValue)
	require.Equal(t, "text", cfg.logEncoder)
	require.Equal(t, observability.ConsoleMetricsExporter, cfg.metricsExporter)

	t.Setenv(envMetricsExporter, "")
	require.Equal(t, observability.NoneMetricsExporter, loadConfig().metricsExporter)
}

func TestApp(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := loadConfig()
	cfg.metricsExporter = observability.NoneMetricsExporter

	app := fxtest.New(t, newApp(cfg, buf))
	app.RequireStart().RequireStop()
	require.Equal(t, "12 5 6 8\n10 12 5 6 8\n12 5 6 8\n", buf.String())
}

func TestApp_InvalidValues(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := loadConfig()
	cfg.values = []int{}
	cfg.metricsExporter = observability.NoneMetricsExporter

	app := fxtest.New(t, newApp(cfg, buf))
	err := app.Start(context.Background())
	require.ErrorIs(t, err, list.ErrEmptyInput)
	require.Empty(t, buf.String())
}

func TestDemo_Run(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() {
		_ = mp.Shutdown(context.Background())
	}()
	logger := xlog.NewXLogger(xlog.WithXLoggerLevel(xlog.LogLevelError))
	stats := observability.NewChainStats(observability.WithChainStatsMeterProvider(mp))

	buf := &bytes.Buffer{}
	d := newDemo(buf, logger, stats)
	require.NoError(t, d.run(context.Background(), []int{1, 2, 3, 4, 5, 6, 7}, 0))
	require.Equal(t, "1 2 3 4 5 6 7\n0 1 2 3 4 5 6 7\n1 2 3 4 5 6 7\n", buf.String())

	buf.Reset()
	require.NoError(t, d.run(context.Background(), []int{99}, 98))
	require.Equal(t, "99\n98 99\n99\n", buf.String())

	buf.Reset()
	err := d.run(context.Background(), nil, 10)
	require.ErrorIs(t, err, list.ErrNullInput)
	require.Empty(t, buf.String())
}
