package logger_test

import (
	"context"
	"recap/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields_AttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("tab", "7"))

	logger.Info(ctx, "navigated", zap.String("court", "nysb"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "navigated", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "7", fields["tab"])
	require.Equal(t, "nysb", fields["court"])
}

func TestSlog_WritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("job inserted", "kind", "notify")

	require.Equal(t, 1, logs.FilterMessage("job inserted").Len())
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, err := cfg.Build()
	require.NoError(t, err)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestLoggingFunctionsDoNotPanic(t *testing.T) {
	ctx := logger.WithLogger(context.Background(), zap.NewNop())
	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug")
		logger.Info(ctx, "info")
		logger.Warn(ctx, "warn")
		logger.Error(ctx, "error")
		logger.Sync(ctx)
	})
}
