package zap_adapter

import (
	"go.uber.org/zap"
	"tracker/pkg/logger"
)

type ZapAdapter struct {
	logger *zap.Logger
}

type options struct {
	outputPaths []string
	level       zap.AtomicLevel
}

type Option func(*options)

// WithOutputPaths перенаправляет логи, например в stderr для cmd/watch,
// где stdout занят отрисовкой экрана.
func WithOutputPaths(paths ...string) Option {
	return func(o *options) {
		o.outputPaths = paths
	}
}

func WithDebug() Option {
	return func(o *options) {
		o.level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
}

func NewZapAdapter(opts ...Option) (*ZapAdapter, error) {
	o := options{
		outputPaths: []string{"stdout"},
		level:       zap.NewAtomicLevelAt(zap.InfoLevel),
	}
	for _, opt := range opts {
		opt(&o)
	}

	config := zap.NewProductionConfig()

	config.Level = o.level
	config.OutputPaths = o.outputPaths
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{logger: zapLogger}, nil
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	if len(fields) == 0 {
		return z
	}
	return &ZapAdapter{
		logger: z.logger.With(convertFields(fields)...),
	}
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			zapFields = append(zapFields, zap.NamedError(f.Key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}
