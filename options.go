package storageclient

import (
	"log/slog"
	"os"

	"github.com/hupe1980/storageclient/internal/fs"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	fileMode         os.FileMode
	createDirs       bool
	fsys             fs.FileSystem
}

// Option configures a Client.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &storageclient.BasicMetricsCollector{}
//	sc := storageclient.New(store, storageclient.WithMetricsCollector(metrics))
//	// ... use sc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fetches: %d, hits: %d\n", stats.FetchCount, stats.FetchHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := storageclient.NewJSONLogger(slog.LevelInfo)
//	sc := storageclient.New(store, storageclient.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithFileMode sets the permissions of files created by disk uploads.
// Default: 0644.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithCreateDirs controls whether disk uploads create missing parent directories.
// Default: true.
func WithCreateDirs(create bool) Option {
	return func(o *options) {
		o.createDirs = create
	}
}

// withFileSystem routes disk I/O through fsys.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		fileMode:         0o644,
		createDirs:       true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
