package sigslot

import "log/slog"

type options struct {
	name   string
	logger *slog.Logger
}

// Option configures a signal.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) apply(name *string, logger **slog.Logger) {
	*name = o.name
	*logger = o.logger
}

// WithName names the signal. The name is attached to its log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger makes the signal log connections and disconnections at debug
// level. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
