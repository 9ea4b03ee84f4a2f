package centrogo

// DefaultEpsilon is the default floating-point tolerance for tie-breaking in
// Predict. Two centroid distances within this tolerance of each other are
// considered tied, and the class declared earlier wins.
const DefaultEpsilon = 1e-9

type options struct {
	logger  *Logger
	metrics MetricsCollector
	epsilon float64
}

// Option configures classifier construction.
type Option func(*options)

// WithLogger configures the structured logger used by the classifier.
//
// If nil is passed, a default text logger to stderr is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewLogger(nil)
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector.
//
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithEpsilon configures the tie-break tolerance used by Predict.
//
// Values <= 0 disable the tolerance, making ties exact-equality only.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.epsilon = eps
	}
}
